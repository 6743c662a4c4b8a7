package comment

type CreateCommentRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	ItemType string `json:"itemType" binding:"required"`
	Comment  string `json:"comment"`
}
