package favorite

// FavoriteRequest identifies an item for both add and remove.
type FavoriteRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	ItemType string `json:"itemType" binding:"required"`
}
