package domain

import "time"

const MaxCommentLength = 500

type Comment struct {
	ID        string    `json:"commentId"`
	UserID    string    `json:"userId"`
	ItemID    string    `json:"itemId"`
	ItemType  ItemType  `json:"itemType"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
