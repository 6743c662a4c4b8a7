package domain

import (
	"time"
)

type ItemType string

const (
	ItemHotel      ItemType = "hotel"
	ItemRoom       ItemType = "room"
	ItemAttraction ItemType = "attraction"
)

func (t ItemType) Valid() bool {
	switch t {
	case ItemHotel, ItemRoom, ItemAttraction:
		return true
	}
	return false
}

// Favorite marks a catalog item a user saved. One row per user/item pair.
type Favorite struct {
	ID        string    `json:"favoriteId"`
	UserID    string    `json:"userId"`
	ItemID    string    `json:"itemId"`
	ItemType  ItemType  `json:"itemType"`
	CreatedAt time.Time `json:"createdAt"`
}
