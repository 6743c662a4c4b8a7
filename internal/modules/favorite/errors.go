package favorite

import "errors"

var (
	ErrAlreadyFavorite  = errors.New("item is already in favorites")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrInvalidItemType  = errors.New("itemType must be hotel, room or attraction")
)
