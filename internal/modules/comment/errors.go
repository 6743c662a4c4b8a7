package comment

import "errors"

var (
	ErrEmptyComment    = errors.New("comment cannot be empty")
	ErrCommentTooLong  = errors.New("comment cannot exceed 500 characters")
	ErrInvalidItemType = errors.New("itemType must be hotel, room or attraction")
)
