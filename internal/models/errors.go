package models

import (
	"errors"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrUserDisabled       = errors.New("models: user disabled")
	ErrInvalidEmail       = errors.New("models: invalid email address")
	ErrInvalidPassword    = errors.New("models: invalid password")
	ErrChatRoomNotFound   = errors.New("models: chat room not found")
	ErrDuplicateChatRoom  = errors.New("models: duplicate chat room")
	ErrEmptyMessage       = errors.New("models: empty message text")
	ErrListingNotFound    = errors.New("models: listing not found")
)
