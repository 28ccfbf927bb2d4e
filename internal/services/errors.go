package services

import "errors"

// Business rule violations. Handlers map these onto HTTP status codes.
var (
	ErrUserExists        = errors.New("a user with this email already exists")
	ErrUserNotFound      = errors.New("user does not exist")
	ErrItemExists        = errors.New("an item with this name already exists")
	ErrItemNotFound      = errors.New("item does not exist")
	ErrNotEnoughStock    = errors.New("not enough items in stock")
	ErrItemAlreadyInCart = errors.New("item already in cart")
	ErrValidation        = errors.New("validation failed")
)
