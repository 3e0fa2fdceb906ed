package domain

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrMealNotFound   = errors.New("meal not found")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrInvalidInput   = errors.New("invalid input")
)
