package texts

import "errors"

var (
	ErrNotFound     = errors.New("text not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrTextTooLarge = errors.New("text too large")
)
