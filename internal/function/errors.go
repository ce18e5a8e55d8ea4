package function

import "errors"

var (
	ErrEmptyName     = errors.New("function name is required")
	ErrInvalidSchema = errors.New("function schema is invalid")
)
