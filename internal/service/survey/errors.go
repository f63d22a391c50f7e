package survey

import "errors"

var (
	ErrNotFound     = errors.New("survey not found")
	ErrUnauthorized = errors.New("not authorized to access this survey")
)
