package member

import "errors"

var (
	ErrNotFound        = errors.New("member not found")
	ErrUnknownProvider = errors.New("unknown oauth provider")
	ErrLoginFailed     = errors.New("oauth login failed")
	ErrInvalidSkinType = errors.New("invalid skin type")
)
