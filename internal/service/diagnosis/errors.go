package diagnosis

import "errors"

var (
	ErrEmptyImage            = errors.New("image payload is empty")
	ErrInferenceUnavailable  = errors.New("inference server unavailable")
	ErrNotFound              = errors.New("diagnosis not found")
	ErrUnauthorized          = errors.New("not authorized to access this diagnosis")
	ErrInvalidClassification = errors.New("invalid classification filter")
	ErrMissingOwner          = errors.New("requester is required for this listing")
)
