package shape

import "errors"

var (
	ErrNoSuchShape      = errors.New("no such shape")
	ErrUnknownProperty  = errors.New("unknown style property")
	ErrInvalidValue     = errors.New("invalid style value")
	ErrUnknownStyle     = errors.New("unknown style")
	ErrUnknownFormat    = errors.New("unsupported style sheet format")
	ErrInvalidReference = errors.New("reference dimension must be strictly positive")
)
