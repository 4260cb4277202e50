package spa

import "errors"

var (
	ErrNotFound      = errors.New("spa: not found")
	ErrUnknownStatus = errors.New("spa: unknown status")
)
