package authenticating

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrOperatorNotSet     = errors.New("operator credentials are not configured")
)
