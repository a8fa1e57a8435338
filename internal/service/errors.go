package service

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized   = errors.New("invalid token")
	ErrForbidden      = errors.New("token was issued for a different user")
	ErrInvalidRequest = errors.New("invalid request")

	ErrConsentRequired = fmt.Errorf("%w: consent required", ErrInvalidRequest)
	ErrUserIDMismatch  = fmt.Errorf("%w: document userId does not match the requested user", ErrInvalidRequest)
	ErrEmptyUserID     = fmt.Errorf("%w: empty user ID", ErrInvalidRequest)

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
