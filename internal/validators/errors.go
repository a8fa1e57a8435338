package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrConsentRequired = errors.New("consent required")
	ErrInvalidPayload  = errors.New("payload is not a json object")
)
