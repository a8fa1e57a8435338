package codec

import "errors"

var (
	// ErrMalformedDocument is returned when bytes do not decode as a UCIP
	// message or a message of another type is supplied.
	ErrMalformedDocument = errors.New("malformed context document")
	// ErrInvalidDocumentJSON is returned when a JSON body does not conform
	// to the UCIP JSON mapping.
	ErrInvalidDocumentJSON = errors.New("invalid context document json")
)
