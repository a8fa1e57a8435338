package utils

import "github.com/google/uuid"

const maxTraceIDLength = 64

// UUIDGenerator produces request identifiers.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to a random UUIDv4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// Resolve returns the caller-supplied id when it is safe to log and echo
// back (1 to 64 characters of [A-Za-z0-9._-]), and a generated one otherwise.
func (g *UUIDGenerator) Resolve(incoming string) string {
	if isTraceID(incoming) {
		return incoming
	}
	return g.Generate()
}

func isTraceID(s string) bool {
	if s == "" || len(s) > maxTraceIDLength {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
