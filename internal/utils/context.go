// Package utils holds small helpers shared by the server and the client:
// request-scoped values, JSON response writers, the resty client, bearer
// token parsing and trace id generation.
package utils

import "context"

// contextKey keeps context values of this package apart from string keys
// set elsewhere.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the authenticated caller identity is
// stored in the context.
//
//	ctx := utils.WithUserID(ctx, "alice")
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying the authenticated caller identity.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the caller identity from the context.
//
// ok is false when the value is missing, empty or of an unexpected type.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}
