package models

import (
	"bytes"
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set carried by bearer tokens.
//
// UserID is the identity the token was issued for and is compared against
// the identity named in the request path. The registered claims are
// optional; when "exp" is present an expired token is rejected.
type Claims struct {
	// UserID is the "user_id" claim.
	UserID string `json:"user_id"`

	jwt.RegisteredClaims

	// nonStringUserID is set when "user_id" is present but is not a JSON
	// string. Such a token names no user of this service.
	nonStringUserID bool
}

// UnmarshalJSON decodes the claim set. A "user_id" that is a number, bool,
// array or object does not fail decoding; UserID stays empty and
// [Claims.HasStringUserID] reports false.
func (c *Claims) UnmarshalJSON(data []byte) error {
	type plain Claims
	aux := struct {
		UserID json.RawMessage `json:"user_id"`
		*plain
	}{plain: (*plain)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	c.UserID, c.nonStringUserID = "", false
	switch raw := bytes.TrimSpace(aux.UserID); {
	case len(raw) == 0, bytes.Equal(raw, []byte("null")):
	case raw[0] == '"':
		return json.Unmarshal(raw, &c.UserID)
	default:
		c.nonStringUserID = true
	}
	return nil
}

// HasStringUserID reports whether the token carried "user_id" as a string
// (or not at all). Only string identities can match a request path.
func (c Claims) HasStringUserID() bool {
	return !c.nonStringUserID
}

// HasUserID reports whether "user_id" was present in any form.
func (c Claims) HasUserID() bool {
	return c.UserID != "" || c.nonStringUserID
}

// Token wraps a signed JWT together with the claims it carries.
type Token struct {
	// Claims are the decoded claims of the token.
	Claims Claims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
