package client

import "errors"

var (
	ErrNoToken       = errors.New("no token: set UCIP_TOKEN or UCIP_TOKEN_SIGN_KEY")
	ErrNoTokenSigner = errors.New("no token sign key: set UCIP_TOKEN_SIGN_KEY or --sign-key")
	ErrEmptyInput    = errors.New("empty input")
)
