package handler

import "errors"

// errNoHandlersAreCreated means the server config names no listen address.
var errNoHandlersAreCreated = errors.New("no handlers are created")
