// Package server owns the listeners of the ucip-keeper HTTP and gRPC
// transports and their graceful shutdown.
package server
