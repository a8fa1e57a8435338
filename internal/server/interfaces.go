package server

// Server runs the configured transports.
//
// RunServer blocks until a termination signal arrives, then stops every
// transport. Shutdown stops them directly; the HTTP transport drains
// in-flight requests for at most the configured shutdown timeout and the
// gRPC transport waits for pending calls.
type Server interface {
	RunServer()
	Shutdown()
}
