package server

// Server is the vault API process: the REST listener plus the optional gRPC
// health listener.
type Server interface {
	// RunServer blocks until a termination signal arrives and every
	// listener has drained.
	RunServer()
	// Shutdown is idempotent.
	Shutdown()
}
