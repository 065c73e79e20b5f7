package server

// Server is the process lifecycle of one transport.
type Server interface {
	// RunServer serves until a stop signal arrives. In lambda mode the
	// runtime owns the process and RunServer never returns.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
