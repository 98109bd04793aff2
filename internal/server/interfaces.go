package server

// Server is the sync server process. RunServer blocks until SIGINT, SIGTERM
// or SIGQUIT arrives, then drains in-flight requests before returning.
type Server interface {
	RunServer()
	Shutdown()
}
