// Package server owns the HTTP greeting server: its configuration, its startup errors,
// and the fiber application that answers requests.
//
// # Configuration
//
// The Config struct defines the listening port (taken only from the command line, default 5000)
// and the graceful shutdown window.
//
// # Errors
//
// Startup can fail in two ways, both surfaced as sentinel errors for errors.Is:
//   - ErrInvalidArgument: the port argument is not an integer (see ParsePort).
//   - ErrBind: the port is out of range, already in use, or not permitted.
//
// # Lifecycle
//
// New builds the app with the RayID, tracing and request log middleware and loads the
// registered features. Start binds the listener and serves until the context is cancelled:
//
//	port, err := server.ParsePort(args)
//	srv, err := server.New(server.Config{Port: port}, logg, tp, greeting.NewFeature(port, logg))
//	err = srv.Start(ctx)
package server
