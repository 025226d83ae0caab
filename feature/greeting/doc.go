// Package greeting implements the greeting feature: the single "/" route of the server.
//
// It follows the standard feature layout:
//   - Service: computes the greeting body from the port the server was started with.
//   - Handler: Fiber handler answering GET / with the body as text/plain.
//   - Feature: the loader.Feature that registers the handler.
//
// The port is handed over at construction and never changes afterwards, so the handler
// needs no synchronization and every request gets the same body.
package greeting
