// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - RequestLog: Writes one structured access log line per request, tagged with the RayID.
//
// Both are registered globally by the server package, RayID first.
package middleware
