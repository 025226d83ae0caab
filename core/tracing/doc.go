// Package tracing wires optional OpenTelemetry tracing into the Fiber application.
//
// Setup returns a noop provider unless tracing is enabled, in which case spans are batched
// to an OTLP/HTTP collector. Middleware opens one server span per request, continues a
// trace propagated through W3C headers and flags 5xx responses as errors.
package tracing
