package tracing

import (
	"net/http"

	"greeting-server/core/logger"
	"greeting-server/core/middleware/requestlog"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "greeting-server/core/tracing"

// Middleware starts one server span per request. A nil provider disables tracing.
func Middleware(tp trace.TracerProvider) fiber.Handler {
	if tp == nil {
		tp = noop.NewTracerProvider()
	}
	tracer := tp.Tracer(instrumentationName)

	return func(c *fiber.Ctx) error {
		carrier := propagation.HeaderCarrier(http.Header{})
		for k, values := range c.GetReqHeaders() {
			for _, v := range values {
				carrier.Set(k, v)
			}
		}
		ctx := otel.GetTextMapPropagator().Extract(c.UserContext(), carrier)

		ctx, span := tracer.Start(ctx, c.Method()+" "+c.Path(),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.request.method", c.Method()),
				attribute.String("url.path", c.Path()),
			),
		)
		defer span.End()

		if rid, ok := c.Locals(logger.RayIDKey).(string); ok {
			span.SetAttributes(attribute.String("ray_id", rid))
		}

		c.SetUserContext(ctx)
		err := c.Next()

		status := requestlog.StatusCode(c, err)
		span.SetAttributes(attribute.Int("http.response.status_code", status))
		if status >= fiber.StatusInternalServerError {
			if err != nil {
				span.RecordError(err)
			}
			span.SetStatus(codes.Error, http.StatusText(status))
		}
		return err
	}
}
