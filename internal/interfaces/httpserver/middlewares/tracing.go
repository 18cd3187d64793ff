package middlewares

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

// TracingMiddleware opens a server span per request, named after the matched
// route, and tags it with the chat resources the route addresses.
func TracingMiddleware(serviceName string) gin.HandlerFunc {
	tracer := otel.Tracer(serviceName)

	return func(c *gin.Context) {
		// Continue a trace started by the caller, if any
		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))

		route := c.FullPath()
		spanName := c.Request.Method + " " + route
		if route == "" {
			spanName = c.Request.Method + " " + c.Request.URL.Path
		}

		attrs := []attribute.KeyValue{
			semconv.HTTPMethod(c.Request.Method),
			semconv.HTTPRoute(route),
			semconv.UserAgentOriginal(c.Request.UserAgent()),
		}
		for key, id := range routeResources(c) {
			attrs = append(attrs, attribute.String("chat_api."+key, id))
		}
		if requestID := RequestIDFromContext(c); requestID != "" {
			attrs = append(attrs, attribute.String("request.id", requestID))
		}

		ctx, span := tracer.Start(ctx, spanName,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attrs...),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(semconv.HTTPStatusCode(status))

		// Only 5xx responses mark the span as failed
		if status >= 500 {
			span.SetStatus(codes.Error, c.Errors.String())
			if last := c.Errors.Last(); last != nil {
				span.RecordError(last.Err)
			}
			return
		}
		span.SetStatus(codes.Unset, "")
	}
}
