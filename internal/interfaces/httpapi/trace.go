package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer trace.Tracer = otel.Tracer("coachboard/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		// Filtered routes such as /healthz carry no parent span.
		return ctx, noopSpan
	}
	if !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

// startRouteSpan opens a handler span tagged with the inning, position and
// player named in the request path.
func startRouteSpan(r *http.Request, name string) (context.Context, trace.Span) {
	ctx, span := startSpan(r.Context(), name)
	if span.IsRecording() {
		span.SetAttributes(routeAttributes(r)...)
	}
	return ctx, span
}

func routeAttributes(r *http.Request) []attribute.KeyValue {
	var out []attribute.KeyValue
	if v := strings.TrimSpace(r.PathValue("inning")); v != "" {
		out = append(out, attribute.String("coachboard.inning", v))
	}
	if v := strings.TrimSpace(r.PathValue("position")); v != "" {
		out = append(out, attribute.String("coachboard.position", strings.ToUpper(v)))
	}
	if v := strings.TrimSpace(r.PathValue("name")); v != "" {
		out = append(out, attribute.String("coachboard.player", v))
	}
	return out
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}
