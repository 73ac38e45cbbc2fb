package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer trace.Tracer = otel.Tracer("coachboard/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

// startUsecaseSpan only records under a request that is already traced.
func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" {
		return ctx, usecaseNoopSpan
	}
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name)
}

// startSessionSpan tags the span with the session and game it acts on.
func startSessionSpan(ctx context.Context, name, sessionID string, gameID int64) (context.Context, trace.Span) {
	ctx, span := startUsecaseSpan(ctx, name)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("coachboard.session_id", sessionID),
			attribute.Int64("coachboard.game_id", gameID),
		)
	}
	return ctx, span
}
