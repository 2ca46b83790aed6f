// Package correlation carries the identifiers that tie together the logs and
// spans of one armora invocation: a run id, the tier being priced and the
// quiz session being answered.
package correlation

import (
	"context"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel/attribute"
)

// Scope is the set of identifiers attached to a context. Empty fields are
// omitted from logs and span attributes.
type Scope struct {
	ID          string
	TierID      string
	QuizSession string
}

type scopeKey struct{}

// FromContext returns the scope stored on ctx, or the zero scope.
func FromContext(ctx context.Context) Scope {
	if ctx == nil {
		return Scope{}
	}
	s, _ := ctx.Value(scopeKey{}).(Scope)
	return s
}

// Start returns ctx with a run id, minting a ULID only when none is set.
// Nested calls keep the outer id.
func Start(ctx context.Context) context.Context {
	s := FromContext(ctx)
	if s.ID != "" {
		return ctx
	}
	s.ID = ulid.Make().String()
	return context.WithValue(ctx, scopeKey{}, s)
}

// WithID sets a run id supplied by the caller, such as an upstream request id.
func WithID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	s := FromContext(ctx)
	s.ID = id
	return context.WithValue(ctx, scopeKey{}, s)
}

func WithTier(ctx context.Context, tierID string) context.Context {
	s := FromContext(ctx)
	s.TierID = tierID
	return context.WithValue(ctx, scopeKey{}, s)
}

func WithQuizSession(ctx context.Context, sessionID string) context.Context {
	s := FromContext(ctx)
	s.QuizSession = sessionID
	return context.WithValue(ctx, scopeKey{}, s)
}

// Attributes renders the non-empty fields as span attributes.
func (s Scope) Attributes() []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 3)
	if s.ID != "" {
		attrs = append(attrs, attribute.String("correlation_id", s.ID))
	}
	if s.TierID != "" {
		attrs = append(attrs, attribute.String("tier", s.TierID))
	}
	if s.QuizSession != "" {
		attrs = append(attrs, attribute.String("quiz_session_id", s.QuizSession))
	}
	return attrs
}
