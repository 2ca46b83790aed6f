package correlation

import (
	"context"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestStartMintsULIDOnce(t *testing.T) {
	ctx := Start(context.Background())
	id := FromContext(ctx).ID
	_, err := ulid.ParseStrict(id)
	require.NoError(t, err)

	assert.Equal(t, id, FromContext(Start(ctx)).ID)
}

func TestStartKeepsExplicitID(t *testing.T) {
	ctx := Start(WithID(context.Background(), "run-1"))
	assert.Equal(t, "run-1", FromContext(ctx).ID)
	assert.Equal(t, context.Background(), WithID(context.Background(), ""))
}

func TestScopeFieldsAccumulate(t *testing.T) {
	ctx := WithID(context.Background(), "run-1")
	tiered := WithTier(ctx, "shadow")
	quiz := WithQuizSession(tiered, "42")

	assert.Equal(t, Scope{ID: "run-1", TierID: "shadow", QuizSession: "42"}, FromContext(quiz))
	assert.Equal(t, Scope{ID: "run-1"}, FromContext(ctx))
}

func TestScopeAttributesSkipEmpty(t *testing.T) {
	assert.Empty(t, Scope{}.Attributes())
	assert.Equal(t, []attribute.KeyValue{
		attribute.String("correlation_id", "run-1"),
		attribute.String("tier", "executive"),
	}, Scope{ID: "run-1", TierID: "executive"}.Attributes())
}
