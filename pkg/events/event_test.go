package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventCarriesHeaderIdentifiers(t *testing.T) {
	headers := Headers{TraceID: "trace-1", CorrelationID: "corr-1"}

	event := NewEvent(ItemCreatedEvent, EventVersionV1, nil, headers)

	assert.Equal(t, "item.created", event.Event)
	assert.Equal(t, "v1", event.Version)
	assert.Equal(t, "trace-1", event.TraceID)
	assert.Equal(t, "corr-1", event.CorrelationID)
	assert.False(t, event.Timestamp.IsZero())
}

func TestGetRoutingKeyJoinsNameAndVersion(t *testing.T) {
	event := NewEvent(ItemCreatedEvent, EventVersionV1, nil, Headers{})

	assert.Equal(t, "item.created.v1", event.GetRoutingKey())
}

func TestHeadersFromContextReadsTrace(t *testing.T) {
	ctx := WithTrace(context.Background(), "trace-1", "corr-1")

	headers := HeadersFromContext(ctx)

	assert.Equal(t, "trace-1", headers.TraceID)
	assert.Equal(t, "corr-1", headers.CorrelationID)
}

func TestHeadersFromContextGeneratesMissingIdentifiers(t *testing.T) {
	headers := HeadersFromContext(context.Background())

	require.NotEmpty(t, headers.TraceID)
	require.NotEmpty(t, headers.CorrelationID)
	assert.NotEqual(t, headers.TraceID, headers.CorrelationID)
}
