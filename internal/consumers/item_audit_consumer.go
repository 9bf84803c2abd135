package consumers

import (
	"catalog/pkg/events"
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// ItemEventHandler writes an audit log line for every item event the worker
// consumes. Malformed payloads are reported as errors so the consumer dead
// letters them instead of acking silently.
type ItemEventHandler struct {
	logger *zap.Logger
}

func NewItemEventHandler(logger *zap.Logger) *ItemEventHandler {
	return &ItemEventHandler{logger: logger}
}

func (h *ItemEventHandler) HandleEvent(ctx context.Context, event *events.Event) error {
	switch event.Event {
	case events.ItemCreatedEvent:
		return h.handleItemCreated(ctx, event)
	default:
		h.logger.Warn("Unknown item event type",
			zap.String("event", event.Event),
			zap.String("traceId", event.TraceID))
		return nil
	}
}

func (h *ItemEventHandler) handleItemCreated(_ context.Context, event *events.Event) error {
	payload, err := decodeItemCreatedPayload(event.Payload)
	if err != nil {
		return err
	}

	h.logger.Info("Item created",
		zap.Int64("itemId", payload.ID),
		zap.String("name", payload.Name),
		zap.String("category", payload.Category),
		zap.String("price", payload.Price.String()),
		zap.Int("quantity", payload.Quantity),
		zap.Time("createdAt", payload.CreatedAt),
		zap.String("traceId", event.TraceID),
		zap.String("correlationId", event.CorrelationID),
	)

	return nil
}

// decodeItemCreatedPayload converts the generic decoded payload back into
// its typed form. The payload arrives as a map once it has crossed the
// broker, so it goes through JSON again.
func decodeItemCreatedPayload(raw interface{}) (*events.ItemCreatedPayload, error) {
	payloadBytes, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("malformed payload - marshal failed: %w", err)
	}

	var payload events.ItemCreatedPayload
	if err := json.Unmarshal(payloadBytes, &payload); err != nil {
		return nil, fmt.Errorf("malformed payload - unmarshal failed: %w", err)
	}

	if payload.ID <= 0 {
		return nil, fmt.Errorf("malformed payload - missing or invalid id")
	}
	if payload.Name == "" {
		return nil, fmt.Errorf("malformed payload - missing name")
	}

	return &payload, nil
}
