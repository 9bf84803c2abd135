package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Event struct {
	Event         string      `json:"event"`         // e.g., "item.created"
	Version       string      `json:"version"`       // e.g., "v1"
	Timestamp     time.Time   `json:"timestamp"`     // Event occurrence time
	Payload       interface{} `json:"payload"`       // The actual event data
	TraceID       string      `json:"traceId"`       // For distributed tracing
	CorrelationID string      `json:"correlationId"` // For request correlation
}

type Headers struct {
	TraceID       string
	CorrelationID string
	Service       string
}

func NewEvent(eventName, version string, payload interface{}, headers Headers) *Event {
	return &Event{
		Event:         eventName,
		Version:       version,
		Timestamp:     time.Now().UTC(),
		Payload:       payload,
		TraceID:       headers.TraceID,
		CorrelationID: headers.CorrelationID,
	}
}

func (e *Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func (e *Event) GetRoutingKey() string {
	return e.Event + "." + e.Version
}

func GenerateTraceID() string {
	return uuid.New().String()
}

func GenerateCorrelationID() string {
	return uuid.New().String()
}

type ctxKey int

const (
	ctxKeyTraceID ctxKey = iota
	ctxKeyCorrelationID
)

// WithTrace returns a context carrying the trace and correlation ids for
// events published downstream of the current request.
func WithTrace(ctx context.Context, traceID, correlationID string) context.Context {
	ctx = context.WithValue(ctx, ctxKeyTraceID, traceID)
	return context.WithValue(ctx, ctxKeyCorrelationID, correlationID)
}

// HeadersFromContext builds event headers from the request-scoped trace ids,
// generating fresh ones when the context carries none.
func HeadersFromContext(ctx context.Context) Headers {
	traceID, _ := ctx.Value(ctxKeyTraceID).(string)
	if traceID == "" {
		traceID = GenerateTraceID()
	}

	correlationID, _ := ctx.Value(ctxKeyCorrelationID).(string)
	if correlationID == "" {
		correlationID = GenerateCorrelationID()
	}

	return Headers{TraceID: traceID, CorrelationID: correlationID}
}
