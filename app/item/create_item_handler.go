package item

import (
	"catalog/domain"
	"catalog/pkg/events"
	"catalog/pkg/httperror"
	"context"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CreateItemHandler struct {
	service    *Service
	validation *Validation
	publisher  events.Publisher
}

// CreateItemRequest carries the client-supplied fields of a new item. Price
// and Quantity are pointers so an absent field is distinguishable from a
// zero value.
type CreateItemRequest struct {
	Name        string           `json:"name" validate:"notblank,min=2,max=100"`
	Description string           `json:"description" validate:"notblank,min=10,max=1000"`
	Price       *decimal.Decimal `json:"price" validate:"required,positive,digits"`
	Category    string           `json:"category" validate:"notblank,min=2,max=50"`
	Quantity    *int             `json:"quantity" validate:"required,gte=0"`
	ImageURL    string           `json:"imageUrl" validate:"omitempty,imageurl"`
}

type CreateItemResponse struct {
	Item domain.Item
}

func (r CreateItemResponse) Status() int     { return http.StatusCreated }
func (r CreateItemResponse) Message() string { return "Item created successfully" }
func (r CreateItemResponse) Data() any       { return r.Item }

func NewCreateItemHandler(service *Service, validation *Validation, publisher events.Publisher) *CreateItemHandler {
	return &CreateItemHandler{
		service:    service,
		validation: validation,
		publisher:  publisher,
	}
}

func (h CreateItemHandler) Handle(ctx context.Context, req *CreateItemRequest) (*CreateItemResponse, error) {
	if violations := h.validation.Validate(req); len(violations) > 0 {
		return nil, httperror.BadRequest("Validation failed. Please check the input fields.", violations)
	}

	created := h.service.AddItem(ctx, req.item())

	h.publishCreated(ctx, created)

	return &CreateItemResponse{Item: created}, nil
}

// item builds the domain item a validated request describes.
func (r *CreateItemRequest) item() domain.Item {
	return domain.Item{
		Name:        r.Name,
		Description: r.Description,
		Price:       *r.Price,
		Category:    r.Category,
		Quantity:    *r.Quantity,
		ImageURL:    r.ImageURL,
	}
}

// publishCreated emits the item.created event. Publishing is best effort: a
// broker failure is logged and never fails the request.
func (h CreateItemHandler) publishCreated(ctx context.Context, created domain.Item) {
	if h.publisher == nil {
		return
	}

	payload := events.ItemCreatedPayload{
		ID:          created.ID,
		Name:        created.Name,
		Description: created.Description,
		Price:       created.Price,
		Category:    created.Category,
		Quantity:    created.Quantity,
		ImageURL:    created.ImageURL,
		CreatedAt:   created.CreatedAt,
	}

	headers := events.HeadersFromContext(ctx)
	event := events.NewEvent(events.ItemCreatedEvent, events.EventVersionV1, payload, headers)

	if err := h.publisher.Publish(ctx, event, headers); err != nil {
		zap.L().Error("Failed to publish item.created event",
			zap.Int64("itemId", created.ID),
			zap.String("traceId", headers.TraceID),
			zap.Error(err),
		)
	}
}
