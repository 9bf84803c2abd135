package item

import (
	"catalog/domain"
	"context"
	"fmt"
	"net/http"
)

type GetItemsHandler struct {
	service *Service
}

type GetItemsRequest struct{}

type GetItemsResponse struct {
	Items []domain.Item
}

func (r GetItemsResponse) Status() int { return http.StatusOK }

// Message reports how many items the snapshot holds.
func (r GetItemsResponse) Message() string {
	return fmt.Sprintf("Retrieved %d item(s)", len(r.Items))
}

func (r GetItemsResponse) Data() any { return r.Items }

func NewGetItemsHandler(service *Service) *GetItemsHandler {
	return &GetItemsHandler{service: service}
}

func (h GetItemsHandler) Handle(ctx context.Context, req *GetItemsRequest) (*GetItemsResponse, error) {
	return &GetItemsResponse{Items: h.service.GetAllItems(ctx)}, nil
}
