package item

import (
	"catalog/domain"
	"catalog/pkg/httperror"
	"context"
	"errors"
	"net/http"
)

type GetItemHandler struct {
	service *Service
}

type GetItemRequest struct {
	ID int64 `params:"id"`
}

type GetItemResponse struct {
	Item domain.Item
}

func (r GetItemResponse) Status() int     { return http.StatusOK }
func (r GetItemResponse) Message() string { return "Item retrieved successfully" }
func (r GetItemResponse) Data() any       { return r.Item }

func NewGetItemHandler(service *Service) *GetItemHandler {
	return &GetItemHandler{service: service}
}

func (h GetItemHandler) Handle(ctx context.Context, req *GetItemRequest) (*GetItemResponse, error) {
	found, err := h.service.GetItemByID(ctx, req.ID)
	if err != nil {
		var notFound *domain.ItemNotFoundError
		if errors.As(err, &notFound) {
			return nil, httperror.NotFound(notFound.Error(), []string{"Resource not found"})
		}
		return nil, err
	}

	return &GetItemResponse{Item: found}, nil
}
