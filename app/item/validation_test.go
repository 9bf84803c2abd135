package item

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() CreateItemRequest {
	price := decimal.RequireFromString("9.99")
	quantity := 5
	return CreateItemRequest{
		Name:        "Widget",
		Description: "A simple test widget",
		Price:       &price,
		Category:    "Tools",
		Quantity:    &quantity,
	}
}

func setPrice(raw string) func(*CreateItemRequest) {
	return func(r *CreateItemRequest) {
		price := decimal.RequireFromString(raw)
		r.Price = &price
	}
}

func TestValidateValidRequest(t *testing.T) {
	validation := NewValidation()

	req := validRequest()
	assert.Empty(t, validation.Validate(&req))
}

func TestValidateSingleFieldViolations(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*CreateItemRequest)
		want   string
	}{
		{
			"blank name",
			func(r *CreateItemRequest) { r.Name = "   " },
			"name: Item name is required",
		},
		{
			"name too short",
			func(r *CreateItemRequest) { r.Name = "W" },
			"name: Item name must be between 2 and 100 characters",
		},
		{
			"name too long",
			func(r *CreateItemRequest) { r.Name = strings.Repeat("w", 101) },
			"name: Item name must be between 2 and 100 characters",
		},
		{
			"blank description",
			func(r *CreateItemRequest) { r.Description = " " },
			"description: Item description is required",
		},
		{
			"description too short",
			func(r *CreateItemRequest) { r.Description = "too short" },
			"description: Description must be between 10 and 1000 characters",
		},
		{
			"description too long",
			func(r *CreateItemRequest) { r.Description = strings.Repeat("d", 1001) },
			"description: Description must be between 10 and 1000 characters",
		},
		{
			"missing price",
			func(r *CreateItemRequest) { r.Price = nil },
			"price: Price is required",
		},
		{
			"zero price",
			setPrice("0"),
			"price: Price must be greater than 0",
		},
		{
			"negative price",
			setPrice("-5.00"),
			"price: Price must be greater than 0",
		},
		{
			"too many decimal places",
			setPrice("9.999"),
			"price: Price must have at most 10 integer digits and 2 decimal places",
		},
		{
			"too many integer digits",
			setPrice("12345678901.00"),
			"price: Price must have at most 10 integer digits and 2 decimal places",
		},
		{
			"blank category",
			func(r *CreateItemRequest) { r.Category = " " },
			"category: Category is required",
		},
		{
			"category too short",
			func(r *CreateItemRequest) { r.Category = "T" },
			"category: Category must be between 2 and 50 characters",
		},
		{
			"category too long",
			func(r *CreateItemRequest) { r.Category = strings.Repeat("c", 51) },
			"category: Category must be between 2 and 50 characters",
		},
		{
			"missing quantity",
			func(r *CreateItemRequest) { r.Quantity = nil },
			"quantity: Quantity is required",
		},
		{
			"negative quantity",
			func(r *CreateItemRequest) { quantity := -1; r.Quantity = &quantity },
			"quantity: Quantity cannot be negative",
		},
		{
			"image url without scheme",
			func(r *CreateItemRequest) { r.ImageURL = "example.com/widget.png" },
			"imageUrl: Image URL must be a valid URL or empty",
		},
	}

	validation := NewValidation()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			violations := validation.Validate(&req)
			require.Len(t, violations, 1)
			assert.Equal(t, tc.want, violations[0])
		})
	}
}

func TestValidateBoundaryValues(t *testing.T) {
	validation := NewValidation()

	testCases := []struct {
		name   string
		mutate func(*CreateItemRequest)
	}{
		{"name at min length", func(r *CreateItemRequest) { r.Name = "ab" }},
		{"name at max length", func(r *CreateItemRequest) { r.Name = strings.Repeat("w", 100) }},
		{"description at min length", func(r *CreateItemRequest) { r.Description = strings.Repeat("d", 10) }},
		{"smallest valid price", setPrice("0.01")},
		{"largest valid price", setPrice("9999999999.99")},
		{"whole number price", setPrice("10")},
		{"zero quantity", func(r *CreateItemRequest) { quantity := 0; r.Quantity = &quantity }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			assert.Empty(t, validation.Validate(&req))
		})
	}
}

func TestValidateImageURLVariants(t *testing.T) {
	validation := NewValidation()

	for _, url := range []string{"", "http://example.com/widget.png", "https://example.com/widget.png"} {
		req := validRequest()
		req.ImageURL = url

		assert.Empty(t, validation.Validate(&req), "imageUrl %q should be accepted", url)
	}
}

func TestValidateCollectsEveryViolationInFieldOrder(t *testing.T) {
	validation := NewValidation()

	req := CreateItemRequest{}
	violations := validation.Validate(&req)

	assert.Equal(t, []string{
		"name: Item name is required",
		"description: Item description is required",
		"price: Price is required",
		"category: Category is required",
		"quantity: Quantity is required",
	}, violations)
}

func TestValidateReportsOneViolationPerField(t *testing.T) {
	validation := NewValidation()

	// A blank name also violates the length rule; only the first failing
	// rule per field is reported.
	req := validRequest()
	req.Name = " "

	violations := validation.Validate(&req)
	require.Len(t, violations, 1)
	assert.Equal(t, "name: Item name is required", violations[0])
}
