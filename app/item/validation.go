package item

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var imageURLPattern = regexp.MustCompile(`^https?://`)

// fieldMessages maps "field.rule" to the message reported for it. Rules not
// listed here fall back to a generic message, which only happens if a request
// struct grows a tag without a matching entry.
var fieldMessages = map[string]string{
	"name.notblank":        "Item name is required",
	"name.min":             "Item name must be between 2 and 100 characters",
	"name.max":             "Item name must be between 2 and 100 characters",
	"description.notblank": "Item description is required",
	"description.min":      "Description must be between 10 and 1000 characters",
	"description.max":      "Description must be between 10 and 1000 characters",
	"price.required":       "Price is required",
	"price.positive":       "Price must be greater than 0",
	"price.digits":         "Price must have at most 10 integer digits and 2 decimal places",
	"category.notblank":    "Category is required",
	"category.min":         "Category must be between 2 and 50 characters",
	"category.max":         "Category must be between 2 and 50 characters",
	"quantity.required":    "Quantity is required",
	"quantity.gte":         "Quantity cannot be negative",
	"imageUrl.imageurl":    "Image URL must be a valid URL or empty",
}

// Validation wraps the struct validator with the item field rules and turns
// its output into the violation strings the API reports.
type Validation struct {
	validate *validator.Validate
}

func NewValidation() *Validation {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report violations under the field's JSON name.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("notblank", validateNotBlank)
	_ = validate.RegisterValidation("positive", validatePositive)
	_ = validate.RegisterValidation("digits", validateDigits)
	_ = validate.RegisterValidation("imageurl", validateImageURL)

	return &Validation{validate: validate}
}

// Validate checks every field rule on s and returns one formatted violation
// per failing field, in field declaration order. A nil result means s is
// valid.
func (v *Validation) Validate(s any) []string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	violations := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		violations = append(violations, formatViolation(fieldErr))
	}
	return violations
}

func formatViolation(fieldErr validator.FieldError) string {
	if msg, ok := fieldMessages[fieldErr.Field()+"."+fieldErr.Tag()]; ok {
		return fieldErr.Field() + ": " + msg
	}
	return fieldErr.Field() + ": failed on the '" + fieldErr.Tag() + "' rule"
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validatePositive(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.IsPositive()
}

// validateDigits allows at most 10 digits before the decimal point and at
// most 2 after it.
func validateDigits(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	if d.Exponent() < -2 {
		return false
	}
	return len(d.Abs().Truncate(0).String()) <= 10
}

func validateImageURL(fl validator.FieldLevel) bool {
	return imageURLPattern.MatchString(fl.Field().String())
}
