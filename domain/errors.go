package domain

import "fmt"

// ItemNotFoundError signals a lookup for an id no stored item carries.
type ItemNotFoundError struct {
	ID int64
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("Item not found with ID: %d", e.ID)
}
