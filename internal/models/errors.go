package models

import "fmt"

// ValidationError reports a malformed or missing request field
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports a referenced entity that does not exist
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s #%d not found.", e.Resource, e.ID)
}

// NewOrderNotFound reports a missing order
func NewOrderNotFound(id int64) NotFoundError {
	return NotFoundError{Resource: "Order", ID: id}
}

// NewPersonNotFound reports a missing person
func NewPersonNotFound(id int64) NotFoundError {
	return NotFoundError{Resource: "Person", ID: id}
}
