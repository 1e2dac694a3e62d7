package models

// Person is a registered customer. The order list is a derived view queried
// from the orders table, not a stored back-pointer.
type Person struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// RegisterPersonRequest is the request to register a new customer
type RegisterPersonRequest struct {
	Name string `json:"name"`
}

// Validate checks the registration request fields. Any non-empty name is
// accepted; registration has no uniqueness or length constraint.
func (r *RegisterPersonRequest) Validate() error {
	if r.Name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	return nil
}

// PersonResponse is the wire representation of a registered customer
type PersonResponse struct {
	CustomerID int64           `json:"Customer_ID"`
	Name       string          `json:"name"`
	OrderList  []OrderResponse `json:"Order_List"`
}
