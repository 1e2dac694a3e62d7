package models

// Order is a single pizza order owned by exactly one person. The timestamp is
// epoch milliseconds, set once at creation and never updated.
type Order struct {
	ID         int64   `json:"id" db:"id"`
	Crust      Crust   `json:"crust" db:"crust"`
	Flavour    Flavour `json:"flavour" db:"flavour"`
	Size       Size    `json:"size" db:"size"`
	TableNo    int     `json:"table_no" db:"table_no"`
	CustomerID int64   `json:"customer_id" db:"customer_id"`
	Timestamp  int64   `json:"order_ts" db:"order_ts"`
}

// CreateOrderRequest is the request to create a new order
type CreateOrderRequest struct {
	Crust      string `json:"Crust"`
	Flavour    string `json:"Flavor"`
	Size       string `json:"Size"`
	TableNo    int    `json:"Table_No"`
	CustomerID int64  `json:"Customer_ID"`
}

// Validate checks the order request fields and resolves the enumerations
func (r *CreateOrderRequest) Validate() error {
	_, err := r.ToOrder()
	return err
}

// ToOrder builds an Order entity from a validated request. The id and
// timestamp are assigned later, on persistence.
func (r *CreateOrderRequest) ToOrder() (*Order, error) {
	crust, err := ParseCrust(r.Crust)
	if err != nil {
		return nil, err
	}
	flavour, err := ParseFlavour(r.Flavour)
	if err != nil {
		return nil, err
	}
	size, err := ParseSize(r.Size)
	if err != nil {
		return nil, err
	}
	// Only the zero value is rejected, as a missing required field; the
	// table number itself is unbounded.
	if r.TableNo == 0 {
		return nil, ValidationError{Field: "Table_No", Message: "table number is required"}
	}
	if r.CustomerID <= 0 {
		return nil, ValidationError{Field: "Customer_ID", Message: "customer id is required"}
	}
	return &Order{
		Crust:      crust,
		Flavour:    flavour,
		Size:       size,
		TableNo:    r.TableNo,
		CustomerID: r.CustomerID,
	}, nil
}

// OrderResponse is the wire representation of an order
type OrderResponse struct {
	Crust      string `json:"Crust"`
	Flavour    string `json:"Flavor"`
	Size       string `json:"Size"`
	TableNo    int    `json:"Table_No"`
	CustomerID int64  `json:"Customer_ID"`
	OrderID    int64  `json:"Order_ID"`
	Timestamp  int64  `json:"Timestamp"`
}

// UserAuthRequest carries login credentials
type UserAuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AccessTokenResponse carries the issued access token
type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ResponseMessage is the uniform body for error and confirmation messages
type ResponseMessage struct {
	Msg string `json:"msg"`
}
