package pizzeria

import "pizzeria-backend/internal/models"

// OrderToResponse converts a persisted order to its wire representation
func OrderToResponse(o *models.Order) *models.OrderResponse {
	return &models.OrderResponse{
		Crust:      string(o.Crust),
		Flavour:    string(o.Flavour),
		Size:       string(o.Size),
		TableNo:    o.TableNo,
		CustomerID: o.CustomerID,
		OrderID:    o.ID,
		Timestamp:  o.Timestamp,
	}
}

// OrdersToResponses converts a list of orders, preserving order. The result
// is never nil so an empty list serializes as [].
func OrdersToResponses(orders []models.Order) []models.OrderResponse {
	responses := make([]models.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *OrderToResponse(&orders[i]))
	}
	return responses
}

// PersonToResponse converts a person and their orders to the wire shape
func PersonToResponse(p *models.Person, orders []models.Order) *models.PersonResponse {
	return &models.PersonResponse{
		CustomerID: p.ID,
		Name:       p.Name,
		OrderList:  OrdersToResponses(orders),
	}
}
