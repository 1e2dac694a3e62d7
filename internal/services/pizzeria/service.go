package pizzeria

import (
	"context"
	"fmt"
	"time"

	"pizzeria-backend/internal/logger"
	"pizzeria-backend/internal/models"
)

// EventPublisher publishes order events. Publishing is best-effort: failures
// are logged and never surfaced to the caller.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event *models.OrderEventMessage) error
}

// Service implements the pizzeria operations: token issuance, person
// registration, order creation, listing and deletion.
type Service struct {
	repo      Repository
	tokens    TokenIssuer
	publisher EventPublisher
	logger    *logger.Logger
}

// NewService creates the pizzeria service. publisher may be nil when RabbitMQ
// is unavailable; order events are then skipped.
func NewService(repo Repository, tokens TokenIssuer, publisher EventPublisher, log *logger.Logger) *Service {
	return &Service{
		repo:      repo,
		tokens:    tokens,
		publisher: publisher,
		logger:    log,
	}
}

// FetchTokenForUser returns the fixed token for valid credentials and an
// empty token for all other cases.
func (s *Service) FetchTokenForUser(req *models.UserAuthRequest) *models.AccessTokenResponse {
	return &models.AccessTokenResponse{
		AccessToken: s.tokens.IssueToken(req.Username, req.Password),
	}
}

// RegisterPerson persists a new person with an empty order list
func (s *Service) RegisterPerson(ctx context.Context, req *models.RegisterPersonRequest) (*models.PersonResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id, err := s.repo.InsertPerson(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	person := &models.Person{ID: id, Name: req.Name}
	return PersonToResponse(person, nil), nil
}

// ReadAllOrdersSortedByTime returns every order, ascending by timestamp
func (s *Service) ReadAllOrdersSortedByTime(ctx context.Context) ([]models.OrderResponse, error) {
	orders, err := s.repo.GetAllOrders(ctx)
	if err != nil {
		return nil, err
	}
	return OrdersToResponses(orders), nil
}

// ReadOrdersForPerson returns the given person's orders, ascending by
// timestamp. Fails with a NotFoundError when the person does not exist.
func (s *Service) ReadOrdersForPerson(ctx context.Context, personID int64) ([]models.OrderResponse, error) {
	if _, err := s.repo.GetPersonByID(ctx, personID); err != nil {
		return nil, err
	}

	orders, err := s.repo.GetOrdersByCustomer(ctx, personID)
	if err != nil {
		return nil, err
	}
	return OrdersToResponses(orders), nil
}

// CreateOrder resolves the customer, stamps the current time and persists the
// order. Fails with a NotFoundError before any persistence side effect when
// the customer does not exist.
func (s *Service) CreateOrder(ctx context.Context, req *models.CreateOrderRequest, requestID string) (*models.OrderResponse, error) {
	order, err := req.ToOrder()
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetPersonByID(ctx, order.CustomerID); err != nil {
		return nil, err
	}

	order.Timestamp = time.Now().UnixMilli()

	id, err := s.repo.InsertOrder(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = id

	s.logger.Debug("order_created", fmt.Sprintf("Created order #%d", id), requestID, map[string]interface{}{
		"order_id":    id,
		"customer_id": order.CustomerID,
	})

	s.publishEvent(ctx, models.NewOrderCreatedEvent(order), requestID)

	return OrderToResponse(order), nil
}

// RemoveOrder deletes the order permanently. Fails with a NotFoundError when
// the order does not exist.
func (s *Service) RemoveOrder(ctx context.Context, orderID int64, requestID string) error {
	if err := s.repo.DeleteOrder(ctx, orderID); err != nil {
		return err
	}

	s.logger.Debug("order_deleted", fmt.Sprintf("Deleted order #%d", orderID), requestID, map[string]interface{}{
		"order_id": orderID,
	})

	s.publishEvent(ctx, models.NewOrderDeletedEvent(orderID, time.Now().UnixMilli()), requestID)

	return nil
}

// HealthCheck reports whether the backing store is reachable
func (s *Service) HealthCheck(ctx context.Context) bool {
	return s.repo.Ping(ctx) == nil
}

func (s *Service) publishEvent(ctx context.Context, event *models.OrderEventMessage, requestID string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Error("event_publish_failed", "Failed to publish order event", requestID, err, map[string]interface{}{
			"event":    event.Event,
			"order_id": event.OrderID,
		})
	}
}
