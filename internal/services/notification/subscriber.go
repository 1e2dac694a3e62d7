package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pizzeria-backend/internal/logger"
	"pizzeria-backend/internal/messaging"
	"pizzeria-backend/internal/models"
)

// Subscriber consumes order events and prints human-readable notifications
type Subscriber struct {
	consumer *messaging.Consumer
	logger   *logger.Logger
}

// NewSubscriber creates a new notification subscriber
func NewSubscriber(consumer *messaging.Consumer, log *logger.Logger) *Subscriber {
	return &Subscriber{
		consumer: consumer,
		logger:   log,
	}
}

// Start consumes order events until the context is cancelled
func (s *Subscriber) Start(ctx context.Context) error {
	requestID := logger.GenerateRequestID()
	s.logger.Info("service_started", "Notification subscriber started", requestID, nil)

	err := s.consumer.StartConsuming(ctx, s.handleOrderEvent)
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("notification consumer failed: %w", err)
	}
	return nil
}

// handleOrderEvent processes a single order event message
func (s *Subscriber) handleOrderEvent(ctx context.Context, body []byte) error {
	requestID := logger.GenerateRequestID()

	var event models.OrderEventMessage
	if err := json.Unmarshal(body, &event); err != nil {
		s.logger.Error("message_parsing_failed", "Failed to parse order event", requestID, err, nil)
		return fmt.Errorf("failed to parse order event: %w", err)
	}

	s.logger.Debug("event_received", "Received order event", requestID, map[string]interface{}{
		"event":    event.Event,
		"order_id": event.OrderID,
	})

	fmt.Println(formatNotification(&event))
	return nil
}

// formatNotification renders an event as a single human-readable line
func formatNotification(event *models.OrderEventMessage) string {
	when := time.UnixMilli(event.Timestamp).UTC().Format(time.RFC3339)

	switch event.Event {
	case models.EventOrderCreated:
		return fmt.Sprintf("[%s] Order #%d created: %s %s pizza for customer #%d at table %d",
			when, event.OrderID, event.Size, event.Flavour, event.CustomerID, event.TableNo)
	case models.EventOrderDeleted:
		return fmt.Sprintf("[%s] Order #%d deleted", when, event.OrderID)
	default:
		return fmt.Sprintf("[%s] Unknown order event %q for order #%d", when, event.Event, event.OrderID)
	}
}
