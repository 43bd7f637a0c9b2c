package service

import (
	"context"
	"fmt"

	"github.com/kijanigreens/storefront/internal/events"
	"github.com/kijanigreens/storefront/internal/logging"
	"github.com/kijanigreens/storefront/internal/metrics"
	"github.com/kijanigreens/storefront/internal/models"
	"github.com/kijanigreens/storefront/internal/store"
)

type ContactService struct {
	Store    store.ContactStore
	Producer *events.Producer
}

// CreateContactMessage stores the message. There is no read path: the
// contact store is a write-only sink consumed out of band.
func (s *ContactService) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return nil, fmt.Errorf("name, email and message are required: %w", ErrValidation)
	}

	created, err := s.Store.CreateContactMessage(ctx, msg)
	if err != nil {
		return nil, err
	}

	metrics.ContactMessagesCreated.Inc()
	event := map[string]interface{}{
		"type":  "contact_message_created",
		"id":    created.ID,
		"email": created.Email,
	}
	if err := s.Producer.PublishEvent(ctx, events.TopicContact, created.ID.String(), event); err != nil {
		logging.FromContext(ctx).Warn("publish_event_failed", "topic", events.TopicContact, "error", err)
	}
	return created, nil
}
