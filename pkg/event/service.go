package event

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/doacao-api/pkg/messaging"
	"github.com/jwalitptl/doacao-api/pkg/metrics"
)

type Service struct {
	broker  messaging.Broker
	prefix  string
	metrics *metrics.Metrics
}

// NewService publishes events on "<prefix>.<resource>.<action>". m may be nil.
func NewService(broker messaging.Broker, prefix string, m *metrics.Metrics) *Service {
	if broker == nil {
		broker = messaging.NoopBroker{}
	}
	return &Service{broker: broker, prefix: prefix, metrics: m}
}

func (s *Service) Channel(t EventType) string {
	if s.prefix == "" {
		return string(t)
	}
	return s.prefix + "." + string(t)
}

func (s *Service) Emit(ctx context.Context, e *Event) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Type == "" {
		e.Type = NewEventType(e.Resource, e.Action)
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}

	if err := s.broker.Publish(ctx, s.Channel(e.Type), e); err != nil {
		if s.metrics != nil {
			s.metrics.EventsFailed.WithLabelValues(string(e.Type)).Inc()
		}
		return fmt.Errorf("failed to publish %s: %w", e.Type, err)
	}
	if s.metrics != nil {
		s.metrics.EventsPublished.WithLabelValues(string(e.Type)).Inc()
	}
	return nil
}
