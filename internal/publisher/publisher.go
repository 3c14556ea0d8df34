// Package publisher announces generated plans to downstream consumers over Kafka.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"example.com/wellness/internal/events"
)

// Publisher delivers plan events.
type Publisher interface {
	PublishPlanGenerated(ctx context.Context, evt events.PlanGenerated) error
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

// PublishPlanGenerated performs no action.
func (NoopPublisher) PublishPlanGenerated(context.Context, events.PlanGenerated) error { return nil }

type messageWriter interface {
	WriteMessages(context.Context, string, ...kafka.Message) error
}

// EventPublisher encodes plan events as JSON Kafka records on a single topic.
type EventPublisher struct {
	writer messageWriter
	topic  string
}

// NewEventPublisher constructs an EventPublisher writing to topic.
func NewEventPublisher(writer messageWriter, topic string) *EventPublisher {
	return &EventPublisher{writer: writer, topic: topic}
}

// PublishPlanGenerated writes the event keyed by its ID.
func (p *EventPublisher) PublishPlanGenerated(ctx context.Context, evt events.PlanGenerated) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode plan event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(evt.EventID),
		Value: payload,
		Time:  evt.GeneratedAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(events.EventTypePlanGenerated)},
		},
	}
	if err := p.writer.WriteMessages(ctx, p.topic, msg); err != nil {
		failedCounter.WithLabelValues(p.topic).Inc()
		return fmt.Errorf("write %s: %w", p.topic, err)
	}
	publishedCounter.WithLabelValues(p.topic).Inc()
	return nil
}
