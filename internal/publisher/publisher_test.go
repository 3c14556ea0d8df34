package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"example.com/wellness/internal/events"
)

func TestEventPublisherWritesHeaderAndKey(t *testing.T) {
	writer := &stubWriter{}
	pub := NewEventPublisher(writer, "exercise_plan_events")

	generatedAt := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	evt := events.PlanGenerated{
		EventID:     "evt-1",
		PlanName:    "Custom Exercise Plan",
		Exercises:   []string{"Walking", "Cycling"},
		Rules:       []string{"diabetes"},
		Age:         30,
		GeneratedAt: generatedAt,
	}
	require.NoError(t, pub.PublishPlanGenerated(context.Background(), evt))

	require.Len(t, writer.msgs, 1)
	require.Equal(t, "exercise_plan_events", writer.topic)
	msg := writer.msgs[0]
	require.Equal(t, []byte("evt-1"), msg.Key)
	require.Equal(t, generatedAt, msg.Time)
	require.Equal(t, []kafka.Header{{Key: "event_type", Value: []byte(events.EventTypePlanGenerated)}}, msg.Headers)

	var decoded events.PlanGenerated
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	require.Equal(t, evt.Exercises, decoded.Exercises)
	require.Equal(t, evt.Rules, decoded.Rules)
}

func TestEventPublisherWrapsWriteError(t *testing.T) {
	boom := errors.New("broker unavailable")
	pub := NewEventPublisher(&stubWriter{err: boom}, "plans")

	err := pub.PublishPlanGenerated(context.Background(), events.PlanGenerated{EventID: "evt-2"})
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "plans")
}

func TestNoopPublisherAcceptsEverything(t *testing.T) {
	var pub Publisher = NoopPublisher{}
	require.NoError(t, pub.PublishPlanGenerated(context.Background(), events.PlanGenerated{}))
}

func TestKafkaProducerReusesWriterPerTopic(t *testing.T) {
	producer := NewKafkaProducer(KafkaConfig{Brokers: []string{"localhost:9092"}})

	first := producer.writerForTopic("plans")
	second := producer.writerForTopic("plans")
	other := producer.writerForTopic("audit")

	require.Same(t, first, second)
	require.NotSame(t, first, other)
	require.Equal(t, 10*time.Millisecond, first.BatchTimeout)

	require.NoError(t, producer.Close())
	require.Empty(t, producer.writers)
}

type stubWriter struct {
	topic string
	msgs  []kafka.Message
	err   error
}

func (w *stubWriter) WriteMessages(_ context.Context, topic string, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.topic = topic
	w.msgs = append(w.msgs, msgs...)
	return nil
}
