package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func testConfig() *c.KafkaConfig {
	return &c.KafkaConfig{Enabled: true, TopicPrefix: "airport", WriteDuration: time.Second}
}

func TestKafkaPublisherWritesJson(t *testing.T) {
	writer := &recordingWriter{}
	publisher := newKafkaPublisher(log.NewNullLogger(), testConfig(), writer)

	publisher.Publish(service.EventOrderCreated, "42", &service.OrderCreatedEvent{OrderId: 42, UserId: 3})

	require.Len(t, writer.messages, 1)
	message := writer.messages[0]
	assert.Equal(t, "airport.order.created", message.Topic)
	assert.Equal(t, []byte("42"), message.Key)
	decoded := &service.OrderCreatedEvent{}
	require.NoError(t, json.Unmarshal(message.Value, decoded))
	assert.Equal(t, uint(42), decoded.OrderId)
	assert.Equal(t, uint(3), decoded.UserId)
}

func TestKafkaPublisherSwallowsErrors(t *testing.T) {
	writer := &recordingWriter{err: errors.New("broker unavailable")}
	publisher := newKafkaPublisher(log.NewNullLogger(), testConfig(), writer)

	assert.NotPanics(t, func() {
		publisher.Publish(service.EventFlightScheduled, "1", &service.FlightScheduledEvent{FlightId: 1})
		publisher.Publish(service.EventFlightScheduled, "2", func() {})
	})
	assert.Empty(t, writer.messages)
}

func TestKafkaPublisherShutdownClosesWriter(t *testing.T) {
	writer := &recordingWriter{}
	publisher := newKafkaPublisher(log.NewNullLogger(), testConfig(), writer)
	require.NoError(t, publisher.ShutdownCallback().Invoke(context.Background()))
	assert.True(t, writer.closed)
}

func TestNewPublisherDisabled(t *testing.T) {
	publisher := NewPublisher(log.NewNullLogger(), &c.KafkaConfig{Enabled: false})
	assert.IsType(t, &NopPublisher{}, publisher)
	publisher.Publish(service.EventOrderCreated, "1", nil)
	assert.NoError(t, publisher.ShutdownCallback().Invoke(context.Background()))
}
