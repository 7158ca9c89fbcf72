// Package event
package event

import (
	"context"
	"encoding/json"
	"time"

	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/global"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes every event as JSON to the topic <prefix>.<event>, keyed by entity id
type KafkaPublisher struct {
	logger       log.LoggerInterface
	config       *c.KafkaConfig
	writer       messageWriter
	writeTimeout time.Duration
	now          func() time.Time
}

func newKafkaPublisher(logger log.LoggerInterface, config *c.KafkaConfig, writer messageWriter) *KafkaPublisher {
	return &KafkaPublisher{
		logger:       logger,
		config:       config,
		writer:       writer,
		writeTimeout: config.WriteDuration,
		now:          time.Now,
	}
}

func NewKafkaPublisher(logger log.LoggerInterface, config *c.KafkaConfig) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(config.Brokers...),
		Balancer:               &kafka.Hash{},
		BatchTimeout:           config.BatchDuration,
		WriteTimeout:           config.WriteDuration,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	logger.InfoF("Publishing domain events to kafka brokers %v", config.Brokers)
	return newKafkaPublisher(logger, config, writer)
}

// Publish never fails the caller, the state change it reports is already committed
func (publisher *KafkaPublisher) Publish(event string, key string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		publisher.logger.ErrorF("Fail to encode %s event %s, %v", event, key, err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), publisher.writeTimeout)
	defer cancel()
	message := kafka.Message{
		Topic: publisher.config.Topic(event),
		Key:   []byte(key),
		Value: data,
		Time:  publisher.now(),
	}
	if err := publisher.writer.WriteMessages(ctx, message); err != nil {
		publisher.logger.ErrorF("Fail to publish %s event %s, %v", event, key, err)
		return
	}
	publisher.logger.DebugF("Published %s event %s", event, key)
}

func (publisher *KafkaPublisher) ShutdownCallback() global.Callable {
	return global.CallableFunc(func(context.Context) error {
		publisher.logger.Info("Closing kafka writer")
		return publisher.writer.Close()
	})
}

// NopPublisher drops every event, used while kafka is disabled
type NopPublisher struct {
	logger log.LoggerInterface
}

func NewNopPublisher(logger log.LoggerInterface) *NopPublisher {
	return &NopPublisher{logger: logger}
}

func (publisher *NopPublisher) Publish(event string, key string, _ interface{}) {
	publisher.logger.DebugF("Kafka disabled, dropping %s event %s", event, key)
}

func (publisher *NopPublisher) ShutdownCallback() global.Callable {
	return global.CallableFunc(func(context.Context) error { return nil })
}

func NewPublisher(logger log.LoggerInterface, config *c.KafkaConfig) service.EventPublisherInterface {
	if !config.Enabled {
		return NewNopPublisher(logger)
	}
	return NewKafkaPublisher(logger, config)
}
