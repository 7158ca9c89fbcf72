// Package config
package config

import (
	"errors"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"time"
)

type KafkaConfig struct {
	Enabled       bool          `json:"enabled" yaml:"enabled"`
	Brokers       []string      `json:"brokers" yaml:"brokers"`
	TopicPrefix   string        `json:"topic_prefix" yaml:"topic_prefix"`
	WriteTimeout  string        `json:"write_timeout" yaml:"write_timeout"`
	WriteDuration time.Duration `json:"-" yaml:"-"`
	BatchTimeout  string        `json:"batch_timeout" yaml:"batch_timeout"`
	BatchDuration time.Duration `json:"-" yaml:"-"`
}

func defaultKafkaConfig() *KafkaConfig {
	return &KafkaConfig{
		Enabled:      false,
		Brokers:      []string{"127.0.0.1:9092"},
		TopicPrefix:  "airport",
		WriteTimeout: "5s",
		BatchTimeout: "50ms",
	}
}

func (config *KafkaConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	if !config.Enabled {
		return ValidPass()
	}
	if len(config.Brokers) == 0 {
		return ValidFail(errors.New("invalid json field kafka.brokers, at least one broker required"))
	}
	if config.TopicPrefix == "" {
		return ValidFail(errors.New("invalid json field kafka.topic_prefix, cannot be empty"))
	}
	if duration, err := time.ParseDuration(config.WriteTimeout); err != nil {
		return ValidFailWith(errors.New("invalid json field kafka.write_timeout"), err)
	} else {
		config.WriteDuration = duration
	}
	if duration, err := time.ParseDuration(config.BatchTimeout); err != nil {
		return ValidFailWith(errors.New("invalid json field kafka.batch_timeout"), err)
	} else {
		config.BatchDuration = duration
	}
	return ValidPass()
}

// Topic prefixes an event name, e.g. airport.order.created
func (config *KafkaConfig) Topic(name string) string {
	return config.TopicPrefix + "." + name
}
