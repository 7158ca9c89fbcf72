// Package config
package config

import (
	"errors"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
)

type ServerConfig struct {
	General     *GeneralConfig     `json:"general" yaml:"general"`
	HttpServer  *HttpServerConfig  `json:"http_server" yaml:"http_server"`
	Maintenance *MaintenanceConfig `json:"maintenance" yaml:"maintenance"`
	Redis       *RedisConfig       `json:"redis" yaml:"redis"`
	Kafka       *KafkaConfig       `json:"kafka" yaml:"kafka"`
}

func defaultServerConfig() *ServerConfig {
	return &ServerConfig{
		General:     defaultGeneralConfig(),
		HttpServer:  defaultHttpServerConfig(),
		Maintenance: defaultMaintenanceConfig(),
		Redis:       defaultRedisConfig(),
		Kafka:       defaultKafkaConfig(),
	}
}

func (config *ServerConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if config.General == nil || config.HttpServer == nil || config.Maintenance == nil ||
		config.Redis == nil || config.Kafka == nil {
		return ValidFail(errors.New("server sections general, http_server, maintenance, redis and kafka are required"))
	}
	if result := config.General.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.HttpServer.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.Maintenance.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.Redis.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.Kafka.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
