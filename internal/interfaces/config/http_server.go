// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"time"
)

type HttpServerConfig struct {
	Enabled         bool             `json:"enabled" yaml:"enabled"`
	Host            string           `json:"host" yaml:"host"`
	Port            uint             `json:"port" yaml:"port"`
	Address         string           `json:"-" yaml:"-"`
	ProxyType       int              `json:"proxy_type" yaml:"proxy_type"`
	BodyLimit       string           `json:"body_limit" yaml:"body_limit"`
	RequestTimeout  string           `json:"request_timeout" yaml:"request_timeout"`
	RequestDuration time.Duration    `json:"-" yaml:"-"`
	Store           *HttpServerStore `json:"store" yaml:"store"`
	Limits          *HttpServerLimit `json:"limits" yaml:"limits"`
	Email           *EmailConfig     `json:"email" yaml:"email"`
	JWT             *JWTConfig       `json:"jwt" yaml:"jwt"`
	SSL             *SSLConfig       `json:"ssl" yaml:"ssl"`
}

func defaultHttpServerConfig() *HttpServerConfig {
	return &HttpServerConfig{
		Enabled:        true,
		Host:           "0.0.0.0",
		Port:           8000,
		ProxyType:      0,
		BodyLimit:      "10MB",
		RequestTimeout: "30s",
		Store:          defaultHttpServerStore(),
		Limits:         defaultHttpServerLimit(),
		Email:          defaultEmailConfig(),
		JWT:            defaultJWTConfig(),
		SSL:            defaultSSLConfig(),
	}
}

func (config *HttpServerConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if !config.Enabled {
		return ValidPass()
	}
	if result := checkPort(config.Port); result.IsFail() {
		return result
	}

	config.Address = fmt.Sprintf("%s:%d", config.Host, config.Port)

	if config.BodyLimit == "" {
		logger.WarnF("body_limit is empty, where the length of the request body is not restricted. This is a very dangerous behavior")
	}

	if duration, err := time.ParseDuration(config.RequestTimeout); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.request_timeout"), err)
	} else {
		config.RequestDuration = duration
	}

	if config.SSL == nil || config.Limits == nil || config.Email == nil || config.JWT == nil || config.Store == nil {
		return ValidFail(errors.New("http_server sections ssl, limits, email, jwt and store are required"))
	}
	if result := config.SSL.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.Limits.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.Email.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.JWT.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.Store.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
