// Package config
package config

import (
	"errors"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/thanhpk/randstr"
	"time"
)

type JWTConfig struct {
	Secret          string        `json:"secret" yaml:"secret"`
	ExpiresTime     string        `json:"expires_time" yaml:"expires_time"`
	ExpiresDuration time.Duration `json:"-" yaml:"-"`
	RefreshTime     string        `json:"refresh_time" yaml:"refresh_time"`
	RefreshDuration time.Duration `json:"-" yaml:"-"`
}

func defaultJWTConfig() *JWTConfig {
	return &JWTConfig{
		Secret:      randstr.String(64),
		ExpiresTime: "30m",
		RefreshTime: "24h",
	}
}

func (config *JWTConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if duration, err := time.ParseDuration(config.ExpiresTime); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.jwt.expires_time"), err)
	} else {
		config.ExpiresDuration = duration
	}

	if duration, err := time.ParseDuration(config.RefreshTime); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.jwt.refresh_time"), err)
	} else {
		config.RefreshDuration = duration
	}

	if config.ExpiresDuration <= 0 || config.RefreshDuration <= 0 {
		return ValidFail(errors.New("jwt expires_time and refresh_time must be positive"))
	}

	if config.Secret == "" {
		config.Secret = randstr.String(64)
		logger.Warn("JWT secret is empty, a random one was generated and tokens will not survive a restart")
	}

	return ValidPass()
}
