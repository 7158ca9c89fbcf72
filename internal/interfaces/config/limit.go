// Package config
package config

import (
	"errors"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"time"
)

type HttpServerLimit struct {
	RateLimit         int           `json:"rate_limit" yaml:"rate_limit"`
	RateLimitWindow   string        `json:"rate_limit_window" yaml:"rate_limit_window"`
	RateLimitDuration time.Duration `json:"-" yaml:"-"`
	EmailLengthMin    int           `json:"email_length_min" yaml:"email_length_min"`
	EmailLengthMax    int           `json:"email_length_max" yaml:"email_length_max"`
	PasswordLengthMin int           `json:"password_length_min" yaml:"password_length_min"`
	PasswordLengthMax int           `json:"password_length_max" yaml:"password_length_max"`
	DefaultPageSize   int           `json:"default_page_size" yaml:"default_page_size"`
	MaxPageSize       int           `json:"max_page_size" yaml:"max_page_size"`
}

func defaultHttpServerLimit() *HttpServerLimit {
	return &HttpServerLimit{
		RateLimit:         60,
		RateLimitWindow:   "1m",
		EmailLengthMin:    4,
		EmailLengthMax:    128,
		PasswordLengthMin: 5,
		PasswordLengthMax: 64,
		DefaultPageSize:   20,
		MaxPageSize:       100,
	}
}

type lengthRange struct {
	field    string
	min, max int
	ceiling  int
}

func (r lengthRange) check() *ValidResult {
	switch {
	case r.min <= 0:
		return ValidFailF("invalid json field http_server.limits.%s_min, value must larger than 0", r.field)
	case r.max > r.ceiling:
		return ValidFailF("invalid json field http_server.limits.%s_max, value must less than %d", r.field, r.ceiling)
	case r.min >= r.max:
		return ValidFailF("invalid json field http_server.limits.%s_min, value must less than http_server.limits.%s_max", r.field, r.field)
	}
	return ValidPass()
}

func (config *HttpServerLimit) checkValid(_ log.LoggerInterface) *ValidResult {
	if duration, err := time.ParseDuration(config.RateLimitWindow); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.limits.rate_limit_window"), err)
	} else {
		config.RateLimitDuration = duration
	}
	if config.RateLimit <= 0 || config.RateLimitDuration <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.rate_limit, rate and window must be positive"))
	}

	ranges := []lengthRange{
		{"email_length", config.EmailLengthMin, config.EmailLengthMax, 256},
		{"password_length", config.PasswordLengthMin, config.PasswordLengthMax, 128},
		{"page_size", config.DefaultPageSize, config.MaxPageSize + 1, 1001},
	}
	for _, r := range ranges {
		if result := r.check(); result.IsFail() {
			return result
		}
	}
	return ValidPass()
}
