// Package config
package config

import (
	"errors"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"gopkg.in/gomail.v2"
	"time"
)

type EmailConfig struct {
	Enabled      bool                 `json:"enabled" yaml:"enabled"`
	Host         string               `json:"host" yaml:"host"`
	Port         int                  `json:"port" yaml:"port"`
	EmailServer  *gomail.Dialer       `json:"-" yaml:"-"`
	Username     string               `json:"username" yaml:"username"`
	Password     string               `json:"password" yaml:"password"`
	From         string               `json:"from" yaml:"from"`
	SendTimeout  string               `json:"send_timeout" yaml:"send_timeout"`
	SendDuration time.Duration        `json:"-" yaml:"-"`
	Template     *EmailTemplateConfig `json:"template" yaml:"template"`
}

func defaultEmailConfig() *EmailConfig {
	return &EmailConfig{
		Enabled:     false,
		Host:        "smtp.example.com",
		Port:        465,
		Username:    "noreply@example.com",
		Password:    "",
		From:        "noreply@example.com",
		SendTimeout: "10s",
		Template:    defaultEmailTemplateConfig(),
	}
}

func (config *EmailConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if !config.Enabled {
		return ValidPass()
	}

	if duration, err := time.ParseDuration(config.SendTimeout); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.email.send_timeout"), err)
	} else {
		config.SendDuration = duration
	}

	if config.Template == nil {
		return ValidFail(errors.New("invalid json field http_server.email.template, cannot be empty"))
	}
	if result := config.Template.checkValid(logger); result.IsFail() {
		return result
	}

	if config.From == "" {
		config.From = config.Username
	}

	config.EmailServer = gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	dial, err := config.EmailServer.Dial()
	if err != nil {
		return ValidFailWith(errors.New("connecting to smtp server fail"), err)
	}
	_ = dial.Close()

	return ValidPass()
}
