// Package config
package config

import "github.com/half-nothing/airport-booking/internal/interfaces/log"

type SSLConfig struct {
	Enable          bool   `json:"enable" yaml:"enable"`
	EnableHSTS      bool   `json:"enable_hsts" yaml:"enable_hsts"`
	ForceSSL        bool   `json:"force_ssl" yaml:"force_ssl"`
	HstsExpiredTime int    `json:"hsts_expired_time" yaml:"hsts_expired_time"`
	IncludeDomain   bool   `json:"include_domain" yaml:"include_domain"`
	CertFile        string `json:"cert_file" yaml:"cert_file"`
	KeyFile         string `json:"key_file" yaml:"key_file"`
}

func defaultSSLConfig() *SSLConfig {
	return &SSLConfig{HstsExpiredTime: 5184000}
}

func (config *SSLConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if config.Enable && (config.CertFile == "" || config.KeyFile == "") {
		logger.WarnF("HTTPS requires both cert and key files. Cert: %q, Key: %q. Falling back to HTTP", config.CertFile, config.KeyFile)
		config.Enable = false
	}
	if !config.Enable {
		if config.EnableHSTS || config.ForceSSL {
			logger.Warn("HSTS and force_ssl need ssl enabled, both are turned off")
		}
		config.EnableHSTS = false
		config.ForceSSL = false
		config.HstsExpiredTime = 0
		config.IncludeDomain = false
	}
	return ValidPass()
}
