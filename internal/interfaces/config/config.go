// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
)

type Config struct {
	ConfigVersion string          `json:"config_version" yaml:"config_version"`
	Server        *ServerConfig   `json:"server" yaml:"server"`
	Database      *DatabaseConfig `json:"database" yaml:"database"`
}

func DefaultConfig() *Config {
	return &Config{
		ConfigVersion: ConfVersion.String(),
		Server:        defaultServerConfig(),
		Database:      defaultDatabaseConfig(),
	}
}

func (c *Config) CheckValid(logger log.LoggerInterface) *ValidResult {
	if version, err := newVersion(c.ConfigVersion); err != nil {
		return ValidFailWith(errors.New("version string parse fail"), err)
	} else if result := ConfVersion.checkVersion(version); result == MajorUnmatch || result == MinorUnmatch {
		return ValidFail(fmt.Errorf("config version mismatch, expected %s, got %s", ConfVersion.String(), version.String()))
	} else if result == PatchUnmatch {
		logger.WarnF("Config patch version %s differs from %s, continuing", version.String(), ConfVersion.String())
	}
	if c.Database == nil || c.Server == nil {
		return ValidFail(errors.New("config sections database and server are required"))
	}
	if result := c.Database.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.Server.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
