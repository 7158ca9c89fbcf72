// Package config
package config

import (
	"errors"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"time"
)

type MaintenanceConfig struct {
	Enabled        bool          `json:"enabled" yaml:"enabled"`
	SweepInterval  string        `json:"sweep_interval" yaml:"sweep_interval"`
	SweepDuration  time.Duration `json:"-" yaml:"-"`
	SweepOnStartup bool          `json:"sweep_on_startup" yaml:"sweep_on_startup"`
}

func defaultMaintenanceConfig() *MaintenanceConfig {
	return &MaintenanceConfig{
		Enabled:        true,
		SweepInterval:  "1m",
		SweepOnStartup: true,
	}
}

func (config *MaintenanceConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	if !config.Enabled {
		return ValidPass()
	}
	if duration, err := time.ParseDuration(config.SweepInterval); err != nil {
		return ValidFailWith(errors.New("invalid json field maintenance.sweep_interval"), err)
	} else if duration < time.Second {
		return ValidFail(errors.New("invalid json field maintenance.sweep_interval, must be at least 1s"))
	} else {
		config.SweepDuration = duration
	}
	return ValidPass()
}
