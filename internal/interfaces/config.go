// Package interfaces
package interfaces

import (
	. "github.com/half-nothing/airport-booking/internal/interfaces/config"
)

type ConfigManagerInterface interface {
	Config() *Config
	SaveConfig() error
}
