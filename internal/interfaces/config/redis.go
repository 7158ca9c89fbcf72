// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"time"
)

type RedisConfig struct {
	Enabled     bool          `json:"enabled" yaml:"enabled"`
	Host        string        `json:"host" yaml:"host"`
	Port        uint          `json:"port" yaml:"port"`
	Address     string        `json:"-" yaml:"-"`
	Password    string        `json:"password" yaml:"password"`
	DB          int           `json:"db" yaml:"db"`
	KeyPrefix   string        `json:"key_prefix" yaml:"key_prefix"`
	CacheTime   string        `json:"cache_time" yaml:"cache_time"`
	CacheExpire time.Duration `json:"-" yaml:"-"`
}

func defaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Enabled:   false,
		Host:      "127.0.0.1",
		Port:      6379,
		DB:        0,
		KeyPrefix: "airport",
		CacheTime: "30s",
	}
}

func (config *RedisConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	if !config.Enabled {
		return ValidPass()
	}
	if config.Host == "" {
		return ValidFail(errors.New("invalid json field redis.host, cannot be empty"))
	}
	if config.Port == 0 || config.Port > 65535 {
		return ValidFailF("invalid json field redis.port %d", config.Port)
	}
	config.Address = fmt.Sprintf("%s:%d", config.Host, config.Port)
	if duration, err := time.ParseDuration(config.CacheTime); err != nil {
		return ValidFailWith(errors.New("invalid json field redis.cache_time"), err)
	} else {
		config.CacheExpire = duration
	}
	return ValidPass()
}
