// Package config
package config

import (
	"errors"
	"github.com/half-nothing/airport-booking/internal/interfaces/global"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"os"
	"path/filepath"
)

type HttpServerStoreFileLimit struct {
	MaxFileSize    int64    `json:"max_file_size" yaml:"max_file_size"`
	AllowedFileExt []string `json:"allowed_file_ext" yaml:"allowed_file_ext"`
	StorePrefix    string   `json:"store_prefix" yaml:"store_prefix"`
	StoreInServer  bool     `json:"store_in_server" yaml:"store_in_server"`
	RootPath       string   `json:"-" yaml:"-"`
}

func (config *HttpServerStoreFileLimit) checkValid(_ log.LoggerInterface) *ValidResult {
	if config.MaxFileSize <= 0 {
		return ValidFail(errors.New("invalid json field http_server.store.file_limit.max_file_size, must be positive"))
	}
	if len(config.AllowedFileExt) == 0 {
		return ValidFail(errors.New("invalid json field http_server.store.file_limit.allowed_file_ext, cannot be empty"))
	}
	if config.StorePrefix == "" {
		return ValidFail(errors.New("invalid json field http_server.store.file_limit.store_prefix, cannot be empty"))
	}
	return ValidPass()
}

type HttpServerStoreFileLimits struct {
	AirplaneImageLimit *HttpServerStoreFileLimit `json:"airplane_image_limit" yaml:"airplane_image_limit"`
}

func defaultHttpServerStoreFileLimits() *HttpServerStoreFileLimits {
	return &HttpServerStoreFileLimits{
		AirplaneImageLimit: &HttpServerStoreFileLimit{
			MaxFileSize:    5 * 1024 * 1024,
			AllowedFileExt: []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".webp"},
			StorePrefix:    "airplanes",
			StoreInServer:  true,
		},
	}
}

func (config *HttpServerStoreFileLimits) checkValid(logger log.LoggerInterface) *ValidResult {
	if config.AirplaneImageLimit == nil {
		return ValidFail(errors.New("invalid json field http_server.store.file_limit.airplane_image_limit, cannot be empty"))
	}
	return config.AirplaneImageLimit.checkValid(logger)
}

func (config *HttpServerStoreFileLimits) CheckLocalStore(_ log.LoggerInterface, localStore bool) *ValidResult {
	if localStore && !config.AirplaneImageLimit.StoreInServer {
		return ValidFail(errors.New("when you use local store, store_in_server must be true"))
	}
	return ValidPass()
}

func (config *HttpServerStoreFileLimits) CreateDir(_ log.LoggerInterface, root string) *ValidResult {
	config.AirplaneImageLimit.RootPath = root
	if config.AirplaneImageLimit.StoreInServer {
		imagePath := filepath.Join(root, config.AirplaneImageLimit.StorePrefix)
		if err := os.MkdirAll(imagePath, global.DefaultDirectoryPermission); err != nil {
			return ValidFailWith(errors.New("error creating the airplane image directory"), err)
		}
	}
	return ValidPass()
}
