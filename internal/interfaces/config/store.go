// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/airport-booking/internal/interfaces/global"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"os"
	"path/filepath"
)

type StoreType int

const (
	LocalStore StoreType = iota
	ALiYunOssStore
	TencentCosStore
)

type HttpServerStore struct {
	StoreType       StoreType                  `json:"store_type" yaml:"store_type"` // 0: local, 1: aliyun oss, 2: tencent cos
	Region          string                     `json:"region" yaml:"region"`
	Bucket          string                     `json:"bucket" yaml:"bucket"`
	AccessId        string                     `json:"access_id" yaml:"access_id"`
	AccessKey       string                     `json:"access_key" yaml:"access_key"`
	CdnDomain       string                     `json:"cdn_domain" yaml:"cdn_domain"`
	UseInternalUrl  bool                       `json:"use_internal_url" yaml:"use_internal_url"`
	LocalStorePath  string                     `json:"local_store_path" yaml:"local_store_path"`
	RemoteStorePath string                     `json:"remote_store_path" yaml:"remote_store_path"`
	FileLimit       *HttpServerStoreFileLimits `json:"file_limit" yaml:"file_limit"`
}

func defaultHttpServerStore() *HttpServerStore {
	return &HttpServerStore{
		StoreType:      LocalStore,
		LocalStorePath: "upload",
		FileLimit:      defaultHttpServerStoreFileLimits(),
	}
}

func (config *HttpServerStore) checkValid(logger log.LoggerInterface) *ValidResult {
	if config.FileLimit == nil {
		return ValidFail(errors.New("invalid json field http_server.store.file_limit, cannot be empty"))
	}
	if result := config.FileLimit.checkValid(logger); result.IsFail() {
		return result
	}
	if config.LocalStorePath == "" {
		return ValidFail(errors.New("invalid json field http_server.store.local_store_path, path cannot be empty"))
	}
	if err := os.MkdirAll(filepath.Clean(config.LocalStorePath), global.DefaultDirectoryPermission); err != nil {
		return ValidFailWith(fmt.Errorf("error while creating local store path(%s)", config.LocalStorePath), err)
	}
	if result := config.FileLimit.CreateDir(logger, config.LocalStorePath); result.IsFail() {
		return result
	}
	switch config.StoreType {
	case LocalStore:
		return config.FileLimit.CheckLocalStore(logger, true)
	case ALiYunOssStore, TencentCosStore:
		if result := config.FileLimit.CheckLocalStore(logger, false); result.IsFail() {
			return result
		}
		if config.Region == "" {
			return ValidFail(errors.New("invalid json field http_server.store.region, region cannot be empty"))
		}
		if config.Bucket == "" {
			return ValidFail(errors.New("invalid json field http_server.store.bucket, bucket cannot be empty"))
		}
		if config.AccessId == "" {
			return ValidFail(errors.New("invalid json field http_server.store.access_id, access_id cannot be empty"))
		}
		if config.AccessKey == "" {
			return ValidFail(errors.New("invalid json field http_server.store.access_key, access_key cannot be empty"))
		}
	default:
		return ValidFailF("invalid json field http_server.store.store_type %d, only support 0, 1, 2", config.StoreType)
	}
	return ValidPass()
}
