// Package store
package store

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/tencentyun/cos-go-sdk-v5"
)

type TencentCosStoreService struct {
	logger     log.LoggerInterface
	localStore StoreServiceInterface
	config     *config.HttpServerStore
	endpoint   *url.URL
	client     *cos.Client
}

func NewTencentCosStoreService(
	logger log.LoggerInterface,
	config *config.HttpServerStore,
	localStore StoreServiceInterface,
) *TencentCosStoreService {
	service := &TencentCosStoreService{logger: logger, localStore: localStore, config: config}
	bucketUrl, _ := url.Parse(fmt.Sprintf("https://%s.cos.%s.myqcloud.com", config.Bucket, strings.ToLower(config.Region)))
	serviceUrl, _ := url.Parse(fmt.Sprintf("https://cos.%s.myqcloud.com", strings.ToLower(config.Region)))
	baseUrl := &cos.BaseURL{BucketURL: bucketUrl, ServiceURL: serviceUrl}
	service.client = cos.NewClient(baseUrl, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  config.AccessId,
			SecretKey: config.AccessKey,
		},
	})
	if config.CdnDomain != "" {
		service.endpoint, _ = url.Parse(config.CdnDomain)
	} else {
		service.endpoint = service.client.BaseURL.BucketURL
	}
	return service
}

func (store *TencentCosStoreService) objectKey(storeInfo *StoreInfo) string {
	return path.Join(store.config.RemoteStorePath, filepath.ToSlash(storeInfo.FileName))
}

func (store *TencentCosStoreService) SaveImageFile(file *multipart.FileHeader, baseName string) (*StoreInfo, *ApiStatus) {
	storeInfo, res := store.localStore.SaveImageFile(file, baseName)
	if res != nil {
		return nil, res
	}
	key := store.objectKey(storeInfo)
	reader, err := file.Open()
	if err != nil {
		store.logger.ErrorF("TencentCosStoreService.SaveImageFile open form file error: %v", err)
		return nil, &ErrFileUploadFail
	}
	defer func(reader multipart.File) {
		_ = reader.Close()
	}(reader)
	if _, err = store.client.Object.Put(context.Background(), key, reader, nil); err != nil {
		store.logger.ErrorF("TencentCosStoreService.SaveImageFile upload image to remote storage error: %v", err)
		return nil, &ErrFileUploadFail
	}
	accessUrl, err := url.JoinPath(store.endpoint.String(), key)
	if err != nil {
		return nil, &ErrFilePathFail
	}
	storeInfo.RemotePath = accessUrl
	return storeInfo, nil
}

func (store *TencentCosStoreService) DeleteImageFile(file string) (*StoreInfo, error) {
	storeInfo, err := store.localStore.DeleteImageFile(file)
	if err != nil {
		return nil, err
	}
	if _, err = store.client.Object.Delete(context.Background(), store.objectKey(storeInfo)); err != nil {
		store.logger.ErrorF("TencentCosStoreService.DeleteImageFile delete image from remote storage error: %v", err)
		return nil, err
	}
	return storeInfo, nil
}
