// Package store
package store

import (
	"context"
	"mime/multipart"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	"github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
)

// ALiYunOssStoreService wraps the local store, which validates and optionally keeps a copy,
// and uploads the image to an OSS bucket
type ALiYunOssStoreService struct {
	logger     log.LoggerInterface
	localStore StoreServiceInterface
	config     *config.HttpServerStore
	endpoint   *url.URL
	client     *oss.Client
}

func NewALiYunOssStoreService(
	logger log.LoggerInterface,
	config *config.HttpServerStore,
	localStore StoreServiceInterface,
) *ALiYunOssStoreService {
	service := &ALiYunOssStoreService{logger: logger, localStore: localStore, config: config}
	cfg := oss.LoadDefaultConfig().
		WithCredentialsProvider(credentials.NewStaticCredentialsProvider(config.AccessId, config.AccessKey)).
		WithRegion(config.Region).
		WithUseInternalEndpoint(config.UseInternalUrl)
	service.client = oss.NewClient(cfg)
	if config.CdnDomain != "" {
		service.endpoint, _ = url.Parse(config.CdnDomain)
	} else if cfg.Endpoint != nil {
		service.endpoint, _ = url.Parse(strings.Replace(*cfg.Endpoint, "-internal", "", 1))
	} else {
		service.endpoint, _ = url.Parse("https://" + config.Bucket + ".oss-" + config.Region + ".aliyuncs.com")
	}
	return service
}

func (store *ALiYunOssStoreService) objectKey(storeInfo *StoreInfo) string {
	return path.Join(store.config.RemoteStorePath, filepath.ToSlash(storeInfo.FileName))
}

func (store *ALiYunOssStoreService) SaveImageFile(file *multipart.FileHeader, baseName string) (*StoreInfo, *ApiStatus) {
	storeInfo, res := store.localStore.SaveImageFile(file, baseName)
	if res != nil {
		return nil, res
	}
	key := store.objectKey(storeInfo)
	reader, err := file.Open()
	if err != nil {
		store.logger.ErrorF("ALiYunOssStoreService.SaveImageFile open form file error: %v", err)
		return nil, &ErrFileUploadFail
	}
	defer func(reader multipart.File) {
		_ = reader.Close()
	}(reader)
	putRequest := &oss.PutObjectRequest{
		Bucket:       oss.Ptr(store.config.Bucket),
		Key:          oss.Ptr(key),
		StorageClass: oss.StorageClassStandard,
		Body:         reader,
	}
	if _, err = store.client.PutObject(context.TODO(), putRequest); err != nil {
		store.logger.ErrorF("ALiYunOssStoreService.SaveImageFile upload image to remote storage error: %v", err)
		return nil, &ErrFileUploadFail
	}
	accessUrl, err := url.JoinPath(store.endpoint.String(), key)
	if err != nil {
		return nil, &ErrFilePathFail
	}
	storeInfo.RemotePath = accessUrl
	return storeInfo, nil
}

func (store *ALiYunOssStoreService) DeleteImageFile(file string) (*StoreInfo, error) {
	storeInfo, err := store.localStore.DeleteImageFile(file)
	if err != nil {
		return nil, err
	}
	delRequest := &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(store.config.Bucket),
		Key:    oss.Ptr(store.objectKey(storeInfo)),
	}
	if _, err = store.client.DeleteObject(context.TODO(), delRequest); err != nil {
		store.logger.ErrorF("ALiYunOssStoreService.DeleteImageFile delete image from remote storage error: %v", err)
		return nil, err
	}
	return storeInfo, nil
}
