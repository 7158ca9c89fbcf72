// Package store
package store

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/global"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
)

// sniffLength is the number of bytes http.DetectContentType looks at
const sniffLength = 512

type LocalStoreService struct {
	logger log.LoggerInterface
	config *config.HttpServerStore
}

func NewLocalStoreService(logger log.LoggerInterface, config *config.HttpServerStore) *LocalStoreService {
	return &LocalStoreService{
		logger: logger,
		config: config,
	}
}

// checkImage rejects illegal names, unlisted extensions, oversize files and content that does not sniff as an image
func (store *LocalStoreService) checkImage(storeInfo *StoreInfo) *ApiStatus {
	file := storeInfo.FileContent
	if strings.ContainsAny(file.Filename, `/\`) {
		return &ErrFileNameIllegal
	}
	if !slices.Contains(storeInfo.FileLimit.AllowedFileExt, storeInfo.FileExt) {
		return &ErrFileExtUnsupported
	}
	if file.Size > storeInfo.FileLimit.MaxFileSize {
		return &ErrFileOverSize
	}
	src, err := file.Open()
	if err != nil {
		store.logger.ErrorF("LocalStoreService.checkImage open file error: %v", err)
		return &ErrFileSaveFail
	}
	defer func(src multipart.File) {
		_ = src.Close()
	}(src)
	head := make([]byte, sniffLength)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		store.logger.ErrorF("LocalStoreService.checkImage read file error: %v", err)
		return &ErrFileSaveFail
	}
	if !strings.HasPrefix(http.DetectContentType(head[:n]), "image/") {
		return &ErrFileNotImage
	}
	return nil
}

func (store *LocalStoreService) SaveImageFile(file *multipart.FileHeader, baseName string) (*StoreInfo, *ApiStatus) {
	storeInfo := NewStoreInfo(store.config.FileLimit.AirplaneImageLimit, file)
	if res := store.checkImage(storeInfo); res != nil {
		return nil, res
	}
	storeInfo.SetFileName(baseName + storeInfo.FileExt)
	storeInfo.RemotePath = path.Join(global.MediaUrlPrefix, storeInfo.RemotePath)
	if !storeInfo.StoreInServer {
		return storeInfo, nil
	}
	src, err := file.Open()
	if err != nil {
		store.logger.ErrorF("LocalStoreService.SaveImageFile open file error: %v", err)
		return nil, &ErrFileSaveFail
	}
	defer func(src multipart.File) {
		_ = src.Close()
	}(src)
	dst, err := os.OpenFile(storeInfo.FilePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, global.DefaultFilePermissions)
	if err != nil {
		store.logger.ErrorF("LocalStoreService.SaveImageFile create file error: %v", err)
		return nil, &ErrFileSaveFail
	}
	defer func(dst *os.File) {
		_ = dst.Close()
	}(dst)
	if _, err = io.Copy(dst, src); err != nil {
		store.logger.ErrorF("LocalStoreService.SaveImageFile copy file error: %v", err)
		return nil, &ErrFileSaveFail
	}
	return storeInfo, nil
}

func (store *LocalStoreService) DeleteImageFile(file string) (*StoreInfo, error) {
	storeInfo := NewStoreInfo(store.config.FileLimit.AirplaneImageLimit, nil)
	storeInfo.SetFileName(filepath.Base(filepath.FromSlash(file)))
	if !storeInfo.StoreInServer {
		return storeInfo, nil
	}
	if err := os.Remove(storeInfo.FilePath); err != nil && !os.IsNotExist(err) {
		store.logger.ErrorF("LocalStoreService.DeleteImageFile remove file error: %v", err)
		return nil, err
	}
	return storeInfo, nil
}
