// Package service
package service

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
)

var (
	ErrFilePathFail       = ApiStatus{"FILE_PATH_FAIL", "file upload failed", ServerInternalError}
	ErrFileSaveFail       = ApiStatus{"FILE_SAVE_FAIL", "file save failed", ServerInternalError}
	ErrFileUploadFail     = ApiStatus{"FILE_UPLOAD_FAIL", "file upload failed", ServerInternalError}
	ErrFileOverSize       = ApiStatus{"FILE_OVER_SIZE", "file is too large", BadRequest}
	ErrFileExtUnsupported = ApiStatus{"FILE_EXT_UNSUPPORTED", "file is not an accepted image", BadRequest}
	ErrFileNameIllegal    = ApiStatus{"FILE_NAME_ILLEGAL", "illegal file name", BadRequest}
	ErrFileNotImage       = ApiStatus{"IMAGE_NOT_ACCEPTED", "file is not an accepted image", BadRequest}
)

// StoreInfo 文件存储信息
type StoreInfo struct {
	FileLimit     *c.HttpServerStoreFileLimit // 该类型文件限制
	RootPath      string                      // 存储根目录
	FilePath      string                      // 文件存储路径
	RemotePath    string                      // 远程文件存储路径
	FileName      string                      // 文件名, 含前缀目录
	FileExt       string                      // 文件扩展名
	FileContent   *multipart.FileHeader
	StoreInServer bool // 是否保存在本地
}

func NewStoreInfo(fileLimit *c.HttpServerStoreFileLimit, file *multipart.FileHeader) *StoreInfo {
	info := &StoreInfo{
		FileLimit:     fileLimit,
		RootPath:      fileLimit.RootPath,
		FileContent:   file,
		StoreInServer: fileLimit.StoreInServer,
	}
	if file != nil {
		info.FileExt = strings.ToLower(filepath.Ext(file.Filename))
	}
	return info
}

// SetFileName places name under the limit's prefix directory
func (info *StoreInfo) SetFileName(name string) {
	info.FileName = filepath.Join(info.FileLimit.StorePrefix, name)
	info.FilePath = filepath.Join(info.RootPath, info.FileName)
	info.RemotePath = filepath.ToSlash(info.FileName)
}

// StoreServiceInterface 图片存储, 本地存储之外的实现以装饰器形式包裹本地存储
type StoreServiceInterface interface {
	// SaveImageFile 以 baseName 生成文件名保存图片, 返回的 StoreInfo.RemotePath 为访问路径
	SaveImageFile(file *multipart.FileHeader, baseName string) (*StoreInfo, *ApiStatus)
	// DeleteImageFile 删除之前保存的图片, file 为 SaveImageFile 返回的访问路径
	DeleteImageFile(file string) (*StoreInfo, error)
}

type RequestUploadAirplaneImage struct {
	JwtHeader
	ClientInfo
	Id   uint `param:"id" json:"-"`
	File *multipart.FileHeader
}
