package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"sprintwise_backend/internal/config"
	"sprintwise_backend/internal/model"
	"sprintwise_backend/internal/util"
	"sprintwise_backend/pkg/logger"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

const uploadPrefix = "uploads"

// StorageProvider 定义通用存储接口，返回的 URL 必须是外部可访问的绝对地址
type StorageProvider interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	GetURL(key string) string
}

// LocalStorageProvider 本地存储实现，文件由 /uploads 静态路由对外提供
type LocalStorageProvider struct {
	Root    string
	BaseURL string
}

func (p *LocalStorageProvider) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	dst := filepath.Join(p.Root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", err
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err = io.Copy(out, reader); err != nil {
		return "", err
	}
	return p.GetURL(key), nil
}

func (p *LocalStorageProvider) Delete(ctx context.Context, key string) error {
	return os.Remove(filepath.Join(p.Root, filepath.FromSlash(key)))
}

func (p *LocalStorageProvider) GetURL(key string) string {
	return strings.TrimRight(p.BaseURL, "/") + "/" + key
}

// MinioStorageProvider MinIO 或 S3 存储实现
type MinioStorageProvider struct {
	Config  *config.StorageConfig
	Client  *minio.Client
	BaseURL string
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	endpoint := cfg.MinioEndpoint
	secure := cfg.MinioSecure
	if endpoint == "" && cfg.Type == util.StorageS3 {
		endpoint = "s3." + cfg.MinioRegion + ".amazonaws.com"
		secure = true
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: secure,
		Region: cfg.MinioRegion,
	})
	if err != nil {
		return nil, err
	}

	base := strings.TrimRight(cfg.PublicBaseURL, "/")
	if base == "" {
		if cfg.Type == util.StorageS3 {
			base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.MinioBucket, cfg.MinioRegion)
		} else {
			scheme := "http"
			if secure {
				scheme = "https"
			}
			base = fmt.Sprintf("%s://%s/%s", scheme, endpoint, cfg.MinioBucket)
		}
	}
	return &MinioStorageProvider{Config: cfg, Client: client, BaseURL: base}, nil
}

func (p *MinioStorageProvider) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := p.Client.PutObject(ctx, p.Config.MinioBucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return p.GetURL(key), nil
}

func (p *MinioStorageProvider) Delete(ctx context.Context, key string) error {
	return p.Client.RemoveObject(ctx, p.Config.MinioBucket, key, minio.RemoveObjectOptions{})
}

func (p *MinioStorageProvider) GetURL(key string) string {
	return p.BaseURL + "/" + key
}

// OSSStorageProvider 阿里云OSS存储实现
type OSSStorageProvider struct {
	Config *config.StorageConfig
	Client *oss.Client
}

func NewOSSStorageProvider(cfg *config.StorageConfig) (*OSSStorageProvider, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	return &OSSStorageProvider{Config: cfg, Client: client}, nil
}

func (p *OSSStorageProvider) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	bucket, err := p.Client.Bucket(p.Config.OSSBucket)
	if err != nil {
		return "", err
	}

	if err = bucket.PutObject(key, reader, oss.ContentType(contentType), oss.WithContext(ctx)); err != nil {
		return "", err
	}
	return p.GetURL(key), nil
}

func (p *OSSStorageProvider) Delete(ctx context.Context, key string) error {
	bucket, err := p.Client.Bucket(p.Config.OSSBucket)
	if err != nil {
		return err
	}
	return bucket.DeleteObject(key, oss.WithContext(ctx))
}

func (p *OSSStorageProvider) GetURL(key string) string {
	if base := strings.TrimRight(p.Config.PublicBaseURL, "/"); base != "" {
		return base + "/" + key
	}
	endpoint := strings.TrimPrefix(strings.TrimPrefix(p.Config.OSSEndpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", p.Config.OSSBucket, endpoint, key)
}

type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// StorageService 照片上传：校验图片类型与大小后存入配置的后端
type StorageService struct {
	Provider StorageProvider
	MaxSize  int64
}

func NewStorageService(cfg *config.Config) *StorageService {
	var provider StorageProvider
	switch cfg.Storage.Type {
	case util.StorageMinio, util.StorageS3:
		p, err := NewMinioStorageProvider(&cfg.Storage)
		if err != nil {
			logger.Log.Error("minio storage unavailable, using local disk", zap.Error(err))
		} else {
			provider = p
		}
	case util.StorageOSS:
		p, err := NewOSSStorageProvider(&cfg.Storage)
		if err != nil {
			logger.Log.Error("oss storage unavailable, using local disk", zap.Error(err))
		} else {
			provider = p
		}
	}

	if provider == nil {
		provider = &LocalStorageProvider{Root: cfg.Storage.LocalPath, BaseURL: cfg.PublicBaseURL()}
	}

	return &StorageService{Provider: provider, MaxSize: cfg.Storage.MaxUploadSize}
}

// UploadImage 声明类型与内容嗅探都必须是图片；嗅探无法识别的格式（如 HEIC）按声明类型放行
func (s *StorageService) UploadImage(ctx context.Context, filename, contentType string, size int64, file io.ReadSeeker) (*UploadResult, error) {
	if file == nil || size <= 0 {
		return nil, model.ErrEmptyFile
	}
	if s.MaxSize > 0 && size > s.MaxSize {
		return nil, model.ErrFileTooLarge
	}
	if !util.IsImage(contentType) {
		return nil, model.ErrNotImage
	}

	sniffed, err := util.ValidateMimeType(file, []string{util.MimeImage, util.MimeOctetStream})
	if err != nil {
		logger.Log.Info("rejected upload", zap.String("declared", contentType), zap.String("sniffed", sniffed))
		return nil, model.ErrNotImage
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	// 扩展名决定静态服务返回的 Content-Type，不能取自客户端文件名
	ext, storedType := util.ImageExtension(sniffed, contentType, filename)
	name := uuid.NewString() + ext
	key := uploadPrefix + "/" + name

	url, err := s.Provider.Upload(ctx, key, file, size, storedType)
	if err != nil {
		return nil, err
	}
	return &UploadResult{URL: url, Filename: name}, nil
}

func (s *StorageService) Delete(ctx context.Context, filename string) error {
	return s.Provider.Delete(ctx, uploadPrefix+"/"+path.Base(filename))
}
