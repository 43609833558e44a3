package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"missing-person-tracker/internal/config"
)

var (
	ErrStorageUnavailable = errors.New("photo storage is not configured")
	ErrUnsupportedType    = errors.New("only JPEG, PNG and WebP images are accepted")
)

const MaxPhotoSize = 10 << 20

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type Service interface {
	UploadCasePhoto(ctx context.Context, caseID uuid.UUID, size int64, contentType string, reader io.Reader) (string, error)
}

type service struct {
	minioClient *minio.Client
	cfg         *config.Config
}

// NewService stores photos in MinIO. A nil client yields a service that
// rejects uploads with ErrStorageUnavailable.
func NewService(minioClient *minio.Client, cfg *config.Config) Service {
	return &service{minioClient: minioClient, cfg: cfg}
}

func (s *service) UploadCasePhoto(ctx context.Context, caseID uuid.UUID, size int64, contentType string, reader io.Reader) (string, error) {
	if s.minioClient == nil {
		return "", ErrStorageUnavailable
	}
	ext, ok := allowedTypes[strings.ToLower(contentType)]
	if !ok {
		return "", ErrUnsupportedType
	}

	storagePath := path.Join("cases", caseID.String(), time.Now().UTC().Format("20060102T150405")+ext)
	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to MinIO: %w", err)
	}
	return PublicURL(s.cfg, storagePath), nil
}

func PublicURL(cfg *config.Config, storagePath string) string {
	scheme := "http"
	if cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, cfg.MinIOPublicEndpoint, cfg.MinIOBucket, (&url.URL{Path: storagePath}).EscapedPath())
}
