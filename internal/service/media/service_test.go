package media

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"missing-person-tracker/internal/config"
)

func TestPublicURL(t *testing.T) {
	cfg := &config.Config{
		MinIOPublicEndpoint: "cdn.example.org",
		MinIOBucket:         "missing-person-photos",
		MinIOPublicUseSSL:   true,
	}
	assert.Equal(t,
		"https://cdn.example.org/missing-person-photos/cases/abc/photo%201.jpg",
		PublicURL(cfg, "cases/abc/photo 1.jpg"))
}

func TestUploadWithoutStorage(t *testing.T) {
	svc := NewService(nil, &config.Config{})
	_, err := svc.UploadCasePhoto(context.Background(), uuid.New(), 3, "image/png", strings.NewReader("png"))
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
