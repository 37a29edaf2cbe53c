package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"menuboard/internal/models/db_models"
	"menuboard/internal/storage"
	"menuboard/pkg/metrics"
	"menuboard/pkg/utils"
)

// ImageUpload is a file received from a client. A nil upload or one without
// content means no file was supplied.
type ImageUpload struct {
	Content  []byte
	FileName string
}

type ImageServiceInterface interface {
	// Ingest stores the upload and returns its public reference. It returns
	// nil when nothing was uploaded, and nil plus the cause when storage fails;
	// callers treat both as "no image attached".
	Ingest(ctx context.Context, upload *ImageUpload, namePrefix string) (*string, error)
}

type ImageService struct {
	store   storage.ObjectStore
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

func NewImageService(store storage.ObjectStore, m *metrics.Metrics, logger *zap.Logger) ImageServiceInterface {
	return &ImageService{
		store:   store,
		metrics: m,
		logger:  logger,
		now:     utils.NowUTC,
	}
}

// ImagePrefix is the name prefix used for a slot's photo.
func ImagePrefix(unit, weekKey string, day db_models.Day, category db_models.Category) string {
	return fmt.Sprintf("%s_%s_%s_%s", unit, weekKey, day, category)
}

func (i *ImageService) Ingest(ctx context.Context, upload *ImageUpload, namePrefix string) (*string, error) {
	if upload == nil || len(upload.Content) == 0 {
		return nil, nil
	}

	path, contentType := i.objectPath(upload.FileName, namePrefix)

	ref, err := i.store.Put(ctx, path, upload.Content, contentType)
	if err != nil {
		i.metrics.ImageIngest("failed")
		i.logger.Error("image upload failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrStorageError, err)
	}

	i.metrics.ImageIngest("stored")
	i.logger.Debug("image stored", zap.String("path", path), zap.Int("bytes", len(upload.Content)))
	return &ref, nil
}

// objectPath builds images/{unit token}/{prefix}_{stamp}{ext}; the
// microsecond stamp is what keeps names apart.
func (i *ImageService) objectPath(fileName, namePrefix string) (string, string) {
	ext := strings.ToLower(filepath.Ext(fileName))
	prefix := utils.SanitizeFilename(namePrefix)

	unitToken := strings.SplitN(prefix, "_", 2)[0]
	if unitToken == "" {
		unitToken = "unassigned"
	}

	name := fmt.Sprintf("%s_%s%s", prefix, utils.FileStamp(i.now()), ext)
	return fmt.Sprintf("images/%s/%s", unitToken, name), imageContentType(ext)
}

func imageContentType(ext string) string {
	kind := strings.TrimPrefix(ext, ".")
	switch kind {
	case "":
		return "application/octet-stream"
	case "jpg":
		kind = "jpeg"
	}
	return "image/" + kind
}
