package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"menuboard/internal/repositories"
	"menuboard/internal/storage"
	"menuboard/internal/testutil"
	"menuboard/pkg/metrics"
	"menuboard/pkg/utils"
)

type fixture struct {
	db            *gorm.DB
	units         UnitServiceInterface
	menus         *MenuService
	announcements *AnnouncementService
	images        *ImageService
	drafts        *DraftService
	accounts      AccountServiceInterface
	mediaDir      string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewTestDB(t)
	logger := zap.NewNop()
	m := metrics.NewMetrics(prometheus.NewRegistry(), "menuboard-test")
	mediaDir := t.TempDir()
	store := storage.NewLocalStore(mediaDir, "http://localhost/media")

	units := NewUnitService(repositories.NewUnitRepository(db), logger)
	menus := NewMenuService(repositories.NewMenuRepository(db), units, m, logger).(*MenuService)
	images := NewImageService(store, m, logger).(*ImageService)

	return &fixture{
		db:            db,
		units:         units,
		menus:         menus,
		announcements: NewAnnouncementService(repositories.NewAnnouncementRepository(db), units, m, logger).(*AnnouncementService),
		images:        images,
		drafts:        NewDraftService(repositories.NewMemoryDraftRepository(time.Hour), menus, images, logger).(*DraftService),
		accounts: NewAccountService(repositories.NewAccountRepository(db), units,
			utils.NewTokenIssuer("test-secret", time.Hour), logger),
		mediaDir: mediaDir,
	}
}

// fixedClock returns a clock frozen at t.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

type failingStore struct{}

func (failingStore) Put(ctx context.Context, path string, body []byte, contentType string) (string, error) {
	return "", errors.New("bucket unavailable")
}

type recordingStore struct {
	paths        []string
	contentTypes []string
}

func (r *recordingStore) Put(ctx context.Context, path string, body []byte, contentType string) (string, error) {
	r.paths = append(r.paths, path)
	r.contentTypes = append(r.contentTypes, contentType)
	return "https://cdn.example/" + path, nil
}
