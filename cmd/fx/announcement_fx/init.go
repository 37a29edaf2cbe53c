package announcement_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"menuboard/internal/repositories"
	"menuboard/internal/services"
	"menuboard/pkg/metrics"
)

var Module = fx.Provide(
	provideAnnouncementService, provideAnnouncementRepo)

func provideAnnouncementRepo(db *gorm.DB) repositories.AnnouncementRepository {
	return repositories.NewAnnouncementRepository(db)
}

func provideAnnouncementService(repo repositories.AnnouncementRepository, unitService services.UnitServiceInterface, m *metrics.Metrics, log *zap.Logger) services.AnnouncementServiceInterface {
	return services.NewAnnouncementService(repo, unitService, m, log.Named("announcements"))
}
