package menu_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"menuboard/internal/repositories"
	"menuboard/internal/services"
	"menuboard/internal/storage"
	"menuboard/pkg/metrics"
)

var Module = fx.Provide(
	provideMenuService, provideMenuRepo, provideImageService)

func provideMenuRepo(db *gorm.DB) repositories.MenuRepository {
	return repositories.NewMenuRepository(db)
}

func provideMenuService(menuRepo repositories.MenuRepository, unitService services.UnitServiceInterface, m *metrics.Metrics, log *zap.Logger) services.MenuServiceInterface {
	return services.NewMenuService(menuRepo, unitService, m, log.Named("menus"))
}

func provideImageService(store storage.ObjectStore, m *metrics.Metrics, log *zap.Logger) services.ImageServiceInterface {
	return services.NewImageService(store, m, log.Named("images"))
}
