package unit_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"menuboard/internal/repositories"
	"menuboard/internal/services"
)

var Module = fx.Provide(
	provideUnitService, provideUnitRepo)

func provideUnitRepo(db *gorm.DB) repositories.UnitRepository {
	return repositories.NewUnitRepository(db)
}

func provideUnitService(unitRepo repositories.UnitRepository, log *zap.Logger) services.UnitServiceInterface {
	return services.NewUnitService(unitRepo, log.Named("units"))
}
