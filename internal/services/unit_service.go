package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"menuboard/internal/models/db_models"
	"menuboard/internal/models/response_models"
	"menuboard/internal/repositories"
	"menuboard/pkg/utils"
)

type UnitServiceInterface interface {
	// ResolveUnitID finds the unit by exact name, creating it on the free
	// plan when absent. ok is false when the name is blank or storage fails.
	ResolveUnitID(ctx context.Context, name string) (id uuid.UUID, ok bool)
	// LookupUnit never creates; it returns (nil, nil) for unknown names.
	LookupUnit(ctx context.Context, name string) (*db_models.Unit, error)
	GetUnit(ctx context.Context, id uuid.UUID) (*db_models.Unit, error)
	ListUnits(ctx context.Context) []response_models.UnitResponse
	CreateUnit(ctx context.Context, name string, plan db_models.Plan) (bool, error)
	ChangePlan(ctx context.Context, name string, plan db_models.Plan) error
}

type UnitService struct {
	unitRepo repositories.UnitRepository
	logger   *zap.Logger
}

func NewUnitService(unitRepo repositories.UnitRepository, logger *zap.Logger) UnitServiceInterface {
	return &UnitService{
		unitRepo: unitRepo,
		logger:   logger,
	}
}

func (u *UnitService) ResolveUnitID(ctx context.Context, name string) (uuid.UUID, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return uuid.Nil, false
	}

	unit, err := u.unitRepo.InsertIfAbsent(ctx, name, db_models.PlanFree)
	if err != nil {
		u.logger.Warn("unit resolution failed", zap.String("unit", name), zap.Error(err))
		return uuid.Nil, false
	}
	return unit.ID, true
}

func (u *UnitService) LookupUnit(ctx context.Context, name string) (*db_models.Unit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	unit, err := u.unitRepo.FindByName(ctx, name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return unit, nil
}

func (u *UnitService) GetUnit(ctx context.Context, id uuid.UUID) (*db_models.Unit, error) {
	unit, err := u.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if unit == nil {
		return nil, utils.ErrUnitNotFound
	}
	return unit, nil
}

func (u *UnitService) ListUnits(ctx context.Context) []response_models.UnitResponse {
	units, err := u.unitRepo.ListAll(ctx)
	if err != nil {
		u.logger.Error("listing units failed", zap.Error(err))
		return []response_models.UnitResponse{}
	}

	result := make([]response_models.UnitResponse, 0, len(units))
	for _, unit := range units {
		result = append(result, toUnitResponse(unit))
	}
	return result
}

func (u *UnitService) CreateUnit(ctx context.Context, name string, plan db_models.Plan) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, nil
	}
	if plan == "" {
		plan = db_models.PlanFree
	}

	existing, err := u.unitRepo.FindByName(ctx, name)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if existing != nil {
		return false, nil
	}

	unit, err := u.unitRepo.InsertIfAbsent(ctx, name, plan)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	u.logger.Info("unit created", zap.String("unit", unit.Name), zap.String("plan", string(unit.Plan)))
	return true, nil
}

func (u *UnitService) ChangePlan(ctx context.Context, name string, plan db_models.Plan) error {
	unit, err := u.LookupUnit(ctx, name)
	if err != nil {
		return err
	}
	if unit == nil {
		return utils.ErrUnitNotFound
	}

	if err := u.unitRepo.UpdatePlan(ctx, unit.ID, plan); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrUnitNotFound
		}
		return utils.ErrDatabaseError
	}
	u.logger.Info("unit plan changed", zap.String("unit", unit.Name),
		zap.String("from", string(unit.Plan)), zap.String("to", string(plan)))
	return nil
}

func toUnitResponse(unit db_models.Unit) response_models.UnitResponse {
	return response_models.UnitResponse{
		ID:   unit.ID.String(),
		Name: unit.Name,
		Plan: string(unit.Plan),
	}
}
