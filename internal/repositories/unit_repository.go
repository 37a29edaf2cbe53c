package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"menuboard/internal/models/db_models"
)

type UnitRepository interface {
	FindByName(ctx context.Context, name string) (*db_models.Unit, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Unit, error)
	// InsertIfAbsent creates the unit unless one with the same name exists,
	// then returns whichever row holds the name.
	InsertIfAbsent(ctx context.Context, name string, plan db_models.Plan) (*db_models.Unit, error)
	ListAll(ctx context.Context) ([]db_models.Unit, error)
	UpdatePlan(ctx context.Context, id uuid.UUID, plan db_models.Plan) error
}

type unitRepository struct {
	db *gorm.DB
}

func NewUnitRepository(db *gorm.DB) UnitRepository {
	return &unitRepository{db: db}
}

func (u *unitRepository) FindByName(ctx context.Context, name string) (*db_models.Unit, error) {
	var unit db_models.Unit
	err := u.db.WithContext(ctx).First(&unit, "name = ?", name).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &unit, nil
}

func (u *unitRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Unit, error) {
	var unit db_models.Unit
	err := u.db.WithContext(ctx).First(&unit, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &unit, nil
}

func (u *unitRepository) InsertIfAbsent(ctx context.Context, name string, plan db_models.Plan) (*db_models.Unit, error) {
	candidate := db_models.Unit{Name: name, Plan: plan}
	err := u.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&candidate).Error
	if err != nil {
		return nil, err
	}

	unit, err := u.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return unit, nil
}

func (u *unitRepository) ListAll(ctx context.Context) ([]db_models.Unit, error) {
	var units []db_models.Unit
	err := u.db.WithContext(ctx).Order("name ASC").Find(&units).Error
	if err != nil {
		return nil, err
	}
	return units, nil
}

func (u *unitRepository) UpdatePlan(ctx context.Context, id uuid.UUID, plan db_models.Plan) error {
	result := u.db.WithContext(ctx).
		Model(&db_models.Unit{}).
		Where("id = ?", id).
		Update("plan", plan)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
