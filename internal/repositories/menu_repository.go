package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"menuboard/internal/models/db_models"
)

type MenuRepository interface {
	// Upsert inserts the entry or, when its natural key already exists,
	// overwrites the content columns in the same statement. image_ref is only
	// part of the overwrite when overwriteImage is set.
	Upsert(ctx context.Context, entry *db_models.MenuEntry, overwriteImage bool) error
	FindByUnitAndWeek(ctx context.Context, unitID uuid.UUID, weekKey string) ([]db_models.MenuEntry, error)
}

var naturalKeyColumns = []clause.Column{
	{Name: "unit_id"},
	{Name: "week_key"},
	{Name: "day"},
	{Name: "category"},
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (m *menuRepository) Upsert(ctx context.Context, entry *db_models.MenuEntry, overwriteImage bool) error {
	columns := []string{"side_dish", "protein", "dessert", "updated_at"}
	if overwriteImage {
		columns = append(columns, "image_ref")
	}

	return m.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   naturalKeyColumns,
			DoUpdates: clause.AssignmentColumns(columns),
		}).
		Create(entry).Error
}

func (m *menuRepository) FindByUnitAndWeek(ctx context.Context, unitID uuid.UUID, weekKey string) ([]db_models.MenuEntry, error) {
	var entries []db_models.MenuEntry
	err := m.db.WithContext(ctx).
		Where("unit_id = ? AND week_key = ?", unitID, weekKey).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
