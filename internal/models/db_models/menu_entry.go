package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuEntry is one meal slot of a unit's week. The natural key
// (unit_id, week_key, day, category) is backed by a unique index so upserts
// can be expressed as a single statement.
type MenuEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UnitID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_menu_natural_key,priority:1"`
	WeekKey   string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_menu_natural_key,priority:2"`
	Day       Day       `gorm:"type:varchar(3);not null;uniqueIndex:idx_menu_natural_key,priority:3"`
	Category  Category  `gorm:"type:varchar(8);not null;uniqueIndex:idx_menu_natural_key,priority:4"`
	SideDish  string
	Protein   string
	Dessert   string
	ImageRef  *string
	UpdatedAt time.Time `gorm:"not null"`
}

func (m *MenuEntry) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = time.Now().UTC()
	}
	return nil
}
