package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Announcement struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UnitID    uuid.UUID `gorm:"type:uuid;not null;index:idx_announcement_unit_active,priority:1"`
	Title     string    `gorm:"not null"`
	Body      string    `gorm:"type:text;not null"`
	Active    bool      `gorm:"not null;default:true;index:idx_announcement_unit_active,priority:2"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (a *Announcement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	return nil
}
