package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"menuboard/internal/models/db_models"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *db_models.Announcement) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Announcement, error)
	ListActiveByUnit(ctx context.Context, unitID uuid.UUID) ([]db_models.Announcement, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type announcementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (a *announcementRepository) Create(ctx context.Context, announcement *db_models.Announcement) error {
	return a.db.WithContext(ctx).Create(announcement).Error
}

func (a *announcementRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Announcement, error) {
	var announcement db_models.Announcement
	err := a.db.WithContext(ctx).First(&announcement, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &announcement, nil
}

func (a *announcementRepository) ListActiveByUnit(ctx context.Context, unitID uuid.UUID) ([]db_models.Announcement, error) {
	var announcements []db_models.Announcement
	err := a.db.WithContext(ctx).
		Where("unit_id = ? AND active = ?", unitID, true).
		Order("created_at DESC").
		Order("id DESC").
		Find(&announcements).Error
	return announcements, err
}

func (a *announcementRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := a.db.WithContext(ctx).
		Model(&db_models.Announcement{}).
		Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
