package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"menuboard/internal/models/db_models"
	"menuboard/internal/models/response_models"
	"menuboard/internal/policy"
	"menuboard/internal/repositories"
	"menuboard/pkg/metrics"
	"menuboard/pkg/utils"
)

type AnnouncementServiceInterface interface {
	// CreateAnnouncement expects title and body already checked for content.
	// It returns false without error when the unit cannot be resolved.
	CreateAnnouncement(ctx context.Context, unit, title, body string) (*response_models.AnnouncementResponse, bool, error)
	ListActiveAnnouncements(ctx context.Context, unit string) []response_models.AnnouncementResponse
	Deactivate(ctx context.Context, actor policy.Actor, id uuid.UUID) error
}

type AnnouncementService struct {
	announcementRepo repositories.AnnouncementRepository
	unitService      UnitServiceInterface
	metrics          *metrics.Metrics
	logger           *zap.Logger
	now              func() time.Time
}

func NewAnnouncementService(announcementRepo repositories.AnnouncementRepository, unitService UnitServiceInterface, m *metrics.Metrics, logger *zap.Logger) AnnouncementServiceInterface {
	return &AnnouncementService{
		announcementRepo: announcementRepo,
		unitService:      unitService,
		metrics:          m,
		logger:           logger,
		now:              utils.NowUTC,
	}
}

func (a *AnnouncementService) CreateAnnouncement(ctx context.Context, unit, title, body string) (*response_models.AnnouncementResponse, bool, error) {
	unitID, ok := a.unitService.ResolveUnitID(ctx, unit)
	if !ok {
		return nil, false, nil
	}

	announcement := &db_models.Announcement{
		UnitID:    unitID,
		Title:     title,
		Body:      body,
		Active:    true,
		CreatedAt: a.now().UTC(),
	}
	if err := a.announcementRepo.Create(ctx, announcement); err != nil {
		a.logger.Error("announcement insert failed", zap.String("unit", unit), zap.Error(err))
		return nil, false, utils.ErrDatabaseError
	}

	a.metrics.Announcement("created")
	resp := toAnnouncementResponse(*announcement)
	return &resp, true, nil
}

func (a *AnnouncementService) ListActiveAnnouncements(ctx context.Context, unit string) []response_models.AnnouncementResponse {
	result := []response_models.AnnouncementResponse{}

	found, err := a.unitService.LookupUnit(ctx, unit)
	if err != nil || found == nil {
		return result
	}

	announcements, err := a.announcementRepo.ListActiveByUnit(ctx, found.ID)
	if err != nil {
		a.logger.Warn("announcement read failed", zap.String("unit", unit), zap.Error(err))
		return result
	}

	for _, announcement := range announcements {
		result = append(result, toAnnouncementResponse(announcement))
	}
	return result
}

func (a *AnnouncementService) Deactivate(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	announcement, err := a.announcementRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if announcement == nil {
		return utils.ErrAnnouncementNotFound
	}

	if err := policy.Authorize(actor, policy.ActionPostAnnouncement, announcement.UnitID); err != nil {
		return err
	}

	if err := a.announcementRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrAnnouncementNotFound
		}
		return utils.ErrDatabaseError
	}

	a.metrics.Announcement("deactivated")
	return nil
}

func toAnnouncementResponse(a db_models.Announcement) response_models.AnnouncementResponse {
	return response_models.AnnouncementResponse{
		ID:        a.ID.String(),
		UnitID:    a.UnitID.String(),
		Title:     a.Title,
		Body:      a.Body,
		Active:    a.Active,
		CreatedAt: a.CreatedAt,
	}
}
