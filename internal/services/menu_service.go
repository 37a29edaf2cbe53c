package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"menuboard/internal/models/db_models"
	"menuboard/internal/models/response_models"
	"menuboard/internal/repositories"
	"menuboard/pkg/metrics"
	"menuboard/pkg/utils"
)

// SaveMenuEntryInput targets one (unit, week, day, category) slot. A nil
// ImageRef leaves whatever image is stored for the slot untouched.
type SaveMenuEntryInput struct {
	Unit     string
	WeekKey  string
	Day      db_models.Day
	Category db_models.Category
	SideDish string
	Protein  string
	Dessert  string
	ImageRef *string
}

func (in SaveMenuEntryInput) isBlank() bool {
	return strings.TrimSpace(in.SideDish) == "" &&
		strings.TrimSpace(in.Protein) == "" &&
		strings.TrimSpace(in.Dessert) == ""
}

type MenuServiceInterface interface {
	// SaveMenuEntry reports saved=false without error when there is nothing
	// to persist or the unit cannot be resolved.
	SaveMenuEntry(ctx context.Context, in SaveMenuEntryInput) (saved bool, err error)
	// FetchWeekMenu never fails; unknown units and read errors yield an
	// empty menu.
	FetchWeekMenu(ctx context.Context, unit string, weekKey string) response_models.WeekMenu
}

type MenuService struct {
	menuRepo    repositories.MenuRepository
	unitService UnitServiceInterface
	metrics     *metrics.Metrics
	logger      *zap.Logger
	now         func() time.Time
}

func NewMenuService(menuRepo repositories.MenuRepository, unitService UnitServiceInterface, m *metrics.Metrics, logger *zap.Logger) MenuServiceInterface {
	return &MenuService{
		menuRepo:    menuRepo,
		unitService: unitService,
		metrics:     m,
		logger:      logger,
		now:         utils.NowUTC,
	}
}

func (m *MenuService) SaveMenuEntry(ctx context.Context, in SaveMenuEntryInput) (bool, error) {
	monday, err := utils.ParseWeekKey(in.WeekKey)
	if err != nil {
		return false, err
	}
	if _, err := db_models.ParseDay(string(in.Day)); err != nil {
		return false, err
	}
	if _, err := db_models.ParseCategory(string(in.Category)); err != nil {
		return false, err
	}

	if in.isBlank() {
		m.metrics.MenuSave("skipped_empty")
		return false, nil
	}

	unitID, ok := m.unitService.ResolveUnitID(ctx, in.Unit)
	if !ok {
		m.metrics.MenuSave("skipped_unresolved")
		return false, nil
	}

	entry := &db_models.MenuEntry{
		UnitID:    unitID,
		WeekKey:   utils.WeekKey(monday),
		Day:       in.Day,
		Category:  in.Category,
		SideDish:  strings.TrimSpace(in.SideDish),
		Protein:   strings.TrimSpace(in.Protein),
		Dessert:   strings.TrimSpace(in.Dessert),
		ImageRef:  in.ImageRef,
		UpdatedAt: m.now().UTC(),
	}

	if err := m.menuRepo.Upsert(ctx, entry, in.ImageRef != nil); err != nil {
		m.metrics.MenuSave("error")
		m.logger.Error("menu save failed",
			zap.String("unit", in.Unit),
			zap.String("week", entry.WeekKey),
			zap.String("day", string(in.Day)),
			zap.String("category", string(in.Category)),
			zap.Error(err))
		return false, utils.ErrDatabaseError
	}

	m.metrics.MenuSave("saved")
	return true, nil
}

func (m *MenuService) FetchWeekMenu(ctx context.Context, unit string, weekKey string) response_models.WeekMenu {
	menu := response_models.WeekMenu{}

	monday, err := utils.ParseWeekKey(weekKey)
	if err != nil {
		return menu
	}

	found, err := m.unitService.LookupUnit(ctx, unit)
	if err != nil || found == nil {
		return menu
	}

	entries, err := m.menuRepo.FindByUnitAndWeek(ctx, found.ID, utils.WeekKey(monday))
	if err != nil {
		m.logger.Warn("menu read failed", zap.String("unit", unit), zap.String("week", weekKey), zap.Error(err))
		return menu
	}

	for _, e := range entries {
		day, ok := menu[e.Day]
		if !ok {
			day = map[db_models.Category]response_models.MenuSlot{}
			menu[e.Day] = day
		}
		day[e.Category] = response_models.MenuSlot{
			SideDish: e.SideDish,
			Protein:  e.Protein,
			Dessert:  e.Dessert,
			ImageRef: e.ImageRef,
		}
	}
	return menu
}
