package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"menuboard/internal/models/db_models"
	"menuboard/internal/models/response_models"
	"menuboard/internal/repositories"
	"menuboard/pkg/utils"
)

// DraftSlotInput carries the text fields of one slot edit.
type DraftSlotInput struct {
	SideDish string
	Protein  string
	Dessert  string
}

type DraftServiceInterface interface {
	// Open returns the caller's draft for the week, seeding a new one from
	// the stored menu when none exists.
	Open(ctx context.Context, accountID uuid.UUID, unit, weekKey string) (*response_models.MenuDraft, error)
	Get(ctx context.Context, accountID uuid.UUID, unit, weekKey string) (*response_models.MenuDraft, error)
	UpdateSlot(ctx context.Context, accountID uuid.UUID, unit, weekKey string, day db_models.Day, category db_models.Category, fields DraftSlotInput, image *ImageUpload) (*response_models.DraftSlotUpdateResponse, error)
	// Commit saves every slot holding content and drops the draft.
	Commit(ctx context.Context, accountID uuid.UUID, unit, weekKey string) (*response_models.DraftCommitResponse, error)
	Discard(ctx context.Context, accountID uuid.UUID, unit, weekKey string) error
}

type DraftService struct {
	draftRepo    repositories.DraftRepository
	menuService  MenuServiceInterface
	imageService ImageServiceInterface
	logger       *zap.Logger
	now          func() time.Time
}

func NewDraftService(draftRepo repositories.DraftRepository, menuService MenuServiceInterface, imageService ImageServiceInterface, logger *zap.Logger) DraftServiceInterface {
	return &DraftService{
		draftRepo:    draftRepo,
		menuService:  menuService,
		imageService: imageService,
		logger:       logger,
		now:          utils.NowUTC,
	}
}

func draftKey(accountID uuid.UUID, unit, weekKey string) string {
	return fmt.Sprintf("%s:%s:%s", accountID, unit, weekKey)
}

// normalizeWeek maps any date inside a week onto that week's key.
func normalizeWeek(weekKey string) (string, time.Time, error) {
	monday, err := utils.ParseWeekKey(weekKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return utils.WeekKey(monday), monday, nil
}

func (d *DraftService) Open(ctx context.Context, accountID uuid.UUID, unit, weekKey string) (*response_models.MenuDraft, error) {
	key, monday, err := normalizeWeek(weekKey)
	if err != nil {
		return nil, err
	}

	existing, err := d.draftRepo.Load(ctx, draftKey(accountID, unit, key))
	if err != nil {
		d.logger.Error("draft load failed", zap.String("unit", unit), zap.String("week", key), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return existing, nil
	}

	stored := d.menuService.FetchWeekMenu(ctx, unit, key)
	draft := &response_models.MenuDraft{
		AccountID: accountID.String(),
		UnitName:  unit,
		WeekKey:   key,
		Label:     utils.WeekSpanLabel(monday),
		Slots:     map[db_models.Day]map[db_models.Category]response_models.DraftSlot{},
		OpenedAt:  d.now().UTC(),
	}
	for _, day := range db_models.WeekDays {
		draft.Slots[day] = map[db_models.Category]response_models.DraftSlot{}
		for _, category := range db_models.MealCategories {
			slot, _ := stored.Slot(day, category)
			draft.Slots[day][category] = response_models.DraftSlot{
				SideDish: slot.SideDish,
				Protein:  slot.Protein,
				Dessert:  slot.Dessert,
				ImageRef: slot.ImageRef,
			}
		}
	}

	if err := d.draftRepo.Save(ctx, draftKey(accountID, unit, key), draft); err != nil {
		d.logger.Error("draft save failed", zap.String("unit", unit), zap.String("week", key), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return draft, nil
}

func (d *DraftService) Get(ctx context.Context, accountID uuid.UUID, unit, weekKey string) (*response_models.MenuDraft, error) {
	key, _, err := normalizeWeek(weekKey)
	if err != nil {
		return nil, err
	}
	return d.load(ctx, draftKey(accountID, unit, key))
}

func (d *DraftService) load(ctx context.Context, key string) (*response_models.MenuDraft, error) {
	draft, err := d.draftRepo.Load(ctx, key)
	if err != nil {
		d.logger.Error("draft load failed", zap.String("key", key), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if draft == nil {
		return nil, utils.ErrDraftNotFound
	}
	return draft, nil
}

func (d *DraftService) UpdateSlot(ctx context.Context, accountID uuid.UUID, unit, weekKey string, day db_models.Day, category db_models.Category, fields DraftSlotInput, image *ImageUpload) (*response_models.DraftSlotUpdateResponse, error) {
	key, _, err := normalizeWeek(weekKey)
	if err != nil {
		return nil, err
	}
	if _, err := db_models.ParseDay(string(day)); err != nil {
		return nil, err
	}
	if _, err := db_models.ParseCategory(string(category)); err != nil {
		return nil, err
	}

	storeKey := draftKey(accountID, unit, key)
	draft, err := d.load(ctx, storeKey)
	if err != nil {
		return nil, err
	}

	slot := draft.Slots[day][category]
	slot.SideDish = strings.TrimSpace(fields.SideDish)
	slot.Protein = strings.TrimSpace(fields.Protein)
	slot.Dessert = strings.TrimSpace(fields.Dessert)

	resp := &response_models.DraftSlotUpdateResponse{}
	// A blank slot is skipped on commit, so an upload here would be orphaned.
	if slot.HasContent() {
		ref, err := d.imageService.Ingest(ctx, image, ImagePrefix(unit, key, day, category))
		switch {
		case err != nil:
			resp.ImageWarning = err.Error()
		case ref != nil:
			slot.ImageRef = ref
			slot.ImageChanged = true
		}
	}

	if draft.Slots[day] == nil {
		draft.Slots[day] = map[db_models.Category]response_models.DraftSlot{}
	}
	draft.Slots[day][category] = slot

	if err := d.draftRepo.Save(ctx, storeKey, draft); err != nil {
		d.logger.Error("draft save failed", zap.String("key", storeKey), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	resp.Draft = draft
	return resp, nil
}

func (d *DraftService) Commit(ctx context.Context, accountID uuid.UUID, unit, weekKey string) (*response_models.DraftCommitResponse, error) {
	key, monday, err := normalizeWeek(weekKey)
	if err != nil {
		return nil, err
	}

	storeKey := draftKey(accountID, unit, key)
	draft, err := d.load(ctx, storeKey)
	if err != nil {
		return nil, err
	}

	resp := &response_models.DraftCommitResponse{
		WeekKey: key,
		Label:   utils.WeekSpanLabel(monday),
	}
	for _, day := range db_models.WeekDays {
		for _, category := range db_models.MealCategories {
			slot, ok := draft.Slots[day][category]
			if !ok || !slot.HasContent() {
				resp.Skipped++
				continue
			}

			in := SaveMenuEntryInput{
				Unit:     unit,
				WeekKey:  key,
				Day:      day,
				Category: category,
				SideDish: slot.SideDish,
				Protein:  slot.Protein,
				Dessert:  slot.Dessert,
			}
			if slot.ImageChanged {
				in.ImageRef = slot.ImageRef
			}

			saved, err := d.menuService.SaveMenuEntry(ctx, in)
			if err != nil {
				return nil, err
			}
			if saved {
				resp.Saved++
			} else {
				resp.Skipped++
			}
		}
	}

	if err := d.draftRepo.Delete(ctx, storeKey); err != nil {
		d.logger.Warn("draft cleanup failed", zap.String("key", storeKey), zap.Error(err))
	}
	d.logger.Info("draft committed", zap.String("unit", unit), zap.String("week", key),
		zap.Int("saved", resp.Saved), zap.Int("skipped", resp.Skipped))
	return resp, nil
}

func (d *DraftService) Discard(ctx context.Context, accountID uuid.UUID, unit, weekKey string) error {
	key, _, err := normalizeWeek(weekKey)
	if err != nil {
		return err
	}
	if err := d.draftRepo.Delete(ctx, draftKey(accountID, unit, key)); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
