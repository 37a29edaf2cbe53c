package response_models

import (
	"time"

	"menuboard/internal/models/db_models"
)

// MenuSlot is the content of one filled day/category slot.
type MenuSlot struct {
	SideDish string  `json:"side_dish"`
	Protein  string  `json:"protein"`
	Dessert  string  `json:"dessert"`
	ImageRef *string `json:"image_ref"`
}

// WeekMenu maps day then category to the slots stored for a week. Slots that
// were never saved are absent.
type WeekMenu map[db_models.Day]map[db_models.Category]MenuSlot

func (w WeekMenu) Slot(day db_models.Day, category db_models.Category) (MenuSlot, bool) {
	slot, ok := w[day][category]
	return slot, ok
}

type MenuGridSlot struct {
	Category db_models.Category `json:"category"`
	Defined  bool               `json:"defined"`
	MenuSlot
}

type MenuGridDay struct {
	Day   db_models.Day  `json:"day"`
	Slots []MenuGridSlot `json:"slots"`
}

// WeekMenuResponse always lists every day and category, flagging the slots
// that have not been defined yet.
type WeekMenuResponse struct {
	UnitName string        `json:"unit"`
	WeekKey  string        `json:"week_key"`
	Label    string        `json:"label"`
	Days     []MenuGridDay `json:"days"`
}

func NewWeekMenuResponse(unit, weekKey, label string, menu WeekMenu) WeekMenuResponse {
	resp := WeekMenuResponse{
		UnitName: unit,
		WeekKey:  weekKey,
		Label:    label,
		Days:     make([]MenuGridDay, 0, len(db_models.WeekDays)),
	}
	for _, day := range db_models.WeekDays {
		gridDay := MenuGridDay{Day: day, Slots: make([]MenuGridSlot, 0, len(db_models.MealCategories))}
		for _, category := range db_models.MealCategories {
			slot, ok := menu.Slot(day, category)
			gridDay.Slots = append(gridDay.Slots, MenuGridSlot{Category: category, Defined: ok, MenuSlot: slot})
		}
		resp.Days = append(resp.Days, gridDay)
	}
	return resp
}

type WeekResponse struct {
	WeekKey string `json:"week_key"`
	Monday  string `json:"monday"`
	Friday  string `json:"friday"`
	Label   string `json:"label"`
}

type SaveMenuEntryResponse struct {
	Saved        bool    `json:"saved"`
	ImageRef     *string `json:"image_ref,omitempty"`
	ImageWarning string  `json:"image_warning,omitempty"`
}

// DraftSlot is the editable copy of one slot. ImageChanged marks slots whose
// image was replaced during the session; only those overwrite the stored
// reference on commit.
type DraftSlot struct {
	SideDish     string  `json:"side_dish"`
	Protein      string  `json:"protein"`
	Dessert      string  `json:"dessert"`
	ImageRef     *string `json:"image_ref"`
	ImageChanged bool    `json:"image_changed"`
}

func (s DraftSlot) HasContent() bool {
	return s.SideDish != "" || s.Protein != "" || s.Dessert != ""
}

type MenuDraft struct {
	AccountID string                                             `json:"account_id"`
	UnitName  string                                             `json:"unit"`
	WeekKey   string                                             `json:"week_key"`
	Label     string                                             `json:"label"`
	Slots     map[db_models.Day]map[db_models.Category]DraftSlot `json:"slots"`
	OpenedAt  time.Time                                          `json:"opened_at"`
}

type DraftSlotUpdateResponse struct {
	Draft        *MenuDraft `json:"draft"`
	ImageWarning string     `json:"image_warning,omitempty"`
}

type DraftCommitResponse struct {
	WeekKey string `json:"week_key"`
	Label   string `json:"label"`
	Saved   int    `json:"saved"`
	Skipped int    `json:"skipped"`
}
