package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"menuboard/internal/models/db_models"
	"menuboard/internal/models/request_models"
	"menuboard/internal/models/response_models"
	"menuboard/internal/policy"
	"menuboard/internal/services"
	"menuboard/pkg/utils"
)

type MenuController struct {
	menuService  services.MenuServiceInterface
	imageService services.ImageServiceInterface
	gate         unitGate
}

func NewMenuController(menuService services.MenuServiceInterface, imageService services.ImageServiceInterface, unitService services.UnitServiceInterface) *MenuController {
	return &MenuController{
		menuService:  menuService,
		imageService: imageService,
		gate:         unitGate{unitService: unitService},
	}
}

// GetWeek godoc
// @Summary Resolve a calendar date to its menu week
// @Tags Menus
// @Produce json
// @Param date path string true "Any date, yyyy-mm-dd"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /weeks/{date} [get]
func (m *MenuController) GetWeek(c *gin.Context) {
	monday, err := utils.ParseWeekKey(c.Param("date"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.WeekResponse{
		WeekKey: utils.WeekKey(monday),
		Monday:  utils.WeekKey(monday),
		Friday:  utils.WeekKey(monday.AddDate(0, 0, 4)),
		Label:   utils.WeekSpanLabel(monday),
	}, "Week resolved")
}

// GetWeekMenu godoc
// @Summary Get a unit's weekly menu
// @Description Every day and category is listed; undefined slots are flagged.
// @Tags Menus
// @Produce json
// @Param unit path string true "Unit name"
// @Param week path string true "Any date inside the week, yyyy-mm-dd"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /units/{unit}/menus/{week} [get]
func (m *MenuController) GetWeekMenu(c *gin.Context) {
	unit := c.Param("unit")
	monday, err := utils.ParseWeekKey(c.Param("week"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if _, ok := m.gate.allow(c, policy.ActionView, unit); !ok {
		return
	}

	weekKey := utils.WeekKey(monday)
	menu := m.menuService.FetchWeekMenu(c.Request.Context(), unit, weekKey)

	utils.RespondSuccess(c,
		response_models.NewWeekMenuResponse(unit, weekKey, utils.WeekSpanLabel(monday), menu),
		"Menu fetched successfully")
}

// SaveMenuSlot godoc
// @Summary Save one menu slot
// @Description Multipart form with side_dish, protein, dessert and an optional image file.
// @Tags Menus
// @Accept multipart/form-data
// @Produce json
// @Param unit path string true "Unit name"
// @Param week path string true "Week, yyyy-mm-dd"
// @Param day path string true "mon..fri"
// @Param category path string true "lunch or dinner"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /units/{unit}/menus/{week}/{day}/{category} [put]
func (m *MenuController) SaveMenuSlot(c *gin.Context) {
	unit := c.Param("unit")
	day, err := db_models.ParseDay(c.Param("day"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	category, err := db_models.ParseCategory(c.Param("category"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	monday, err := utils.ParseWeekKey(c.Param("week"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var form request_models.MenuSlotForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if _, ok := m.gate.allow(c, policy.ActionEditMenu, unit); !ok {
		return
	}

	weekKey := utils.WeekKey(monday)
	in := services.SaveMenuEntryInput{
		Unit:     unit,
		WeekKey:  weekKey,
		Day:      day,
		Category: category,
		SideDish: form.SideDish,
		Protein:  form.Protein,
		Dessert:  form.Dessert,
	}

	resp := response_models.SaveMenuEntryResponse{}
	if hasContent(form) {
		upload, err := readImage(c)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		ref, err := m.imageService.Ingest(c.Request.Context(), upload, services.ImagePrefix(unit, weekKey, day, category))
		if err != nil {
			resp.ImageWarning = err.Error()
		}
		in.ImageRef = ref
		resp.ImageRef = ref
	}

	saved, err := m.menuService.SaveMenuEntry(c.Request.Context(), in)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	resp.Saved = saved

	message := "Menu slot saved"
	if !saved {
		message = "Nothing to save"
	}
	utils.RespondSuccess(c, resp, message)
}

func hasContent(form request_models.MenuSlotForm) bool {
	return strings.TrimSpace(form.SideDish) != "" ||
		strings.TrimSpace(form.Protein) != "" ||
		strings.TrimSpace(form.Dessert) != ""
}
