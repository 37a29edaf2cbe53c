package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"menuboard/internal/models/db_models"
	"menuboard/internal/models/request_models"
	"menuboard/internal/policy"
	"menuboard/internal/services"
	"menuboard/pkg/utils"
)

// DraftController exposes the per-session menu draft: open, edit slot by
// slot, then commit or discard.
type DraftController struct {
	draftService services.DraftServiceInterface
	gate         unitGate
}

func NewDraftController(draftService services.DraftServiceInterface, unitService services.UnitServiceInterface) *DraftController {
	return &DraftController{
		draftService: draftService,
		gate:         unitGate{unitService: unitService},
	}
}

// OpenDraft godoc
// @Summary Open (or resume) a menu draft for a week
// @Tags Drafts
// @Produce json
// @Param unit path string true "Unit name"
// @Param week path string true "Week, yyyy-mm-dd"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /units/{unit}/menus/{week}/draft [post]
func (d *DraftController) OpenDraft(c *gin.Context) {
	unit := c.Param("unit")
	actor, ok := d.gate.allow(c, policy.ActionEditMenu, unit)
	if !ok {
		return
	}

	draft, err := d.draftService.Open(c.Request.Context(), actor.AccountID, unit, c.Param("week"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, draft, "Draft opened")
}

// GetDraft godoc
// @Summary Read the current draft
// @Tags Drafts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /units/{unit}/menus/{week}/draft [get]
func (d *DraftController) GetDraft(c *gin.Context) {
	unit := c.Param("unit")
	actor, ok := d.gate.allow(c, policy.ActionEditMenu, unit)
	if !ok {
		return
	}

	draft, err := d.draftService.Get(c.Request.Context(), actor.AccountID, unit, c.Param("week"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, draft, "Draft fetched successfully")
}

// UpdateDraftSlot godoc
// @Summary Edit one slot of the draft
// @Tags Drafts
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /units/{unit}/menus/{week}/draft/{day}/{category} [put]
func (d *DraftController) UpdateDraftSlot(c *gin.Context) {
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

	var form request_models.MenuSlotForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	actor, ok := d.gate.allow(c, policy.ActionEditMenu, unit)
	if !ok {
		return
	}

	upload, err := readImage(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	resp, err := d.draftService.UpdateSlot(c.Request.Context(), actor.AccountID, unit, c.Param("week"), day, category,
		services.DraftSlotInput{SideDish: form.SideDish, Protein: form.Protein, Dessert: form.Dessert}, upload)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Draft slot updated")
}

// CommitDraft godoc
// @Summary Save every filled slot of the draft
// @Tags Drafts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /units/{unit}/menus/{week}/draft/commit [post]
func (d *DraftController) CommitDraft(c *gin.Context) {
	unit := c.Param("unit")
	actor, ok := d.gate.allow(c, policy.ActionEditMenu, unit)
	if !ok {
		return
	}

	resp, err := d.draftService.Commit(c.Request.Context(), actor.AccountID, unit, c.Param("week"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Menu saved for "+resp.Label)
}

// DiscardDraft godoc
// @Summary Drop the draft without saving
// @Tags Drafts
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /units/{unit}/menus/{week}/draft [delete]
func (d *DraftController) DiscardDraft(c *gin.Context) {
	unit := c.Param("unit")
	actor, ok := d.gate.allow(c, policy.ActionEditMenu, unit)
	if !ok {
		return
	}

	if err := d.draftService.Discard(c.Request.Context(), actor.AccountID, unit, c.Param("week")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Draft discarded")
}
