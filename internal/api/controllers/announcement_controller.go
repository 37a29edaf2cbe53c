package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"menuboard/internal/models/request_models"
	"menuboard/internal/policy"
	"menuboard/internal/services"
	"menuboard/pkg/middleware"
	"menuboard/pkg/utils"
)

type AnnouncementController struct {
	announcementService services.AnnouncementServiceInterface
	gate                unitGate
}

func NewAnnouncementController(announcementService services.AnnouncementServiceInterface, unitService services.UnitServiceInterface) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
		gate:                unitGate{unitService: unitService},
	}
}

// ListAnnouncements godoc
// @Summary Active announcements of a unit, newest first
// @Tags Announcements
// @Produce json
// @Param unit path string true "Unit name"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /units/{unit}/announcements [get]
func (a *AnnouncementController) ListAnnouncements(c *gin.Context) {
	unit := c.Param("unit")
	if _, ok := a.gate.allow(c, policy.ActionView, unit); !ok {
		return
	}

	utils.RespondSuccess(c,
		a.announcementService.ListActiveAnnouncements(c.Request.Context(), unit),
		"Announcements fetched successfully")
}

// CreateAnnouncement godoc
// @Summary Post an announcement to a unit
// @Tags Announcements
// @Accept json
// @Produce json
// @Param unit path string true "Unit name"
// @Param request body request_models.CreateAnnouncementRequest true "Announcement"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /units/{unit}/announcements [post]
func (a *AnnouncementController) CreateAnnouncement(c *gin.Context) {
	unit := c.Param("unit")

	var req request_models.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	title, body := strings.TrimSpace(req.Title), strings.TrimSpace(req.Body)
	if title == "" || body == "" {
		utils.RespondError(c, http.StatusBadRequest, "Title and body are required")
		return
	}

	if _, ok := a.gate.allow(c, policy.ActionPostAnnouncement, unit); !ok {
		return
	}

	created, ok, err := a.announcementService.CreateAnnouncement(c.Request.Context(), unit, title, body)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if !ok {
		utils.RespondSuccess(c, nil, "Unit could not be resolved; nothing was posted")
		return
	}
	utils.RespondStatus(c, http.StatusCreated, created, "Announcement posted")
}

// DeactivateAnnouncement godoc
// @Summary Deactivate an announcement
// @Tags Announcements
// @Param id path string true "Announcement id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /announcements/{id} [delete]
func (a *AnnouncementController) DeactivateAnnouncement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid announcement ID")
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := a.announcementService.Deactivate(c.Request.Context(), actor, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Announcement deactivated")
}
