package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"menuboard/internal/models/db_models"
	"menuboard/internal/models/request_models"
	"menuboard/internal/models/response_models"
	"menuboard/internal/policy"
	"menuboard/internal/services"
	"menuboard/pkg/middleware"
	"menuboard/pkg/utils"
)

type UnitController struct {
	unitService services.UnitServiceInterface
}

func NewUnitController(unitService services.UnitServiceInterface) *UnitController {
	return &UnitController{unitService: unitService}
}

// ListUnits godoc
// @Summary List units
// @Description Admins see every unit, everyone else only their own.
// @Tags Units
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /units [get]
func (u *UnitController) ListUnits(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	units := u.unitService.ListUnits(c.Request.Context())
	if !actor.IsAdmin() {
		own := make([]response_models.UnitResponse, 0, 1)
		for _, unit := range units {
			if unit.ID == actor.UnitID.String() {
				own = append(own, unit)
			}
		}
		units = own
	}

	utils.RespondSuccess(c, units, "Units fetched successfully")
}

// CreateUnit godoc
// @Summary Create a unit
// @Tags Units
// @Accept json
// @Produce json
// @Param request body request_models.CreateUnitRequest true "Unit"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /units [post]
func (u *UnitController) CreateUnit(c *gin.Context) {
	var req request_models.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan := db_models.PlanFree
	if req.Plan != "" {
		parsed, err := db_models.ParsePlan(req.Plan)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		plan = parsed
	}

	if !u.authorize(c, policy.ActionManageUnits) {
		return
	}

	created, err := u.unitService.CreateUnit(c.Request.Context(), req.Name, plan)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if !created {
		utils.RespondSuccess(c, gin.H{"created": false}, "Unit already exists")
		return
	}
	utils.RespondStatus(c, http.StatusCreated, gin.H{"created": true}, "Unit created")
}

// ChangePlan godoc
// @Summary Switch a unit between the free and premium plans
// @Tags Units
// @Accept json
// @Produce json
// @Param unit path string true "Unit name"
// @Param request body request_models.ChangePlanRequest true "Plan"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /units/{unit}/plan [patch]
func (u *UnitController) ChangePlan(c *gin.Context) {
	var req request_models.ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	plan, err := db_models.ParsePlan(req.Plan)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if !u.authorize(c, policy.ActionChangePlan) {
		return
	}

	if err := u.unitService.ChangePlan(c.Request.Context(), c.Param("unit"), plan); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"plan": plan}, "Plan updated")
}

// authorize checks a unit-independent action; only admins hold these.
func (u *UnitController) authorize(c *gin.Context, action policy.Action) bool {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return false
	}
	if err := policy.Authorize(actor, action, actor.UnitID); err != nil {
		utils.HandleServiceError(c, err)
		return false
	}
	return true
}
