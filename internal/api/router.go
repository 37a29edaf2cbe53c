package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"menuboard/internal/api/controllers"
	"menuboard/internal/config"
	"menuboard/internal/models/db_models"
	"menuboard/pkg/metrics"
	"menuboard/pkg/middleware"
	"menuboard/pkg/utils"
)

type RouterParams struct {
	fx.In

	Config   *config.Config
	Logger   *zap.Logger
	DB       *gorm.DB
	Tokens   *utils.TokenIssuer
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	AccountController      *controllers.AccountController
	UnitController         *controllers.UnitController
	MenuController         *controllers.MenuController
	DraftController        *controllers.DraftController
	AnnouncementController *controllers.AnnouncementController
}

func NewRouter(p RouterParams) *gin.Engine {
	if p.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Logger))
	r.Use(p.Metrics.Middleware())

	r.GET("/healthz", healthHandler(p.DB))
	r.GET("/metrics", gin.WrapH(metrics.Handler(p.Gatherer)))
	if p.Config.Storage.Driver == config.StorageLocal {
		r.Static("/media", p.Config.Storage.MediaDir)
	}

	RegisterRoutes(r, p)
	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	auth := middleware.JWTAuthMiddleware(p.Tokens)

	r.POST("/accounts/login", p.AccountController.Login)

	accountGroup := r.Group("/accounts", auth)
	accountGroup.GET("", p.AccountController.ListAccounts)
	accountGroup.POST("", p.AccountController.CreateAccount)
	accountGroup.DELETE("/:id", p.AccountController.DeleteAccount)

	r.GET("/weeks/:date", auth, p.MenuController.GetWeek)

	unitGroup := r.Group("/units", auth)
	unitGroup.GET("", p.UnitController.ListUnits)
	unitGroup.POST("", middleware.RoleMiddleware(db_models.RoleAdmin), p.UnitController.CreateUnit)
	unitGroup.PATCH("/:unit/plan", middleware.RoleMiddleware(db_models.RoleAdmin), p.UnitController.ChangePlan)

	unitGroup.GET("/:unit/menus/:week", p.MenuController.GetWeekMenu)
	unitGroup.PUT("/:unit/menus/:week/:day/:category", p.MenuController.SaveMenuSlot)

	draftGroup := unitGroup.Group("/:unit/menus/:week/draft")
	draftGroup.POST("", p.DraftController.OpenDraft)
	draftGroup.GET("", p.DraftController.GetDraft)
	draftGroup.DELETE("", p.DraftController.DiscardDraft)
	draftGroup.PUT("/:day/:category", p.DraftController.UpdateDraftSlot)
	draftGroup.POST("/commit", p.DraftController.CommitDraft)

	unitGroup.GET("/:unit/announcements", p.AnnouncementController.ListAnnouncements)
	unitGroup.POST("/:unit/announcements", p.AnnouncementController.CreateAnnouncement)
	r.DELETE("/announcements/:id", auth, p.AnnouncementController.DeactivateAnnouncement)
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			utils.RespondError(c, http.StatusServiceUnavailable, "database unreachable")
			return
		}
		utils.RespondSuccess(c, gin.H{"status": "ok"}, "healthy")
	}
}
