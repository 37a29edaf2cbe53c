package controllers_fx

import (
	"go.uber.org/fx"

	"menuboard/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewUnitController),
	fx.Provide(controllers.NewMenuController),
	fx.Provide(controllers.NewDraftController),
	fx.Provide(controllers.NewAnnouncementController))
