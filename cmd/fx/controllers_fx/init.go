package controllers_fx

import (
	"go.uber.org/fx"

	"giftfinder/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewSurveyController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewOrderController))
