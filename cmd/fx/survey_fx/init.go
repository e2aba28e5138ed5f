package survey_fx

import (
	"go.uber.org/fx"

	"giftfinder/internal/services"
)

var Module = fx.Provide(services.NewSurveyService)
