package config_fx

import (
	"go.uber.org/fx"

	"giftfinder/internal/config"
)

var Module = fx.Provide(config.New)
