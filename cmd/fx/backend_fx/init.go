package backend_fx

import (
	"go.uber.org/fx"

	"giftfinder/internal/repositories"
)

var Module = fx.Provide(repositories.NewBackendRepository)
