package session_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"giftfinder/internal/config"
	"giftfinder/internal/repositories"
	"giftfinder/internal/services"
)

var Module = fx.Provide(
	provideSessionRepo, provideSessionService)

func provideSessionRepo(cfg *config.Config) (repositories.SessionRepository, error) {
	return repositories.NewSessionRepository(cfg.SessionFilePath)
}

func provideSessionService(sessionRepo repositories.SessionRepository, logger *zap.Logger) services.SessionServiceInterface {
	return services.NewSessionService(sessionRepo, logger)
}
