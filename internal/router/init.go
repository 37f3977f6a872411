package router

import (
	"github.com/moodtrack/moodjournal/internal/application"
	"github.com/moodtrack/moodjournal/internal/container"
	pginfra "github.com/moodtrack/moodjournal/internal/infrastructure/postgres"
	handlers "github.com/moodtrack/moodjournal/internal/interface/http"
	"github.com/moodtrack/moodjournal/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	users := pginfra.NewUserRepository(container.GetPGPool())
	moodLogs := pginfra.NewMoodLogRepository(container.GetPGPool())

	authService := application.NewAuthService(
		users,
		container.GetJWT(),
		container.GetLogger(),
		container.GetRabbitPub(),
	)
	moodService := application.NewMoodLogService(
		moodLogs,
		container.GetLogger(),
		container.GetES(),
		container.GetConfig().ESMoodIndex,
	)

	authHandler := handlers.NewAuthHandler(authService, container.GetLogger())
	moodHandler := handlers.NewMoodLogHandler(moodService, container.GetLogger())

	r.Add(modules.NewAuthModule(authHandler, users))
	r.Add(modules.NewMoodModule(moodHandler, users))
}
