package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/moodtrack/moodjournal/internal/container"
	"github.com/moodtrack/moodjournal/internal/domain/repository"
	handlers "github.com/moodtrack/moodjournal/internal/interface/http"
	"github.com/moodtrack/moodjournal/internal/interface/middleware"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	Users   repository.UserRepository
}

func NewAuthModule(h *handlers.AuthHandler, users repository.UserRepository) *AuthModule {
	return &AuthModule{Handler: h, Users: users}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()

	// Public endpoints with IP-based rate limits
	authLimiter := middleware.RateLimit(container.GetRedis(), cfg.AuthRateMax, cfg.AuthRateWindow, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/register", authLimiter, m.Handler.Register)
	rg.POST("/auth/login", authLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users, container.GetJWT()))
	{
		auth.GET("/auth/profile", m.Handler.Profile)
	}
}
