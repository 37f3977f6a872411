package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moodtrack/moodjournal/internal/container"
	"github.com/moodtrack/moodjournal/internal/domain/repository"
	handlers "github.com/moodtrack/moodjournal/internal/interface/http"
	"github.com/moodtrack/moodjournal/internal/interface/middleware"
)

type MoodModule struct {
	Handler *handlers.MoodLogHandler
	Users   repository.UserRepository
}

func NewMoodModule(h *handlers.MoodLogHandler, users repository.UserRepository) *MoodModule {
	return &MoodModule{Handler: h, Users: users}
}

func (m *MoodModule) Register(rg *gin.RouterGroup) {
	// Everything here requires a valid bearer token. A generous per-user
	// limit keeps runaway clients from hammering the aggregation queries.
	perUserLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP())

	mood := rg.Group("/mood")
	mood.Use(middleware.Auth(m.Users, container.GetJWT()))
	mood.Use(perUserLimiter)
	{
		mood.POST("", m.Handler.Create)
		mood.GET("", m.Handler.List)
		mood.GET("/stats", m.Handler.Stats)
		mood.GET("/search", m.Handler.Search)
		mood.GET("/:id", m.Handler.Get)
		mood.PUT("/:id", m.Handler.Update)
		mood.DELETE("/:id", m.Handler.Delete)
	}
}
