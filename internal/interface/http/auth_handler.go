package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/moodtrack/moodjournal/internal/application"
	"github.com/moodtrack/moodjournal/internal/interface/middleware"
	"github.com/moodtrack/moodjournal/pkg/apperr"
	"github.com/moodtrack/moodjournal/pkg/response"
	"github.com/moodtrack/moodjournal/pkg/validation"
)

type AuthHandler struct {
	Service *application.AuthService
	Logger  *logrus.Logger
}

func NewAuthHandler(service *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Service: service, Logger: logger}
}

// Register POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var in application.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(apperr.Validation("invalid payload", validation.Details(err)))
		return
	}

	res, err := h.Service.Register(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, http.StatusCreated, "User registered", res)
}

// Login POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in application.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(apperr.Validation("invalid payload", validation.Details(err)))
		return
	}

	res, err := h.Service.Login(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, http.StatusOK, "Login successful", res)
}

// Profile GET /api/v1/auth/profile (auth required)
func (h *AuthHandler) Profile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	u, err := h.Service.Profile(c.Request.Context(), uid)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, http.StatusOK, "", gin.H{
		"userId": u.ID,
		"name":   u.Name,
		"email":  u.Email,
		"role":   string(u.Role),
	})
}
