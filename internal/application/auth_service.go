package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/moodtrack/moodjournal/internal/domain/entity"
	"github.com/moodtrack/moodjournal/internal/domain/repository"
	"github.com/moodtrack/moodjournal/pkg/apperr"
	"github.com/moodtrack/moodjournal/pkg/helpers"
	"github.com/moodtrack/moodjournal/pkg/mailer"
)

// dummyHash keeps login latency independent of whether the email exists:
// bcrypt comparison runs even for unknown users.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService implements registration, login, and profile lookup.
type AuthService struct {
	Users  repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
	Pub    *helpers.RabbitPublisher // optional; welcome emails are best-effort
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger, pub *helpers.RabbitPublisher) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger, Pub: pub}
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResult is returned on successful registration and login.
// The password hash is never part of it.
type AuthResult struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Token  string `json:"token"`
}

// Register creates a user with a hashed password and issues a token.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	u := &entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     entity.RoleUser,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperr.Conflict("User already exists")
		}
		return nil, apperr.Internal(err)
	}

	token, _, err := s.JWT.Generate(u.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	s.enqueueWelcome(ctx, u)

	return &AuthResult{UserID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role), Token: token}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	u, err := s.Users.GetByEmail(ctx, in.Email)

	hash := dummyHash
	if err == nil {
		hash = u.Password
	}
	ok := helpers.CompareHashAndPassword(hash, in.Password)

	if err != nil || !ok {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	token, _, err := s.JWT.Generate(u.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &AuthResult{UserID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role), Token: token}, nil
}

// Profile returns the user behind an authenticated request.
func (s *AuthService) Profile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal(err)
	}
	return u.Sanitized(), nil
}

func (s *AuthService) enqueueWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: "welcome",
		Data:     map[string]any{"Name": u.Name},
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := s.Pub.PublishJSON(c, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", u.Email).Warn("welcome email enqueue failed")
	}
}
