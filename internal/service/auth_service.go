package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"ai_linguo/internal/config"
	"ai_linguo/internal/middleware"
	"ai_linguo/internal/model"
	"ai_linguo/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --case=underscore
type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
}

type authService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	cfg      *config.Config
	now      func() time.Time
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		db:       db,
		userRepo: userRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Register creates a learner account and returns it with an access token.
// New learners start at A2 with a 15 minute daily goal and no streak.
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	logger := middleware.GetLogger(ctx).With("email", email)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to process the password.", "", err)
	}

	level := req.CEFRLevel
	if !level.IsValid() {
		level = model.LevelA2
	}

	user := &model.User{
		UserID:           uuid.New(),
		Email:            email,
		Name:             strings.TrimSpace(req.Name),
		PasswordHash:     string(hashedPassword),
		CEFRLevel:        level,
		DailyGoalMinutes: model.DefaultDailyGoalMinutes,
	}

	if err := s.userRepo.Create(ctx, s.db, user); err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Warn("Email already registered")
			return nil, model.NewAppError("DUPLICATE_EMAIL", "This email address is already registered.", "email", model.ErrConflict)
		}
		logger.Error("Failed to create user", "error", err)
		return nil, storageError(err, "Failed to create the account.")
	}

	token, err := s.issueToken(user)
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.UserID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to issue an access token.", "", err)
	}

	logger.Info("User registered", "user_id", user.UserID, "level", string(user.CEFRLevel))
	return &model.AuthResponse{User: model.NewUserResponse(user), Token: token}, nil
}

// Login checks the password and returns the learner with a fresh token.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	logger := middleware.GetLogger(ctx).With("email", email)

	user, err := s.userRepo.FindByEmail(ctx, s.db, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, notFound("USER_NOT_FOUND", "No account is registered with this email address.", "email")
		}
		logger.Error("Login failed: db error on FindByEmail", "error", err)
		return nil, storageError(err, "Failed to look up the account.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.UserID)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "The email address or password is incorrect.", "", model.ErrUnauthorized)
	}

	token, err := s.issueToken(user)
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.UserID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to issue an access token.", "", err)
	}

	logger.Info("Login successful", "user_id", user.UserID)
	return &model.AuthResponse{User: model.NewUserResponse(user), Token: token}, nil
}

func (s *authService) issueToken(user *model.User) (string, error) {
	ttl := s.cfg.Auth.JWT.TTL
	if ttl <= 0 {
		ttl = config.DefaultTokenTTL
	}
	now := s.now()
	claims := &model.JWTCustomClaims{
		Level: user.CEFRLevel,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.AppName,
			Subject:   user.UserID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.JWT.SecretKey))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
