package services

import (
	"fmt"
	"time"

	"github.com/ascend-learning/ascend_api/dto"
	"github.com/ascend-learning/ascend_api/model"
	"github.com/ascend-learning/ascend_api/shared"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	context.DefaultService

	sqlSvc  *PostgresService
	jwtSvc  *JWTService
	userSvc *UserService
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	svc.userSvc = svc.Service(USER_SVC).(*UserService)
	return nil
}

func (svc *AuthService) Register(req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, dto.NewValidationError(err)
	}

	if _, err := svc.sqlSvc.GetUserByEmailOrUsername(req.Email); err == nil {
		return nil, shared.NewConflictError(fmt.Errorf("email taken"), "Email is already registered")
	}
	if _, err := svc.sqlSvc.GetUserByUsername(req.Username); err == nil {
		return nil, shared.NewConflictError(fmt.Errorf("username taken"), "Username is already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to hash password")
	}

	userID, _ := uuid.NewV7()
	user := &model.User{
		ID:        userID.String(),
		Email:     req.Email,
		Username:  req.Username,
		Password:  string(hashed),
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := svc.sqlSvc.CreateUser(user); err != nil {
		return nil, shared.NewInternalError(err, "Failed to create user")
	}

	if err := svc.userSvc.InitializeProgress(user.ID); err != nil {
		log.WithError(err).WithField("user_id", user.ID).Error("Failed to initialize progress")
		return nil, shared.NewInternalError(err, "Failed to initialize user progress")
	}

	return &dto.RegisterResponse{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
	}, nil
}

func (svc *AuthService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, dto.NewValidationError(err)
	}

	user, err := svc.sqlSvc.GetUserByEmailOrUsername(req.EmailOrUsername)
	if err != nil {
		return nil, shared.NewUnauthorizedError(err, "Invalid credentials")
	}

	if !user.IsActive {
		return nil, shared.NewUnauthorizedError(fmt.Errorf("account inactive"), "Account is inactive")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, shared.NewUnauthorizedError(err, "Invalid credentials")
	}

	tokens, err := svc.jwtSvc.GenerateTokenPair(user.ID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to generate token")
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := svc.sqlSvc.UpdateUser(user); err != nil {
		log.WithError(err).WithField("user_id", user.ID).Warn("Failed to record login time")
	}

	return &dto.LoginResponse{
		UserID:      user.ID,
		Username:    user.Username,
		AccessToken: tokens.AccessToken,
		ExpiresIn:   tokens.ExpiresIn,
		LoggedInAt:  now,
	}, nil
}

// RequiredAuth guards routes with a bearer token and stores the caller
// id in locals under shared.UserID.
func (svc *AuthService) RequiredAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		token, err := svc.jwtSvc.ExtractTokenFromHeader(authHeader)
		if err != nil {
			return shared.NewUnauthorizedError(err, "Unauthorized")
		}

		userID, err := svc.jwtSvc.VerifyJWTToken(token)
		if err != nil {
			return shared.NewUnauthorizedError(err, "Invalid JWT token")
		}

		if userID == "" {
			return shared.NewUnauthorizedError(nil, "Invalid user ID in token")
		}

		c.Locals(shared.UserID, userID)
		return c.Next()
	}
}
