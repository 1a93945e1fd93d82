package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ascend-learning/ascend_api/dto"
	"github.com/ascend-learning/ascend_api/shared"
)

type AuthHandler struct {
	authSvc      AuthServiceInterface
	rateLimitSvc RateLimitServiceInterface
}

func NewAuthHandler(authSvc AuthServiceInterface, rateLimitSvc RateLimitServiceInterface) *AuthHandler {
	return &AuthHandler{
		authSvc:      authSvc,
		rateLimitSvc: rateLimitSvc,
	}
}

// @Summary Register a new user
// @Description Create a new user account and initialize its progression state
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body dto.RegisterRequest true "Registration details"
// @Success 201 {object} shared.Response{data=dto.RegisterResponse}
// @Router /api/v1/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	if err := h.rateLimitSvc.Allow("register", c.IP()); err != nil {
		return err
	}

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	resp, err := h.authSvc.Register(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "User registered successfully", resp)
}

// @Summary Login user
// @Description Authenticate user and return access token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body dto.LoginRequest true "Login credentials"
// @Success 200 {object} shared.Response{data=dto.LoginResponse}
// @Router /api/v1/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	if err := h.rateLimitSvc.Allow("login", c.IP()); err != nil {
		return err
	}

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	resp, err := h.authSvc.Login(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Login successful", resp)
}
