package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ascend-learning/ascend_api/dto"
	"github.com/ascend-learning/ascend_api/shared"
)

type UserHandler struct {
	userSvc UserServiceInterface
}

func NewUserHandler(userSvc UserServiceInterface) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// @Summary Get current user profile
// @Tags user
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=dto.UserProfileResponse}
// @Router /api/v1/me [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.userSvc.GetUserProfile(userID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Update current user profile
// @Tags user
// @Accept json
// @Produce json
// @Security Bearer
// @Param updateRequest body dto.UpdateProfileRequest true "Profile fields to update"
// @Success 200 {object} shared.Response{data=dto.UserProfileResponse}
// @Router /api/v1/me [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	resp, err := h.userSvc.UpdateUserProfile(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Profile updated successfully", resp)
}

// @Summary Get current user progression
// @Description XP, level, rank, streak, per-skill scores and completed sets
// @Tags user
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=dto.UserProgressResponse}
// @Router /api/v1/me/progress [get]
func (h *UserHandler) GetProgress(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.userSvc.GetUserProgress(userID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Record a daily activity for the streak
// @Description Applies one qualifying activity to the caller's streak counter
// @Tags user
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=dto.StreakResponse}
// @Router /api/v1/me/streak [post]
func (h *UserHandler) UpdateStreak(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.userSvc.UpdateStreak(userID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary All-time leaderboard
// @Tags leaderboard
// @Produce json
// @Security Bearer
// @Param limit query int false "Entries to return (max 100)" default(25)
// @Success 200 {object} shared.Response{data=dto.LeaderboardResponse}
// @Router /api/v1/leaderboard [get]
func (h *UserHandler) GetLeaderboard(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	limit, err := strconv.Atoi(c.Query("limit", "25"))
	if err != nil {
		limit = 25
	}

	resp, err := h.userSvc.GetLeaderboard(limit, userID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}
