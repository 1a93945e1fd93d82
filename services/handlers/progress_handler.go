package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ascend-learning/ascend_api/dto"
	"github.com/ascend-learning/ascend_api/shared"
)

type ProgressHandler struct {
	progressSvc  ProgressServiceInterface
	rateLimitSvc RateLimitServiceInterface
}

func NewProgressHandler(progressSvc ProgressServiceInterface, rateLimitSvc RateLimitServiceInterface) *ProgressHandler {
	return &ProgressHandler{
		progressSvc:  progressSvc,
		rateLimitSvc: rateLimitSvc,
	}
}

// @Summary Submit a challenge answer
// @Description Grades the answer and, on a first correct answer, awards XP, advances the streak and evaluates quest completion
// @Tags progress
// @Accept json
// @Produce json
// @Security Bearer
// @Param challengeId path string true "Challenge ID"
// @Param submitRequest body dto.SubmitAnswerRequest true "Answer payload"
// @Success 200 {object} shared.Response{data=dto.SubmitAnswerResponse}
// @Router /api/v1/challenges/{challengeId}/submit [post]
func (h *ProgressHandler) SubmitAnswer(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	if err := h.rateLimitSvc.Allow("submit", userID); err != nil {
		return err
	}

	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	resp, err := h.progressSvc.SubmitAnswer(userID, c.Params("challengeId"), req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Get the caller's attempt record for a challenge
// @Tags progress
// @Produce json
// @Security Bearer
// @Param challengeId path string true "Challenge ID"
// @Success 200 {object} shared.Response{data=dto.AttemptResponse}
// @Router /api/v1/challenges/{challengeId}/attempt [get]
func (h *ProgressHandler) GetAttempt(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.progressSvc.GetAttempt(userID, c.Params("challengeId"))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}
