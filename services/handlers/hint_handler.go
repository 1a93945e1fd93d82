package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ascend-learning/ascend_api/dto"
	"github.com/ascend-learning/ascend_api/shared"
)

type HintHandler struct {
	hintSvc      HintServiceInterface
	rateLimitSvc RateLimitServiceInterface
}

func NewHintHandler(hintSvc HintServiceInterface, rateLimitSvc RateLimitServiceInterface) *HintHandler {
	return &HintHandler{
		hintSvc:      hintSvc,
		rateLimitSvc: rateLimitSvc,
	}
}

// @Summary Get a hint for a challenge
// @Description Generated hint scaled to the caller's attempt count, with static fallback
// @Tags hint
// @Accept json
// @Produce json
// @Security Bearer
// @Param challengeId path string true "Challenge ID"
// @Param hintRequest body dto.HintRequest true "Attempt context"
// @Success 200 {object} shared.Response{data=dto.HintResponse}
// @Router /api/v1/challenges/{challengeId}/hint [post]
func (h *HintHandler) GetHint(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	if err := h.rateLimitSvc.Allow("hint", userID); err != nil {
		return err
	}

	var req dto.HintRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return dto.NewValidationError(err)
	}

	resp, err := h.hintSvc.GetHint(userID, c.Params("challengeId"), req.Attempts)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}
