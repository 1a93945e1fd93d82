package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ascend-learning/ascend_api/shared"
)

type MediaHandler struct {
	mediaSvc MediaServiceInterface
}

func NewMediaHandler(mediaSvc MediaServiceInterface) *MediaHandler {
	return &MediaHandler{mediaSvc: mediaSvc}
}

// @Summary Upload avatar
// @Description Upload an avatar image for the current user
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param file formData file true "Avatar image (JPG, PNG or WEBP, max 2MB)"
// @Success 200 {object} shared.Response{data=dto.MediaUploadResponse}
// @Router /api/v1/me/avatar [post]
func (h *MediaHandler) UploadAvatar(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	file, err := c.FormFile("file")
	if err != nil {
		return shared.NewBadRequestError(err, "Missing avatar file")
	}

	resp, err := h.mediaSvc.UploadAvatar(userID, file)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}
