// services/media.go
package services

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/ascend-learning/ascend_api/dto"
	"github.com/ascend-learning/ascend_api/shared"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
)

// MediaService handles the one media surface in the product: user
// avatars, stored in minio and served via presigned URLs.
type MediaService struct {
	appContext.DefaultService
	sqlSvc   *PostgresService
	minioSvc *MinIOService
}

const MEDIA_SVC = "media_svc"

const maxAvatarSize = 2 * 1024 * 1024

func (svc MediaService) Id() string {
	return MEDIA_SVC
}

func (svc *MediaService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.minioSvc = svc.Service(MINIO_SVC).(*MinIOService)
	return nil
}

// UploadAvatar stores the user's avatar image and records its URL on
// the user row. The previous avatar object stays in place; presigned
// URLs expire so stale objects are unreachable, and storage cleanup is
// an operational concern.
func (svc *MediaService) UploadAvatar(userID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error) {
	if !isValidImageFile(file.Filename) {
		return nil, shared.NewBadRequestError(nil, "Invalid image file format. Supported: JPG, PNG, WEBP")
	}

	if file.Size > maxAvatarSize {
		return nil, shared.NewBadRequestError(nil, "Avatar file too large. Maximum size: 2MB")
	}

	user, err := svc.sqlSvc.GetUser(userID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "User not found")
	}

	ext := filepath.Ext(file.Filename)
	objectName := fmt.Sprintf("avatars/%s_%d%s", userID, time.Now().Unix(), ext)

	src, err := file.Open()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to open uploaded file")
	}
	defer src.Close()

	uploadInfo, err := svc.minioSvc.UploadFile(objectName, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to upload file to storage")
	}

	fileURL, err := svc.minioSvc.GetFileURL(objectName, 24*time.Hour)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to generate avatar URL")
	}

	user.AvatarURL = fileURL
	if err := svc.sqlSvc.UpdateUser(user); err != nil {
		svc.minioSvc.DeleteFile(objectName)
		return nil, shared.NewInternalError(err, "Failed to save avatar")
	}

	log.Printf("Successfully uploaded avatar for user %s: %s", userID, uploadInfo.Key)

	return &dto.MediaUploadResponse{
		URL:        fileURL,
		Size:       file.Size,
		UploadedAt: time.Now(),
	}, nil
}

func isValidImageFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	return false
}
