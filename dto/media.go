package dto

import "time"

type MediaUploadResponse struct {
	URL        string    `json:"url"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
}
