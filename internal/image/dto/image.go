package dto

import imagedomain "seoprofil-backend/internal/image/domain"

type GenerateRequest struct {
	UserInput string `json:"user_input" binding:"required"`
	ImageType string `json:"image_type"`
}

type GenerateResponse struct {
	Success bool           `json:"success"`
	Image   *ImageResponse `json:"image"`
}

type ImageResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	UserInput  string `json:"user_input"`
	ImageType  string `json:"image_type"`
	ImageURL   string `json:"image_url"`
	PromptUsed string `json:"prompt_used"`
	ImageSize  string `json:"image_size"`
	CreatedAt  string `json:"created_at"`
}

type ImageListResponse struct {
	Images      []*ImageResponse `json:"images"`
	Total       int64            `json:"total"`
	Pages       int              `json:"pages"`
	CurrentPage int              `json:"current_page"`
	PerPage     int              `json:"per_page"`
}

func ToImageResponse(img *imagedomain.GeneratedImage) *ImageResponse {
	return &ImageResponse{
		ID:         img.ID,
		UserID:     img.UserID,
		UserInput:  img.UserInput,
		ImageType:  img.ImageType,
		ImageURL:   img.ImageURL,
		PromptUsed: img.PromptUsed,
		ImageSize:  img.ImageSize,
		CreatedAt:  img.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
