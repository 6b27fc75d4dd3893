package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	imagedomain "seoprofil-backend/internal/image/domain"
	"seoprofil-backend/internal/image/dto"
	"seoprofil-backend/internal/image/repository"
	"seoprofil-backend/pkg/ai"
	"seoprofil-backend/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidImageType = errors.New(`invalid image type, must be "header" or "kachel"`)
	ErrEmptyInput       = errors.New("user input is required")
	ErrImageNotFound    = errors.New("image not found")
)

type imageUsecase struct {
	repo         repository.ImageRepository
	imageService ai.ImageService
	metrics      *metrics.Metrics
	logger       *zap.Logger
	uploadDir    string
}

func NewImageUsecase(
	repo repository.ImageRepository,
	imageService ai.ImageService,
	m *metrics.Metrics,
	logger *zap.Logger,
	uploadDir string,
) ImageUsecase {
	return &imageUsecase{
		repo:         repo,
		imageService: imageService,
		metrics:      m,
		logger:       logger,
		uploadDir:    uploadDir,
	}
}

// Generate produces one image for the user's input and persists the record.
// Inline base64 payloads are written to the upload directory; hosted URLs
// are stored as-is.
func (u *imageUsecase) Generate(ctx context.Context, userID, userInput, imageType string) (*imagedomain.GeneratedImage, error) {
	userInput = strings.TrimSpace(userInput)
	if userInput == "" {
		return nil, ErrEmptyInput
	}
	if imageType == "" {
		imageType = imagedomain.TypeHeader
	}
	if !imagedomain.ValidType(imageType) {
		return nil, ErrInvalidImageType
	}

	prompt, size := BuildImagePrompt(userInput, imageType)

	data, err := u.imageService.GenerateImage(ctx, prompt, size, "high")
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}

	var imageURL string
	switch {
	case data.B64JSON != "":
		imageURL, err = u.saveBase64Image(data.B64JSON, imageType)
		if err != nil {
			return nil, fmt.Errorf("failed to save image: %w", err)
		}
	case data.URL != "":
		imageURL = data.URL
	default:
		return nil, errors.New("image generation failed: no usable image data returned")
	}

	image := &imagedomain.GeneratedImage{
		UserID:     userID,
		UserInput:  userInput,
		ImageType:  imageType,
		ImageURL:   imageURL,
		PromptUsed: prompt,
		ImageSize:  size,
	}

	if err := u.repo.Create(image); err != nil {
		u.removeLocalFile(imageURL)
		return nil, err
	}

	u.metrics.IncImagesGenerated(imageType)
	u.logger.Info("image generated",
		zap.String("user_id", userID),
		zap.String("type", imageType),
		zap.String("url", imageURL))
	return image, nil
}

func (u *imageUsecase) History(userID string, page, perPage int) (*dto.ImageListResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	images, total, err := u.repo.ListByUser(userID, page, perPage)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ImageResponse, 0, len(images))
	for _, img := range images {
		responses = append(responses, dto.ToImageResponse(img))
	}

	pages := int(total) / perPage
	if int(total)%perPage != 0 {
		pages++
	}

	return &dto.ImageListResponse{
		Images:      responses,
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
		PerPage:     perPage,
	}, nil
}

// Delete removes a user's own image record and, for locally stored files,
// the file itself. A missing file is not an error.
func (u *imageUsecase) Delete(userID, imageID string) error {
	image, err := u.repo.FindByIDAndUser(imageID, userID)
	if err != nil {
		return err
	}
	if image == nil {
		return ErrImageNotFound
	}

	if err := u.repo.Delete(imageID); err != nil {
		return err
	}

	u.removeLocalFile(image.ImageURL)
	return nil
}

// removeLocalFile deletes a locally stored image; hosted URLs and already
// missing files are ignored.
func (u *imageUsecase) removeLocalFile(imageURL string) {
	if !strings.HasPrefix(imageURL, "/static/uploads/") {
		return
	}
	path := filepath.Join(u.uploadDir, filepath.Base(imageURL))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		u.logger.Warn("failed to remove image file", zap.String("path", path), zap.Error(err))
	}
}

func (u *imageUsecase) saveBase64Image(b64 string, imageType string) (string, error) {
	if err := os.MkdirAll(u.uploadDir, 0o755); err != nil {
		return "", err
	}

	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s_%s.png", imageType, strings.ReplaceAll(uuid.New().String(), "-", ""))
	if err := os.WriteFile(filepath.Join(u.uploadDir, filename), raw, 0o644); err != nil {
		return "", err
	}

	return "/static/uploads/" + filename, nil
}
