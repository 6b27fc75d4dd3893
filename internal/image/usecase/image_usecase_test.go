package usecase

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	imagedomain "seoprofil-backend/internal/image/domain"
	"seoprofil-backend/pkg/ai"
	"seoprofil-backend/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubImageRepo struct {
	images    map[string]*imagedomain.GeneratedImage
	nextID    int
	createErr error
}

func newStubImageRepo() *stubImageRepo {
	return &stubImageRepo{images: map[string]*imagedomain.GeneratedImage{}}
}

func (s *stubImageRepo) Create(image *imagedomain.GeneratedImage) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.nextID++
	image.ID = strings.Repeat("i", s.nextID)
	s.images[image.ID] = image
	return nil
}

func (s *stubImageRepo) FindByIDAndUser(id, userID string) (*imagedomain.GeneratedImage, error) {
	img, ok := s.images[id]
	if !ok || img.UserID != userID {
		return nil, nil
	}
	return img, nil
}

func (s *stubImageRepo) ListByUser(userID string, page, perPage int) ([]*imagedomain.GeneratedImage, int64, error) {
	var out []*imagedomain.GeneratedImage
	for _, img := range s.images {
		if img.UserID == userID {
			out = append(out, img)
		}
	}
	return out, int64(len(out)), nil
}

func (s *stubImageRepo) Delete(id string) error {
	delete(s.images, id)
	return nil
}

type stubImageService struct {
	data  *ai.ImageData
	err   error
	size  string
	calls int
}

func (s *stubImageService) GenerateImage(ctx context.Context, prompt, size, quality string) (*ai.ImageData, error) {
	s.calls++
	s.size = size
	return s.data, s.err
}

func newTestImageUsecase(t *testing.T, repo *stubImageRepo, svc *stubImageService) (ImageUsecase, string) {
	t.Helper()
	dir := t.TempDir()
	m := metrics.NewMetrics(prometheus.NewRegistry())
	return NewImageUsecase(repo, svc, m, zap.NewNop(), dir), dir
}

func TestBuildImagePrompt(t *testing.T) {
	prompt, size := BuildImagePrompt("Friseursalon in Berlin", imagedomain.TypeHeader)
	assert.Equal(t, "1536x1024", size)
	assert.Contains(t, prompt, "(16:9), web header format")
	assert.Contains(t, prompt, "Friseursalon in Berlin")
	assert.True(t, strings.HasPrefix(prompt, basePrompt))

	prompt, size = BuildImagePrompt("Teamfoto", imagedomain.TypeKachel)
	assert.Equal(t, "1024x1024", size)
	assert.Contains(t, prompt, "(4:3), editorial layout")
	assert.Contains(t, prompt, "Teamfoto")
}

func TestGenerateSavesBase64Image(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	repo := newStubImageRepo()
	svc := &stubImageService{data: &ai.ImageData{B64JSON: payload}}
	uc, dir := newTestImageUsecase(t, repo, svc)

	image, err := uc.Generate(context.Background(), "u1", "Friseursalon", imagedomain.TypeHeader)

	require.NoError(t, err)
	assert.Equal(t, "u1", image.UserID)
	assert.Equal(t, imagedomain.TypeHeader, image.ImageType)
	assert.Equal(t, "1536x1024", image.ImageSize)
	assert.True(t, strings.HasPrefix(image.ImageURL, "/static/uploads/header_"))
	assert.True(t, strings.HasSuffix(image.ImageURL, ".png"))

	saved, err := os.ReadFile(filepath.Join(dir, filepath.Base(image.ImageURL)))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), saved)
	assert.Equal(t, "1536x1024", svc.size)
}

func TestGenerateKeepsHostedURL(t *testing.T) {
	repo := newStubImageRepo()
	svc := &stubImageService{data: &ai.ImageData{URL: "https://cdn.example.com/img.png"}}
	uc, _ := newTestImageUsecase(t, repo, svc)

	image, err := uc.Generate(context.Background(), "u1", "Teamfoto", imagedomain.TypeKachel)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/img.png", image.ImageURL)
	assert.Equal(t, "1024x1024", image.ImageSize)
}

func TestGenerateRejectsInvalidType(t *testing.T) {
	uc, _ := newTestImageUsecase(t, newStubImageRepo(), &stubImageService{})

	_, err := uc.Generate(context.Background(), "u1", "Foto", "banner")
	assert.ErrorIs(t, err, ErrInvalidImageType)
}

func TestGenerateRejectsEmptyInput(t *testing.T) {
	svc := &stubImageService{}
	uc, _ := newTestImageUsecase(t, newStubImageRepo(), svc)

	_, err := uc.Generate(context.Background(), "u1", "   ", imagedomain.TypeHeader)
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Zero(t, svc.calls)
}

func TestGenerateDefaultsToHeaderType(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("x"))
	svc := &stubImageService{data: &ai.ImageData{B64JSON: payload}}
	uc, _ := newTestImageUsecase(t, newStubImageRepo(), svc)

	image, err := uc.Generate(context.Background(), "u1", "Foto", "")

	require.NoError(t, err)
	assert.Equal(t, imagedomain.TypeHeader, image.ImageType)
}

func TestGenerateNoUsableImageData(t *testing.T) {
	svc := &stubImageService{data: &ai.ImageData{}}
	uc, _ := newTestImageUsecase(t, newStubImageRepo(), svc)

	_, err := uc.Generate(context.Background(), "u1", "Foto", imagedomain.TypeHeader)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no usable image data")
}

func TestGenerateRemovesFileWhenPersistFails(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	repo := newStubImageRepo()
	repo.createErr = assert.AnError
	svc := &stubImageService{data: &ai.ImageData{B64JSON: payload}}
	uc, dir := newTestImageUsecase(t, repo, svc)

	_, err := uc.Generate(context.Background(), "u1", "Foto", imagedomain.TypeHeader)
	require.ErrorIs(t, err, assert.AnError)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestDeleteRemovesRecordAndFile(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	repo := newStubImageRepo()
	svc := &stubImageService{data: &ai.ImageData{B64JSON: payload}}
	uc, dir := newTestImageUsecase(t, repo, svc)

	image, err := uc.Generate(context.Background(), "u1", "Foto", imagedomain.TypeHeader)
	require.NoError(t, err)

	path := filepath.Join(dir, filepath.Base(image.ImageURL))
	_, err = os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, uc.Delete("u1", image.ID))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.Empty(t, repo.images)
}

func TestDeleteOtherUsersImageNotFound(t *testing.T) {
	repo := newStubImageRepo()
	repo.images["img1"] = &imagedomain.GeneratedImage{ID: "img1", UserID: "owner", ImageURL: "https://cdn.example.com/a.png"}
	uc, _ := newTestImageUsecase(t, repo, &stubImageService{})

	err := uc.Delete("intruder", "img1")
	assert.ErrorIs(t, err, ErrImageNotFound)
}
