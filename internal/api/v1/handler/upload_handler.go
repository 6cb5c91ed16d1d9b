package handler

import (
	"context"
	"io"
	"net/http"

	"kizuna/internal/api/v1/dto"
	"kizuna/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const (
	maxUploadBytes = 10 << 20
	uploadFailed   = "Неуспешно качване"
)

// ImageUploader stores an uploaded image under a fresh object name.
type ImageUploader interface {
	Upload(ctx context.Context, bucket, filename, contentType string, body io.Reader) (*storage.Upload, error)
}

// PreviewSigner signs a single stored image for preview.
type PreviewSigner interface {
	Resolve(ctx context.Context, raw string) string
}

// UploadTargets names the buckets. Teacher photos live in a private bucket
// and are stored by object name; news images live in a public bucket and
// are stored by URL.
type UploadTargets struct {
	TeachersBucket string
	NewsBucket     string
	SupabaseURL    string
}

type UploadHandler struct {
	uploader ImageUploader
	previews PreviewSigner
	targets  UploadTargets
	logger   zerolog.Logger
}

func NewUploadHandler(uploader ImageUploader, previews PreviewSigner, targets UploadTargets, logger zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
		previews: previews,
		targets:  targets,
		logger:   logger.With().Str("handler", "upload").Logger(),
	}
}

// RegisterRoutes mounts upload routes
func (h *UploadHandler) RegisterRoutes(r chi.Router) {
	r.Post("/uploads/teachers", h.uploadTeacher)
	r.Post("/uploads/news", h.uploadNews)
}

// uploadTeacher godoc
// @Summary Upload a teacher photo
// @Description Stores the file under a fresh name and returns the object name with a signed preview URL.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image"
// @Success 201 {object} dto.UploadDTO
// @Failure 400 {object} dto.ErrorDTO
// @Failure 502 {object} dto.ErrorDTO
// @Router /admin/uploads/teachers [post]
func (h *UploadHandler) uploadTeacher(w http.ResponseWriter, r *http.Request) {
	up, ok := h.store(w, r, h.targets.TeachersBucket)
	if !ok {
		return
	}
	writeJSON(w, http.StatusCreated, dto.UploadDTO{
		Bucket:     up.Bucket,
		ObjectName: up.ObjectName,
		URL:        h.previews.Resolve(r.Context(), up.ObjectName),
	})
}

// uploadNews godoc
// @Summary Upload a news image
// @Description Stores the file under a fresh name and returns its public URL, which is what news rows store.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image"
// @Success 201 {object} dto.UploadDTO
// @Failure 400 {object} dto.ErrorDTO
// @Failure 502 {object} dto.ErrorDTO
// @Router /admin/uploads/news [post]
func (h *UploadHandler) uploadNews(w http.ResponseWriter, r *http.Request) {
	up, ok := h.store(w, r, h.targets.NewsBucket)
	if !ok {
		return
	}
	writeJSON(w, http.StatusCreated, dto.UploadDTO{
		Bucket:     up.Bucket,
		ObjectName: up.ObjectName,
		URL:        storage.PublicURL(h.targets.SupabaseURL, up.Bucket, up.ObjectName),
	})
}

func (h *UploadHandler) store(w http.ResponseWriter, r *http.Request, bucket string) (*storage.Upload, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, uploadFailed+": "+err.Error())
		return nil, false
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, uploadFailed+": "+err.Error())
		return nil, false
	}
	defer file.Close()

	up, err := h.uploader.Upload(r.Context(), bucket, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		h.logger.Error().Err(err).Str("bucket", bucket).Msg("upload failed")
		writeError(w, http.StatusBadGateway, uploadFailed+": "+err.Error())
		return nil, false
	}
	return up, true
}
