package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/ecycle/internal/metrics"
	"github.com/donaldgifford/ecycle/pkg/classify"
	domain "github.com/donaldgifford/ecycle/pkg/types"
)

const defaultMaxImageBytes = 10 << 20

// imageExtensions lists the formats pkg/classify registers decoders for.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// ClassifyHandler classifies uploaded device photos.
type ClassifyHandler struct {
	classifier classify.Classifier
	uploadDir  string
	maxBytes   int64
	log        *slog.Logger
}

// ClassifyOption configures a ClassifyHandler.
type ClassifyOption func(*ClassifyHandler)

// WithUploadDir stores accepted images under dir. Empty disables storage.
func WithUploadDir(dir string) ClassifyOption {
	return func(h *ClassifyHandler) {
		h.uploadDir = dir
	}
}

// WithMaxImageBytes caps the size of an uploaded image.
func WithMaxImageBytes(n int64) ClassifyOption {
	return func(h *ClassifyHandler) {
		if n > 0 {
			h.maxBytes = n
		}
	}
}

// WithClassifyLogger sets the handler logger.
func WithClassifyLogger(l *slog.Logger) ClassifyOption {
	return func(h *ClassifyHandler) {
		h.log = l
	}
}

// NewClassifyHandler creates a new ClassifyHandler.
func NewClassifyHandler(c classify.Classifier, opts ...ClassifyOption) *ClassifyHandler {
	h := &ClassifyHandler{
		classifier: c,
		maxBytes:   defaultMaxImageBytes,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ClassifyResponse is a classification with the stored image path, if any.
type ClassifyResponse struct {
	*domain.Classification
	ImagePath string `json:"image_path,omitempty"`
}

// Classify handles POST /api/v1/classify.
//
// @Summary Classify a device photo
// @Description Detects the device in an uploaded photo and returns its category with recycling guidance. Falls back to an offline heuristic when the inference service is unavailable.
// @Tags classify
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Device photo (jpg, png, gif)"
// @Success 200 {object} ClassifyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/classify [post]
func (h *ClassifyHandler) Classify(c echo.Context) error {
	req := c.Request()
	req.Body = http.MaxBytesReader(c.Response(), req.Body, h.maxBytes)

	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(uploadStatus(err), errorBody("image upload: "+err.Error()))
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !imageExtensions[ext] {
		return c.JSON(http.StatusBadRequest, errorBody(
			fmt.Sprintf("unsupported image type %q", ext),
		))
	}

	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("reading image: "+err.Error()))
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return c.JSON(uploadStatus(err), errorBody("reading image: "+err.Error()))
	}

	start := time.Now()
	cls, err := h.classifier.Classify(req.Context(), classify.Image{
		Filename: fh.Filename,
		Data:     data,
	})
	metrics.ClassificationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, domain.ErrNothingDetected) {
			return c.JSON(http.StatusUnprocessableEntity, errorBody("No e-waste detected"))
		}
		return c.JSON(statusFor(err), errorBody("classification failed: "+err.Error()))
	}

	metrics.ClassificationsTotal.WithLabelValues(cls.Source).Inc()
	if cls.FallbackReason != "" {
		metrics.ClassificationFallbacksTotal.WithLabelValues(cls.FallbackReason).Inc()
	}

	resp := ClassifyResponse{Classification: cls}
	if h.uploadDir != "" {
		path, err := h.store(ext, data)
		if err != nil {
			h.log.Warn("storing uploaded image failed", "error", err)
		} else {
			resp.ImagePath = path
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// store writes the image under a random name and returns its path.
func (h *ClassifyHandler) store(ext string, data []byte) (string, error) {
	if err := os.MkdirAll(h.uploadDir, 0o750); err != nil {
		return "", fmt.Errorf("creating upload dir: %w", err)
	}
	path := filepath.Join(h.uploadDir, uuid.NewString()+ext)
	if err := os.WriteFile(path, data, 0o640); err != nil {
		return "", fmt.Errorf("writing image: %w", err)
	}
	return path, nil
}

// uploadStatus maps multipart read errors to 413 when the body limit was hit.
func uploadStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}
