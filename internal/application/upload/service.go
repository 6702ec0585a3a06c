// Package upload normalizes admin image uploads before they are stored.
// Every accepted image is re-encoded at a capped size and paired with a
// small JPEG preview variant.
package upload

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"math/rand/v2"
	"path"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	_ "golang.org/x/image/webp"

	"github.com/baerenfell/backend/internal/domain/shared"
)

// Kind selects the target folder for an upload.
type Kind string

const (
	KindProducts Kind = "products"
	KindArtists  Kind = "artists"
)

// IsValid checks if the kind is a known upload target.
func (k Kind) IsValid() bool {
	return k == KindProducts || k == KindArtists
}

const (
	maxOriginalSize = 1200
	maxPreviewSize  = 400
	originalQuality = 85
	previewQuality  = 80
)

// Shared error instances
var (
	ErrUnsupportedType = shared.NewDomainError("UNSUPPORTED_MEDIA_TYPE", "Only JPEG, PNG, GIF and WebP images are allowed")
	ErrEmptyUpload     = shared.NewDomainError("EMPTY_UPLOAD", "No file uploaded")
)

// ImageStorage stores normalized images addressed by a relative key such as
// "products/image-1712345-123456789.jpg".
type ImageStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	PublicURL(key string) string
}

// Result describes a stored upload and its preview variant.
type Result struct {
	Filename    string `json:"filename"`
	Path        string `json:"path"`
	PreviewPath string `json:"previewPath"`
	URL         string `json:"url"`
	PreviewURL  string `json:"previewUrl"`
}

// Service normalizes and stores image uploads.
type Service struct {
	storage ImageStorage
	logger  *zap.Logger
}

// NewService creates a new upload service.
func NewService(storage ImageStorage, logger *zap.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Store validates, normalizes and stores an uploaded image. The original is
// resized to fit 1200x1200 (never enlarged) and re-encoded; the preview fits
// 400x400 and is always JPEG. Any mid-pipeline failure removes everything
// written so far.
func (s *Service) Store(ctx context.Context, kind Kind, contentType string, data []byte) (*Result, error) {
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_UPLOAD_KIND", fmt.Sprintf("Unknown upload kind: %s", kind))
	}
	if len(data) == 0 {
		return nil, ErrEmptyUpload
	}

	format, ok := normalizeContentType(contentType)
	if !ok {
		return nil, ErrUnsupportedType
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, shared.NewDomainError("INVALID_IMAGE", "Uploaded file is not a valid image")
	}

	// WebP and GIF are re-encoded as JPEG: the normalized catalog serves
	// only JPEG and PNG.
	outFormat := format
	if outFormat != imaging.PNG {
		outFormat = imaging.JPEG
	}

	base := newFilename()
	ext := extensionFor(outFormat)
	filename := base + ext
	previewFilename := base + "-preview" + ext

	originalKey := path.Join(string(kind), filename)
	previewKey := path.Join(string(kind), previewFilename)

	original, err := encode(fitDown(img, maxOriginalSize), outFormat, originalQuality)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	if err := s.storage.Put(ctx, originalKey, original, contentTypeFor(outFormat)); err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	preview, err := encode(fitDown(img, maxPreviewSize), imaging.JPEG, previewQuality)
	if err != nil {
		s.cleanup(ctx, originalKey)
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}
	if err := s.storage.Put(ctx, previewKey, preview, "image/jpeg"); err != nil {
		s.cleanup(ctx, originalKey)
		return nil, fmt.Errorf("failed to store preview: %w", err)
	}

	s.logger.Info("image upload stored",
		zap.String("kind", string(kind)),
		zap.String("filename", filename),
		zap.Int("original_bytes", len(original)),
		zap.Int("preview_bytes", len(preview)),
	)

	return &Result{
		Filename:    filename,
		Path:        s.storage.PublicURL(originalKey),
		PreviewPath: s.storage.PublicURL(previewKey),
		URL:         s.storage.PublicURL(originalKey),
		PreviewURL:  s.storage.PublicURL(previewKey),
	}, nil
}

// Delete removes a stored image by its key relative to the upload root,
// e.g. "products/image-1712345-123456789.jpg".
func (s *Service) Delete(ctx context.Context, key string) error {
	cleaned := path.Clean(key)
	if cleaned == "" || cleaned == "." || strings.HasPrefix(cleaned, "..") || strings.HasPrefix(cleaned, "/") {
		return shared.NewDomainError("INVALID_FILENAME", fmt.Sprintf("Invalid filename: %s", key))
	}

	exists, err := s.storage.Exists(ctx, cleaned)
	if err != nil {
		return fmt.Errorf("failed to check image existence: %w", err)
	}
	if !exists {
		return shared.ErrNotFound
	}
	if err := s.storage.Delete(ctx, cleaned); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	s.logger.Info("image deleted", zap.String("key", cleaned))
	return nil
}

func (s *Service) cleanup(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if err := s.storage.Delete(ctx, key); err != nil {
			s.logger.Warn("failed to clean up partial upload",
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}
}

func normalizeContentType(contentType string) (imaging.Format, bool) {
	mediaType := contentType
	if idx := strings.Index(mediaType, ";"); idx >= 0 {
		mediaType = mediaType[:idx]
	}
	switch strings.ToLower(strings.TrimSpace(mediaType)) {
	case "image/jpeg", "image/jpg":
		return imaging.JPEG, true
	case "image/png":
		return imaging.PNG, true
	case "image/gif":
		return imaging.GIF, true
	case "image/webp":
		// Decoded via x/image/webp, re-encoded on output.
		return imaging.JPEG, true
	default:
		return imaging.JPEG, false
	}
}

// fitDown scales the image down to fit a max x max bounding box.
// Images already inside the box are returned untouched.
func fitDown(img image.Image, max int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= max && bounds.Dy() <= max {
		return img
	}
	return imaging.Fit(img, max, max, imaging.Lanczos)
}

func encode(img image.Image, format imaging.Format, quality int) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case imaging.PNG:
		err = imaging.Encode(&buf, img, imaging.PNG)
	default:
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality))
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func extensionFor(format imaging.Format) string {
	if format == imaging.PNG {
		return ".png"
	}
	return ".jpg"
}

func contentTypeFor(format imaging.Format) string {
	if format == imaging.PNG {
		return "image/png"
	}
	return "image/jpeg"
}

// newFilename generates a collision-resistant name in the same shape the
// storefront has always used: image-<ms timestamp>-<random digits>.
func newFilename() string {
	return fmt.Sprintf("image-%d-%09d", time.Now().UnixMilli(), rand.IntN(1_000_000_000))
}
