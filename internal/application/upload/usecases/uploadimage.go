package usecases

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"leafsmp/internal/shared/errors"
	"leafsmp/internal/shared/logger"
)

var imageExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// UploadImageCommand carries either a data URL (the chat widget's
// {imageData} body) or a raw image body with its content type.
type UploadImageCommand struct {
	DataURL     string
	Body        []byte
	ContentType string
}

type UploadImageResult struct {
	ImageURL string `json:"imageUrl"`
}

type UploadImageExecutor interface {
	Execute(ctx context.Context, cmd UploadImageCommand) (*UploadImageResult, error)
}

// UploadImageUseCase validates an image and hands back a placeholder URL.
// Nothing is written anywhere.
type UploadImageUseCase struct {
	maxBytes     int64
	publicPrefix string
	logger       logger.Interface
}

func NewUploadImageUseCase(maxBytes int64, publicPrefix string, logger logger.Interface) *UploadImageUseCase {
	return &UploadImageUseCase{
		maxBytes:     maxBytes,
		publicPrefix: strings.TrimSuffix(publicPrefix, "/"),
		logger:       logger,
	}
}

func (uc *UploadImageUseCase) Execute(ctx context.Context, cmd UploadImageCommand) (*UploadImageResult, error) {
	contentType, data, err := uc.decode(cmd)
	if err != nil {
		return nil, err
	}

	if int64(len(data)) > uc.maxBytes {
		return nil, errors.NewPayloadTooLargeError("Image is too large",
			fmt.Sprintf("image must be at most %d bytes", uc.maxBytes))
	}
	if len(data) == 0 {
		return nil, errors.NewValidationError("Validation failed", "image data is required")
	}

	// Trust the bytes over the declared type.
	sniffed := http.DetectContentType(data)
	ext, ok := imageExtensions[sniffed]
	if !ok {
		ext, ok = imageExtensions[contentType]
	}
	if !ok {
		return nil, errors.NewValidationError("Validation failed", "unsupported image type")
	}

	url := fmt.Sprintf("%s/%s.%s", uc.publicPrefix, uuid.NewString(), ext)
	uc.logger.Infow("image upload accepted", "bytes", len(data), "content_type", sniffed, "url", url)

	return &UploadImageResult{ImageURL: url}, nil
}

func (uc *UploadImageUseCase) decode(cmd UploadImageCommand) (string, []byte, error) {
	if cmd.DataURL == "" {
		return strings.ToLower(strings.TrimSpace(strings.Split(cmd.ContentType, ";")[0])), cmd.Body, nil
	}

	header, payload, found := strings.Cut(cmd.DataURL, ",")
	if !found || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return "", nil, errors.NewValidationError("Validation failed", "imageData must be a base64 data URL")
	}
	contentType := strings.ToLower(strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64"))
	if !strings.HasPrefix(contentType, "image/") {
		return "", nil, errors.NewValidationError("Validation failed", "imageData must be an image")
	}

	// Reject before decoding when the encoded form is already too big.
	if int64(base64.StdEncoding.DecodedLen(len(payload))) > uc.maxBytes+2 {
		return "", nil, errors.NewPayloadTooLargeError("Image is too large",
			fmt.Sprintf("image must be at most %d bytes", uc.maxBytes))
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, errors.NewValidationError("Validation failed", "imageData is not valid base64")
	}
	return contentType, data, nil
}
