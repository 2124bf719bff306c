package upload

import (
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"leafsmp/internal/application/upload/usecases"
	"leafsmp/internal/shared/errors"
	"leafsmp/internal/shared/logger"
	"leafsmp/internal/shared/utils"
)

type UploadImageRequest struct {
	ImageData string `json:"imageData" validate:"required"`
}

type UploadHandler struct {
	uploadImageUC usecases.UploadImageExecutor
	maxBytes      int64
	logger        logger.Interface
}

func NewUploadHandler(uploadImageUC usecases.UploadImageExecutor, maxBytes int64, logger logger.Interface) *UploadHandler {
	return &UploadHandler{
		uploadImageUC: uploadImageUC,
		maxBytes:      maxBytes,
		logger:        logger,
	}
}

// UploadImage handles POST /api/upload-image. The body is either JSON
// {imageData: "data:image/png;base64,..."} or the raw image bytes.
// @Summary Upload a chat image
// @Tags chat
// @Accept json,png,jpeg,gif,webp
// @Produce json
// @Param request body UploadImageRequest false "Data URL form; raw image bytes are also accepted"
// @Success 200 {object} usecases.UploadImageResult
// @Failure 400 {object} utils.ErrorBody
// @Failure 413 {object} utils.ErrorBody
// @Router /api/upload-image [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	// base64 inflates by 4/3; leave room for the JSON wrapper too.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes*4/3+1024)

	var cmd usecases.UploadImageCommand
	if strings.HasPrefix(c.ContentType(), "application/json") {
		var req UploadImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, h.bodyError(err))
			return
		}
		if err := utils.ValidateStruct(&req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		cmd.DataURL = req.ImageData
	} else {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			utils.ErrorResponseWithError(c, h.bodyError(err))
			return
		}
		cmd.Body = body
		cmd.ContentType = c.ContentType()
	}

	result, err := h.uploadImageUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *UploadHandler) bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return errors.NewPayloadTooLargeError("Image is too large",
			fmt.Sprintf("image must be at most %d bytes", h.maxBytes))
	}
	h.logger.Warnw("invalid upload body", "error", err)
	return utils.TranslateBindError(err)
}
