package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leafsmp/internal/shared/errors"
)

// ErrorBody is the JSON shape of every failed request.
type ErrorBody struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// SuccessResponse writes data as the bare response body.
func SuccessResponse(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

func OKResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func CreatedResponse(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// ErrorResponse sends an error body with an explicit status and message.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{
		Type:    "error",
		Message: message,
	})
}

// ErrorResponseWithError maps err onto the error taxonomy. Errors that are not
// AppErrors become a generic 500 so internals never leak.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		message := appErr.Message
		if appErr.Type == errors.ErrorTypeValidation && appErr.Details != "" {
			message = appErr.Details
		}
		c.JSON(appErr.Code, ErrorBody{
			Type:    string(appErr.Type),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorBody{
		Type:    string(errors.ErrorTypeInternal),
		Message: "Internal server error occurred",
	})
}

// AbortWithError writes the mapped error body and stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	ErrorResponseWithError(c, err)
	c.Abort()
}

func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
