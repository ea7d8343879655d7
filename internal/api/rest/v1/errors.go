package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"
)

const internalErrorMessage = "internal server error"

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, records.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, records.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, records.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an ErrorResponse. Causes of 5xx responses are
// logged and replaced by a generic message.
func respondError(ctx *gin.Context, log logger.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error(ctx.Request.Method, " ", ctx.Request.URL.Path, " failed: ", err)
		ctx.JSON(status, ErrorResponse{Error: internalErrorMessage})
		return
	}
	ctx.JSON(status, ErrorResponse{Error: err.Error()})
}

func respondBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}
