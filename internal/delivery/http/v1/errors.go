package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kohakudev/minutes-api/internal/apperr"
	"github.com/kohakudev/minutes-api/internal/services"
)

const (
	detailInvalidRequestBody = "invalid request body"
	detailInternalError      = "an unexpected error occurred"
)

// statusByKind is the single place error kinds turn into HTTP statuses.
var statusByKind = map[apperr.Kind]int{
	apperr.KindValidation: http.StatusUnprocessableEntity,
	apperr.KindNotFound:   http.StatusNotFound,
	apperr.KindConflict:   http.StatusConflict,
	apperr.KindInternal:   http.StatusInternalServerError,
}

func abort(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}

// abortWithError translates an error into an HTTP response. Tagged apperr
// errors and the service not-found sentinels keep their messages; anything
// else is a storage or internal failure and surfaces as a generic 500.
func (h *handlerImpl) abortWithError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		status, ok := statusByKind[appErr.Kind]
		if !ok {
			status = http.StatusInternalServerError
		}
		abort(c, status, appErr.Message)
		return
	}

	if errors.Is(err, services.ErrMeetingNotFound) {
		abort(c, http.StatusNotFound, err.Error())
		return
	}
	if errors.Is(err, services.ErrTaskNotFound) {
		abort(c, http.StatusNotFound, err.Error())
		return
	}

	h.logger.Error().
		Err(err).
		Str("path", c.FullPath()).
		Msg("unexpected error")
	abort(c, http.StatusInternalServerError, detailInternalError)
}
