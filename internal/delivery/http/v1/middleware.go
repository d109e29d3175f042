package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDCtxKey = "request_id"
)

// HandleRequestIDMiddleware tags every request with an ID, generating one
// when the client did not supply it, and echoes it back in the response.
func (h *handlerImpl) HandleRequestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestUUID, err := uuid.NewV7()
		if err != nil {
			requestUUID = uuid.New()
		}
		requestID = requestUUID.String()
	}

	c.Set(requestIDCtxKey, requestID)
	c.Writer.Header().Set(requestIDHeader, requestID)

	h.logger.Debug().
		Str("request_id", requestID).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("handling request")
	c.Next()
}
