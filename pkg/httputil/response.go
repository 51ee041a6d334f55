package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/doacao-api/internal/model"
	"github.com/jwalitptl/doacao-api/pkg/errors"
)

const msgInternal = "Erro interno do servidor"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse acknowledges an update or delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondWithSuccess sends data as the bare body.
func RespondWithSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

func RespondWithMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// RespondWithError maps err to a status and an {"error"} body. Internal
// failures are logged with their cause; the client only sees the message.
func RespondWithError(c *gin.Context, err error) {
	appErr, ok := errors.As(err)
	if !ok {
		appErr = errors.Internal(msgInternal, err)
	}

	status := appErr.StatusCode()
	if status >= http.StatusInternalServerError {
		log.Error().Err(appErr.Err).
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg(appErr.Message)
	}

	c.AbortWithStatusJSON(status, ErrorResponse{Error: appErr.Message})
}

// RespondWithErrorMessage sends a fixed message without an underlying cause.
func RespondWithErrorMessage(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}

// ParamID reads a positive integer path parameter. ok is false for anything
// else, which callers answer with their not-found message.
func ParamID(c *gin.Context, name string) (int64, bool) {
	return model.ParseID(c.Param(name))
}
