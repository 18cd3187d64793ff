package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"jan-server/services/chat-api/internal/utils/platformerrors"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code      string `json:"code"`
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// DeleteCountResponse reports how many records a bulk delete removed.
type DeleteCountResponse struct {
	Count int64 `json:"count"`
}

// ChatMessagesDeletedResponse confirms that a chat was emptied.
type ChatMessagesDeletedResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

// HandleError logs err and renders it with the status of its error type.
// Errors that are not PlatformErrors are reported as 500 without detail.
func HandleError(reqCtx *gin.Context, log zerolog.Logger, err error) {
	_ = reqCtx.Error(err)

	var platformErr *platformerrors.PlatformError
	if !errors.As(err, &platformErr) {
		platformErr = platformerrors.AsError(reqCtx.Request.Context(), platformerrors.LayerRoute, err, "internal server error")
	}
	platformerrors.LogError(log, platformErr)

	statusCode := platformerrors.ErrorTypeToHTTPStatus(platformErr.Type)
	message := platformErr.Message
	if statusCode >= http.StatusInternalServerError {
		message = "internal server error"
	}

	reqCtx.AbortWithStatusJSON(statusCode, ErrorResponse{
		Code:      platformErr.Code,
		Error:     message,
		RequestID: platformErr.RequestID,
	})
}

// HandleNewError creates a typed error at the handler layer and renders it.
func HandleNewError(reqCtx *gin.Context, log zerolog.Logger, errorType platformerrors.ErrorType, message, code string) {
	HandleError(reqCtx, log, platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerHandler, errorType, message, nil, code))
}
