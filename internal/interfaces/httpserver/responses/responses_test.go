package responses_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/chat-api/internal/interfaces/httpserver/responses"
	"jan-server/services/chat-api/internal/utils/platformerrors"
)

func serve(t *testing.T, handler gin.HandlerFunc) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	engine := gin.New()
	engine.GET("/", func(c *gin.Context) {
		c.Set("log", zerolog.New(&buf))
		handler(c)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), buf.String())
	return rec, line
}

func logger(c *gin.Context) zerolog.Logger {
	return c.MustGet("log").(zerolog.Logger)
}

func TestHandleNewError_TagsHandlerLayer(t *testing.T) {
	rec, line := serve(t, func(c *gin.Context) {
		responses.HandleNewError(c, logger(c), platformerrors.ErrorTypeNotFound, "Chat not found", "chat-get-invalid-id")
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "handler", line["layer"])
	assert.Equal(t, "chat-get-invalid-id", line["error_code"])

	var body responses.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Chat not found", body.Error)
}

func TestHandleError_KeepsOriginLayer(t *testing.T) {
	rec, line := serve(t, func(c *gin.Context) {
		err := platformerrors.Validation(c.Request.Context(), platformerrors.LayerDomain, "User already in the chat", "chat-add-user-already-member")
		responses.HandleError(c, logger(c), err)
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "domain", line["layer"])
}

func TestHandleError_HidesInternalDetail(t *testing.T) {
	rec, line := serve(t, func(c *gin.Context) {
		responses.HandleError(c, logger(c), errors.New("connection reset"))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "route", line["layer"])
	assert.Equal(t, "error", line["level"])

	var body responses.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body.Error)
}
