package platformerrors_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"jan-server/services/chat-api/internal/utils/platformerrors"
)

func TestErrorTypeToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, platformerrors.ErrorTypeToHTTPStatus(platformerrors.ErrorTypeNotFound))
	assert.Equal(t, http.StatusBadRequest, platformerrors.ErrorTypeToHTTPStatus(platformerrors.ErrorTypeValidation))
	assert.Equal(t, http.StatusBadRequest, platformerrors.ErrorTypeToHTTPStatus(platformerrors.ErrorTypeDatabaseError))
	assert.Equal(t, http.StatusInternalServerError, platformerrors.ErrorTypeToHTTPStatus(platformerrors.ErrorTypeInternal))
}

func TestNewErrorCarriesRequestID(t *testing.T) {
	ctx := platformerrors.WithRequestID(context.Background(), "req-1")
	err := platformerrors.NotFound(ctx, platformerrors.LayerRepository, "User not found", "user-not-found")

	assert.Equal(t, "req-1", err.RequestID)
	assert.Equal(t, "user-not-found", err.Code)
	assert.Contains(t, err.Error(), "User not found")
}

func TestIsErrorTypeUnwraps(t *testing.T) {
	base := platformerrors.Validation(context.Background(), platformerrors.LayerDomain, "bad", "")
	wrapped := fmt.Errorf("outer: %w", base)

	assert.True(t, platformerrors.IsErrorType(wrapped, platformerrors.ErrorTypeValidation))
	assert.False(t, platformerrors.IsErrorType(wrapped, platformerrors.ErrorTypeNotFound))
	assert.False(t, platformerrors.IsErrorType(errors.New("plain"), platformerrors.ErrorTypeValidation))
	assert.Equal(t, "unclassified", base.Code)
}

func TestAsErrorKeepsType(t *testing.T) {
	ctx := context.Background()
	nf := platformerrors.NotFound(ctx, platformerrors.LayerRepository, "missing", "x")

	assert.Same(t, nf, platformerrors.AsError(ctx, platformerrors.LayerRoute, nf, "ignored"))

	wrapped := platformerrors.AsError(ctx, platformerrors.LayerRoute, errors.New("boom"), "internal")
	assert.Equal(t, platformerrors.ErrorTypeInternal, wrapped.Type)
	assert.Nil(t, platformerrors.AsError(ctx, platformerrors.LayerRoute, nil, ""))
}
