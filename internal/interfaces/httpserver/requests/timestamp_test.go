package requests_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/chat-api/internal/interfaces/httpserver/requests"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{raw: "2024-01-01", want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{raw: "2024-01-01T10:30:00", want: time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)},
		{raw: "2024-01-01T10:30:00Z", want: time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)},
		{raw: "2024-01-01T10:30:00.250+02:00", want: time.Date(2024, 1, 1, 8, 30, 0, 250_000_000, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := requests.ParseTimestamp(tt.raw)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}

	_, err := requests.ParseTimestamp("01/02/2024")
	assert.Error(t, err)
}

func TestCreateUserRequest_Date(t *testing.T) {
	var withDate requests.CreateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"A","email":"a@x.com","date":"2024-01-01"}`), &withDate))
	require.NotNil(t, withDate.Date.Ptr())
	assert.Equal(t, 2024, withDate.Date.Year())

	var withoutDate requests.CreateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"A","email":"a@x.com","date":null}`), &withoutDate))
	assert.Nil(t, withoutDate.Date.Ptr())

	var bad requests.CreateUserRequest
	assert.Error(t, json.Unmarshal([]byte(`{"date":12}`), &bad))
}
