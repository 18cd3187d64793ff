package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/chat-api/internal/utils/platformerrors"
)

func TestAddSingle(t *testing.T) {
	ctx := context.Background()

	change, err := addSingle(ctx, 3)([]uint{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []uint{3}, change.Add)
	assert.Empty(t, change.Remove)

	_, err = addSingle(ctx, 2)([]uint{1, 2})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	assert.Contains(t, err.Error(), msgUserAlreadyMember)
}

func TestAddMany(t *testing.T) {
	tests := []struct {
		name     string
		members  []uint
		newUsers []uint
		wantAdd  []uint
	}{
		{name: "overlapping ids are added once", members: []uint{1, 2}, newUsers: []uint{2, 3}, wantAdd: []uint{3}},
		{name: "duplicates in request collapse", members: []uint{1}, newUsers: []uint{4, 4, 5}, wantAdd: []uint{4, 5}},
		{name: "all present is a no-op", members: []uint{1, 2}, newUsers: []uint{1, 2}, wantAdd: []uint{}},
		{name: "empty chat takes everyone", members: nil, newUsers: []uint{7}, wantAdd: []uint{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change, err := addMany(tt.newUsers)(tt.members)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.wantAdd, change.Add)
			assert.Empty(t, change.Remove, "union never drops existing members")
		})
	}
}

func TestRemoveSingle(t *testing.T) {
	ctx := context.Background()

	change, err := removeSingle(ctx, 2)([]uint{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []uint{2}, change.Remove)
	assert.Empty(t, change.Add)

	_, err = removeSingle(ctx, 9)([]uint{1, 2})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	assert.Contains(t, err.Error(), msgUserNotMember)
}

func TestRemoveMany(t *testing.T) {
	ctx := context.Background()

	change, err := removeMany(ctx, []uint{2, 3, 9})([]uint{1, 2, 3})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{2, 3}, change.Remove)
	assert.Empty(t, change.Add)

	_, err = removeMany(ctx, []uint{9, 9})([]uint{1, 2})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	assert.Contains(t, err.Error(), msgNoneAreMembers)
}

func TestReplaceWith(t *testing.T) {
	change := replaceWith([]uint{1, 2, 3}, []uint{2, 3, 4})
	assert.Equal(t, []uint{4}, change.Add)
	assert.Equal(t, []uint{1}, change.Remove)
	assert.False(t, change.IsEmpty())

	assert.True(t, replaceWith([]uint{1}, []uint{1}).IsEmpty())
}
