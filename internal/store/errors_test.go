package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrorHierarchy(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ErrUserNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrBookNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrEmailExists, ErrDuplicate)

	assert.True(t, IsNotFoundError(ErrBookNotFound))
	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.False(t, IsNotFoundError(ErrEmailExists))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := NewStoreError("book", "create", "insert failed", cause)

	assert.Contains(t, err.Error(), "create operation on book failed")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestListFilterOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter ListFilter
		want   int
	}{
		{"first page", ListFilter{Page: 1, Limit: 5}, 0},
		{"second page", ListFilter{Page: 2, Limit: 3}, 3},
		{"zero page treated as first", ListFilter{Page: 0, Limit: 5}, 0},
		{"negative page treated as first", ListFilter{Page: -2, Limit: 5}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Offset())
		})
	}
}
