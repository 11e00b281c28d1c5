package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/exactcover/internal/domain"
)

func TestValidateCleanBoard(t *testing.T) {
	b, err := domain.ParseLine("530070000600195000098000060800060003400803001700020006060000280000419005000080079")
	require.NoError(t, err)

	ok, conflicts, err := New().Validate(t.Context(), b)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conflicts)
}

func TestValidateConflicts(t *testing.T) {
	cases := []struct {
		name string
		set  [][3]uint8 // r, c, v
	}{
		{"row", [][3]uint8{{0, 0, 5}, {0, 8, 5}}},
		{"column", [][3]uint8{{0, 3, 7}, {8, 3, 7}}},
		{"box", [][3]uint8{{0, 0, 2}, {2, 2, 2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var b domain.Board
			for _, s := range tc.set {
				b.Values[s[0]][s[1]] = s[2]
			}
			ok, conflicts, err := New().Validate(t.Context(), &b)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.NotEmpty(t, conflicts)
		})
	}
}

func TestValidateEmptyBoard(t *testing.T) {
	ok, conflicts, err := New().Validate(t.Context(), &domain.Board{})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conflicts)
}
