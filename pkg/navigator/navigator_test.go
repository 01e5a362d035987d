package navigator

import (
	"testing"

	"github.com/aretw0/proofview/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsEmpty(t *testing.T) {
	_, err := New(0)
	assert.ErrorIs(t, err, domain.ErrEmptyTrace)

	_, err = New(-3)
	assert.ErrorIs(t, err, domain.ErrEmptyTrace)
}

func TestNext_ClampsAtLast(t *testing.T) {
	n, err := New(5)
	require.NoError(t, err)

	for i := 0; i < 12; i++ {
		n.Next()
		assert.LessOrEqual(t, n.Current(), 4)
	}
	assert.Equal(t, 4, n.Current())
	assert.True(t, n.AtEnd())
	assert.False(t, n.Next(), "Next at the last index should be a no-op")
	assert.Equal(t, 4, n.Current())
}

func TestPrevious_ClampsAtZero(t *testing.T) {
	n, err := New(3)
	require.NoError(t, err)
	n.Last()

	for i := 0; i < 10; i++ {
		n.Previous()
		assert.GreaterOrEqual(t, n.Current(), 0)
	}
	assert.Equal(t, 0, n.Current())
	assert.True(t, n.AtStart())
	assert.False(t, n.Previous())
}

func TestInverseLaws(t *testing.T) {
	n, err := New(6)
	require.NoError(t, err)

	for start := 1; start < 5; start++ {
		n.Seek(start)

		require.True(t, n.Previous())
		require.True(t, n.Next())
		assert.Equal(t, start, n.Current(), "previous then next from %d", start)

		require.True(t, n.Next())
		require.True(t, n.Previous())
		assert.Equal(t, start, n.Current(), "next then previous from %d", start)
	}

	// At the boundaries the matching operation is a no-op.
	n.First()
	n.Previous()
	n.Next()
	assert.Equal(t, 1, n.Current())

	n.Last()
	n.Next()
	n.Previous()
	assert.Equal(t, 4, n.Current())
}

func TestSingleState(t *testing.T) {
	n, err := New(1)
	require.NoError(t, err)

	assert.False(t, n.Next())
	assert.False(t, n.Previous())
	assert.True(t, n.AtStart())
	assert.True(t, n.AtEnd())
	assert.Equal(t, 0, n.Current())
}

func TestSeek_Clamps(t *testing.T) {
	tests := []struct {
		name string
		to   int
		want int
	}{
		{"Negative", -7, 0},
		{"Interior", 2, 2},
		{"Past End", 40, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := New(4)
			require.NoError(t, err)
			n.Seek(tt.to)
			assert.Equal(t, tt.want, n.Current())
		})
	}
}
