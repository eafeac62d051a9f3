package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterestsList_Value(t *testing.T) {
	t.Run("with interests", func(t *testing.T) {
		interests := InterestsList{"technology", "health"}
		val, err := interests.Value()
		require.NoError(t, err)
		assert.JSONEq(t, `["technology","health"]`, string(val.([]byte)))
	})

	t.Run("empty", func(t *testing.T) {
		interests := InterestsList{}
		val, err := interests.Value()
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(val.([]byte)))
	})

	t.Run("nil stored as empty array", func(t *testing.T) {
		var interests InterestsList
		val, err := interests.Value()
		require.NoError(t, err)
		assert.Equal(t, "[]", val)
	})
}

func TestInterestsList_Scan(t *testing.T) {
	t.Run("bytes", func(t *testing.T) {
		var interests InterestsList
		require.NoError(t, interests.Scan([]byte(`["ai","productivity"]`)))
		assert.Equal(t, InterestsList{"ai", "productivity"}, interests)
	})

	t.Run("string", func(t *testing.T) {
		var interests InterestsList
		require.NoError(t, interests.Scan(`["news"]`))
		assert.Equal(t, InterestsList{"news"}, interests)
	})

	t.Run("nil keeps empty", func(t *testing.T) {
		var interests InterestsList
		require.NoError(t, interests.Scan(nil))
		assert.Empty(t, interests)
	})

	t.Run("unsupported type resets to empty", func(t *testing.T) {
		interests := InterestsList{"stale"}
		require.NoError(t, interests.Scan(42))
		assert.Empty(t, interests)
	})
}
