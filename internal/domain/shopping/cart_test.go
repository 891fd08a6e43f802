package shopping

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateAdd(t *testing.T) {
	t.Run("merges quantity for existing line", func(t *testing.T) {
		s := NewState()
		require.NoError(t, s.Add("1", 2))
		require.NoError(t, s.Add("1", 3))

		ln, ok := s.Get("1")
		require.True(t, ok)
		assert.Equal(t, 5, ln.Quantity)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		s := NewState()
		assert.ErrorIs(t, s.Add("1", 0), ErrInvalidQuantity)
		assert.ErrorIs(t, s.Add("1", -2), ErrInvalidQuantity)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		s := NewState()
		require.NoError(t, s.Add("b", 1))
		require.NoError(t, s.Add("a", 1))
		require.NoError(t, s.Add("c", 1))

		lines := s.Lines()
		require.Len(t, lines, 3)
		assert.Equal(t, "b", lines[0].ProductID)
		assert.Equal(t, "a", lines[1].ProductID)
		assert.Equal(t, "c", lines[2].ProductID)
	})
}

func TestStateRemove(t *testing.T) {
	s := NewState()
	require.NoError(t, s.Add("1", 1))
	require.NoError(t, s.Add("2", 1))

	assert.True(t, s.Remove("1"))
	assert.Equal(t, 1, s.Len())

	// absent id is a no-op, not an error
	assert.False(t, s.Remove("missing"))

	// index stays consistent after middle removal
	ln, ok := s.Get("2")
	require.True(t, ok)
	assert.Equal(t, 1, ln.Quantity)
}

func TestStateChangeQuantity(t *testing.T) {
	t.Run("increase and decrease in place", func(t *testing.T) {
		s := NewState()
		require.NoError(t, s.Add("1", 2))

		assert.True(t, s.ChangeQuantity("1", 1))
		ln, _ := s.Get("1")
		assert.Equal(t, 3, ln.Quantity)

		assert.True(t, s.ChangeQuantity("1", -1))
		ln, _ = s.Get("1")
		assert.Equal(t, 2, ln.Quantity)
	})

	t.Run("decrease on quantity 1 removes the line", func(t *testing.T) {
		s := NewState()
		require.NoError(t, s.Add("1", 1))

		assert.True(t, s.ChangeQuantity("1", -1))
		_, ok := s.Get("1")
		assert.False(t, ok)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		s := NewState()
		assert.False(t, s.ChangeQuantity("missing", 1))
	})
}

func TestStateInvariants(t *testing.T) {
	// for any sequence of mutations, every line has quantity >= 1 and ids
	// stay unique
	s := NewState()
	require.NoError(t, s.Add("1", 2))
	require.NoError(t, s.Add("2", 1))
	require.NoError(t, s.Add("1", 1))
	s.ChangeQuantity("2", -1)
	s.ChangeQuantity("1", -1)
	s.ChangeQuantity("1", -1)
	require.NoError(t, s.Add("3", 4))
	s.Remove("3")
	require.NoError(t, s.Add("3", 1))

	seen := map[string]bool{}
	for _, ln := range s.Lines() {
		assert.GreaterOrEqual(t, ln.Quantity, 1)
		assert.False(t, seen[ln.ProductID], "duplicate line for %s", ln.ProductID)
		seen[ln.ProductID] = true
	}
}

func TestStateTotalItemCount(t *testing.T) {
	s := NewState()
	assert.Equal(t, 0, s.TotalItemCount())

	require.NoError(t, s.Add("1", 2))
	require.NoError(t, s.Add("2", 3))
	assert.Equal(t, 5, s.TotalItemCount())
}

func TestStateJSONRoundTrip(t *testing.T) {
	s := NewState()
	require.NoError(t, s.Add("1", 2))
	require.NoError(t, s.Add("2", 1))

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"productId":"1","cantidad":2},{"productId":"2","cantidad":1}]`, string(data))

	restored := NewState()
	require.NoError(t, json.Unmarshal(data, restored))
	assert.Equal(t, s.Lines(), restored.Lines())
	assert.Equal(t, s.TotalItemCount(), restored.TotalItemCount())
}

func TestStateUnmarshalRejectsInvalidLines(t *testing.T) {
	cases := []struct {
		name string
		blob string
	}{
		{"not json", `{{{`},
		{"wrong shape", `{"productId":"1"}`},
		{"zero quantity", `[{"productId":"1","cantidad":0}]`},
		{"negative quantity", `[{"productId":"1","cantidad":-3}]`},
		{"empty product id", `[{"productId":"","cantidad":1}]`},
		{"duplicate product id", `[{"productId":"1","cantidad":1},{"productId":"1","cantidad":2}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState()
			err := json.Unmarshal([]byte(tc.blob), s)
			assert.Error(t, err)
		})
	}
}

func TestStateClone(t *testing.T) {
	s := NewState()
	require.NoError(t, s.Add("1", 2))

	clone := s.Clone()
	require.NoError(t, clone.Add("2", 1))
	clone.ChangeQuantity("1", 1)

	// original unaffected
	ln, _ := s.Get("1")
	assert.Equal(t, 2, ln.Quantity)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, clone.Len())
}
