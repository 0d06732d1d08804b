package affinity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/justinegdelta/vecstream/types"
)

func TestNewHostIndex(t *testing.T) {
	t.Run("assigns dense indices in first-occurrence order", func(t *testing.T) {
		ix, err := NewHostIndex([]types.Endpoint{
			{Host: "h2", Port: 1},
			{Host: "h1", Port: 2},
			{Host: "h2", Port: 3},
			{Host: "h3", Port: 4},
		})

		require.NoError(t, err)
		require.Equal(t, 3, ix.NumHosts())
		require.Equal(t, 4, ix.NumEndpoints())

		b, ok := ix.Lookup("h2")
		require.True(t, ok)
		require.Equal(t, 0, b)
		require.Equal(t, "h2", ix.Name(0))

		b, ok = ix.Lookup("h1")
		require.True(t, ok)
		require.Equal(t, 1, b)

		b, ok = ix.Lookup("h3")
		require.True(t, ok)
		require.Equal(t, 2, b)
	})

	t.Run("groups endpoints by host in roster order", func(t *testing.T) {
		ix, err := NewHostIndex([]types.Endpoint{
			{Host: "h2", Port: 1},
			{Host: "h1", Port: 2},
			{Host: "h2", Port: 3},
		})

		require.NoError(t, err)
		require.Equal(t, []int{0, 2}, ix.Endpoints(0))
		require.Equal(t, []int{1}, ix.Endpoints(1))
	})

	t.Run("unknown host is not found", func(t *testing.T) {
		ix, err := NewHostIndex([]types.Endpoint{{Host: "h1", Port: 1}})
		require.NoError(t, err)

		_, ok := ix.Lookup("hX")
		require.False(t, ok)
	})

	t.Run("rejects an empty roster", func(t *testing.T) {
		_, err := NewHostIndex(nil)
		require.ErrorIs(t, err, types.ErrNoEndpoints)
	})

	t.Run("copies the roster", func(t *testing.T) {
		roster := []types.Endpoint{{Host: "h1", Port: 1}}
		ix, err := NewHostIndex(roster)
		require.NoError(t, err)

		roster[0].Host = "mutated"
		require.Equal(t, "h1", ix.Roster()[0].Host)
	})
}

func TestSplit(t *testing.T) {
	roster := []types.Endpoint{
		{Host: "h1", Port: 1},
		{Host: "h2", Port: 2},
	}

	t.Run("separates affinity and bare partitions", func(t *testing.T) {
		ix, err := NewHostIndex(roster)
		require.NoError(t, err)

		res := Split([][]string{
			{"h1"},
			{},
			{"h2", "h1"},
			{},
		}, ix)

		require.Equal(t, [][]int{{0}, {1, 0}}, res.Edges)
		require.Equal(t, []int{0, 2}, res.Orig)
		require.Equal(t, []int{1, 3}, res.Bare)
	})

	t.Run("strips hosts outside the roster", func(t *testing.T) {
		ix, err := NewHostIndex(roster)
		require.NoError(t, err)

		res := Split([][]string{{"hX", "h2", "hY"}}, ix)

		require.Equal(t, [][]int{{1}}, res.Edges)
		require.Equal(t, []int{0}, res.Orig)
		require.Empty(t, res.Bare)
	})

	t.Run("fully stripped partition stays affinity-bearing with empty edges", func(t *testing.T) {
		ix, err := NewHostIndex(roster)
		require.NoError(t, err)

		res := Split([][]string{{"hX"}}, ix)

		require.Equal(t, [][]int{nil}, res.Edges)
		require.Equal(t, []int{0}, res.Orig)
		require.Empty(t, res.Bare)
	})

	t.Run("drops duplicate preferred hosts", func(t *testing.T) {
		ix, err := NewHostIndex(roster)
		require.NoError(t, err)

		res := Split([][]string{{"h1", "h1", "h2", "h1"}}, ix)

		require.Equal(t, [][]int{{0, 1}}, res.Edges)
	})
}
