package distribute

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/justinegdelta/vecstream/types"
)

func TestExpand(t *testing.T) {
	t.Run("single endpoint per host receives the whole set", func(t *testing.T) {
		out, err := Expand(context.Background(),
			[][]int{{0, 1}, {2}}, // host 0: locals 0,1; host 1: local 2
			[][]int{{0}, {1}},
			[]int{0, 1, 2},
			2,
		)

		require.NoError(t, err)
		require.Equal(t, [][]int{{0, 1}, {2}}, out)
	})

	t.Run("splits within a host with at most one extra on earlier endpoints", func(t *testing.T) {
		// 5 partitions over 2 endpoints on the same host: 3 then 2.
		out, err := Expand(context.Background(),
			[][]int{{0, 1, 2, 3, 4}},
			[][]int{{0, 1}},
			[]int{10, 11, 12, 13, 14},
			2,
		)

		require.NoError(t, err)
		require.Equal(t, [][]int{{10, 11, 12}, {13, 14}}, out)
	})

	t.Run("translates local indices to original partition indices", func(t *testing.T) {
		out, err := Expand(context.Background(),
			[][]int{{1}, {0}},
			[][]int{{0}, {1}},
			[]int{7, 3},
			2,
		)

		require.NoError(t, err)
		require.Equal(t, [][]int{{3}, {7}}, out)
	})

	t.Run("hosts with no partitions leave their endpoints empty", func(t *testing.T) {
		out, err := Expand(context.Background(),
			[][]int{nil, {0}},
			[][]int{{0, 2}, {1}},
			[]int{5},
			3,
		)

		require.NoError(t, err)
		require.Equal(t, [][]int{nil, {5}, nil}, out)
	})

	t.Run("canceled context aborts between hosts", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Expand(ctx, [][]int{{0}}, [][]int{{0}}, []int{0}, 1)
		require.ErrorIs(t, err, types.ErrCanceled)
	})
}

func TestResidual(t *testing.T) {
	t.Run("levels endpoints up to the maximum first", func(t *testing.T) {
		out := Residual([][]int{{0, 1, 2}, {3}, nil}, []int{4, 5, 6})

		require.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}, {6}}, out)
	})

	t.Run("round-robins the remainder from endpoint zero", func(t *testing.T) {
		out := Residual([][]int{{0}, {1}}, []int{2, 3, 4})

		require.Equal(t, [][]int{{0, 2, 4}, {1, 3}}, out)
	})

	t.Run("pure round-robin when all lists are empty", func(t *testing.T) {
		out := Residual(make([][]int, 2), []int{0, 1, 2})

		require.Equal(t, [][]int{{0, 2}, {1}}, out)
	})

	t.Run("no bare partitions is a no-op", func(t *testing.T) {
		out := Residual([][]int{{0}, nil}, nil)

		require.Equal(t, [][]int{{0}, nil}, out)
	})

	t.Run("grows the maximum size by at most one", func(t *testing.T) {
		out := Residual([][]int{{0, 1}, nil, {2}}, []int{3, 4, 5, 6, 7})

		maxSize := 0
		for _, parts := range out {
			if len(parts) > maxSize {
				maxSize = len(parts)
			}
		}
		require.LessOrEqual(t, maxSize, 3)

		total := 0
		for _, parts := range out {
			total += len(parts)
		}
		require.Equal(t, 8, total)
	})
}
