package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssignment_Fingerprint(t *testing.T) {
	plan := func() *Assignment {
		return &Assignment{
			Endpoints:  []Endpoint{{Host: "h1", Port: 100}, {Host: "h2", Port: 101}},
			Partitions: [][]int{{0, 2}, {1}},
		}
	}

	t.Run("is stable across calls", func(t *testing.T) {
		a := plan()
		require.Equal(t, a.Fingerprint(), a.Fingerprint())
	})

	t.Run("equal plans share a fingerprint", func(t *testing.T) {
		require.Equal(t, plan().Fingerprint(), plan().Fingerprint())
	})

	t.Run("partition order changes the fingerprint", func(t *testing.T) {
		a := plan()
		b := plan()
		b.Partitions[0] = []int{2, 0}
		require.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	})

	t.Run("endpoint identity changes the fingerprint", func(t *testing.T) {
		a := plan()
		b := plan()
		b.Endpoints[1].Port = 999
		require.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	})

	t.Run("moving a partition between endpoints changes the fingerprint", func(t *testing.T) {
		a := plan()
		b := plan()
		b.Partitions = [][]int{{0}, {2, 1}}
		require.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	})
}

func TestAssignment_Clone(t *testing.T) {
	t.Run("copy shares no mutable state", func(t *testing.T) {
		a := &Assignment{
			Endpoints:  []Endpoint{{Host: "h1", Port: 100}},
			Partitions: [][]int{{0, 1, 2}},
		}

		b := a.Clone()
		require.Equal(t, a, b)

		b.Partitions[0][0] = 99
		b.Endpoints[0].Host = "other"
		require.Equal(t, 0, a.Partitions[0][0])
		require.Equal(t, "h1", a.Endpoints[0].Host)
	})

	t.Run("handles empty plans", func(t *testing.T) {
		a := &Assignment{}
		b := a.Clone()
		require.Equal(t, 0, b.NumPartitions())
	})
}

func TestAssignment_NumPartitions(t *testing.T) {
	a := &Assignment{
		Endpoints:  []Endpoint{{Host: "h1", Port: 1}, {Host: "h1", Port: 2}},
		Partitions: [][]int{{0, 1}, {2}},
	}
	require.Equal(t, 3, a.NumPartitions())
}
