package types

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Assignment is the immutable result of one assignment run.
//
// Partitions[i] holds the original partition indices assigned to Endpoints[i],
// in a stable order. Downstream consumers (the column buffer layer) rely on
// that per-endpoint order being reproducible across runs.
//
// An Assignment must not be mutated after it is returned; use Clone when a
// caller needs a private copy it can modify.
type Assignment struct {
	// Endpoints is the roster the plan was computed for, in input order.
	Endpoints []Endpoint `json:"endpoints"`

	// Partitions maps each endpoint index to its assigned partition indices.
	Partitions [][]int `json:"partitions"`
}

// NumPartitions returns the total number of partitions placed in the plan.
func (a *Assignment) NumPartitions() int {
	total := 0
	for _, parts := range a.Partitions {
		total += len(parts)
	}

	return total
}

// Fingerprint returns a stable 64-bit hash of the plan.
//
// Two plans have equal fingerprints iff they place the same partitions on the
// same endpoints in the same order, which makes the fingerprint a cheap way
// to assert plan reproducibility across runs or processes.
//
// The hash folds each component into the running value with xxh3, using the
// previous hash as the seed, so no intermediate encoding buffer is built.
//
// Returns:
//   - uint64: Canonical plan hash
func (a *Assignment) Fingerprint() uint64 {
	h := xxh3.Hash(nil)

	var ib [8]byte
	for i, ep := range a.Endpoints {
		h = xxh3.HashStringSeed(ep.Host, h)
		binary.LittleEndian.PutUint64(ib[:], uint64(ep.Port)) //nolint:gosec
		h = xxh3.HashSeed(ib[:], h)

		binary.LittleEndian.PutUint64(ib[:], uint64(len(a.Partitions[i])))
		h = xxh3.HashSeed(ib[:], h)
		for _, p := range a.Partitions[i] {
			binary.LittleEndian.PutUint64(ib[:], uint64(p)) //nolint:gosec
			h = xxh3.HashSeed(ib[:], h)
		}
	}

	return h
}

// Clone returns a deep copy of the assignment.
//
// Returns:
//   - *Assignment: Copy sharing no mutable state with the receiver
func (a *Assignment) Clone() *Assignment {
	clone := &Assignment{
		Endpoints:  append([]Endpoint(nil), a.Endpoints...),
		Partitions: make([][]int, len(a.Partitions)),
	}
	for i, parts := range a.Partitions {
		clone.Partitions[i] = append([]int(nil), parts...)
	}

	return clone
}
