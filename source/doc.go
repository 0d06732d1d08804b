// Package source provides AffinitySource implementations.
//
// The production source is the connector's connection layer, which asks the
// distributed filesystem for the block locations of each partition. This
// package ships the static source used in tests and in jobs whose affinities
// are known up front.
package source
