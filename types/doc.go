// Package types contains the shared types and interfaces of the vecstream
// library.
//
// Internal packages depend on this package instead of the root vecstream
// package, which keeps the dependency graph acyclic. The root package
// re-exports the public subset via type aliases, so callers can write
// vecstream.Endpoint, vecstream.Logger, etc.
package types
