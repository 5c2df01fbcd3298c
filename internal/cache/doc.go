// Package cache memoizes projection results.
//
// Results are keyed by a Digest of the input class and its superclass chain.
// A Cache keeps recent results in memory and can be backed by a DiskCache
// that persists them across runs.
package cache
