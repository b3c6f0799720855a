// Package collection re-exports a curated set of slice and map helpers from
// github.com/samber/lo under stable names.
//
// The functions are plain forwards: semantics, ordering guarantees and panics
// are those of the lo function of the same purpose. Use lo directly when a
// helper is missing here.
package collection
