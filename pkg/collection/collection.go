package collection

import "github.com/samber/lo"

func Map[T, R any](items []T, fn func(item T, index int) R) []R {
	return lo.Map(items, fn)
}

func Filter[T any](items []T, fn func(item T, index int) bool) []T {
	return lo.Filter(items, fn)
}

func Reduce[T, R any](items []T, fn func(acc R, item T, index int) R, initial R) R {
	return lo.Reduce(items, fn, initial)
}

func Find[T any](items []T, fn func(item T) bool) (T, bool) {
	return lo.Find(items, fn)
}

func Contains[T comparable](items []T, item T) bool {
	return lo.Contains(items, item)
}

func Every[T any](items []T, fn func(item T) bool) bool {
	return lo.EveryBy(items, fn)
}

func Some[T any](items []T, fn func(item T) bool) bool {
	return lo.SomeBy(items, fn)
}

// Uniq keeps the first occurrence of each value, preserving order.
func Uniq[T comparable](items []T) []T {
	return lo.Uniq(items)
}

// Compact drops zero values.
func Compact[T comparable](items []T) []T {
	return lo.Compact(items)
}

// Chunk splits items into groups of size. It panics if size is not positive.
func Chunk[T any](items []T, size int) [][]T {
	return lo.Chunk(items, size)
}

func Flatten[T any](items [][]T) []T {
	return lo.Flatten(items)
}

func GroupBy[T any, K comparable](items []T, fn func(item T) K) map[K][]T {
	return lo.GroupBy(items, fn)
}

// KeyBy indexes items by key; later items win on collisions.
func KeyBy[K comparable, V any](items []V, fn func(item V) K) map[K]V {
	return lo.KeyBy(items, fn)
}

func Keys[K comparable, V any](m map[K]V) []K {
	return lo.Keys(m)
}

func Values[K comparable, V any](m map[K]V) []V {
	return lo.Values(m)
}

func Pick[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	return lo.PickByKeys(m, keys)
}

func Omit[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	return lo.OmitByKeys(m, keys)
}
