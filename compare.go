package option

import (
	"cmp"

	"github.com/anacrolix/multiless"
)

// Equal is spelled out for symmetry with EqualFunc: the zeroing invariant
// makes == on Options of comparable held types agree with it.
func Equal[T comparable](a, b Option[T]) bool {
	return a == b
}

func EqualFunc[T any](a, b Option[T], eq func(T, T) bool) bool {
	if a.ok != b.ok {
		return false
	}
	return !a.ok || eq(a.value, b.value)
}

// Less orders None strictly before any Some, then by payload.
func Less[T cmp.Ordered](a, b Option[T]) bool {
	return multiless.New().Bool(a.ok, b.ok).Cmp(cmp.Compare(a.value, b.value)).Less()
}

// Compare returns -1, 0 or 1, with None first. The total order T's order
// induces.
func Compare[T cmp.Ordered](a, b Option[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

func CompareFunc[T any](a, b Option[T], cmp func(T, T) int) int {
	switch {
	case a.ok && b.ok:
		return cmp(a.value, b.value)
	case a.ok:
		return 1
	case b.ok:
		return -1
	default:
		return 0
	}
}

// ContainsFunc reports whether o's payload matches v under eq.
func ContainsFunc[T, V any](o Option[T], v V, eq func(T, V) bool) bool {
	return o.ok && eq(o.value, v)
}
