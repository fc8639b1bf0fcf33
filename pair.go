package option

// Pair is the payload shape Zip produces and Unzip consumes.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip is present only when both operands are.
func Zip[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	return ZipWith(a, b, func(a A, b B) Pair[A, B] {
		return Pair[A, B]{a, b}
	})
}

func ZipWith[A, B, C any](a Option[A], b Option[B], f func(A, B) C) Option[C] {
	if !a.ok || !b.ok {
		return None[C]()
	}
	return Some(f(a.value, b.value))
}

// Unzip splits a pair payload into per-element Options. None splits into
// two Nones.
func Unzip[A, B any](o Option[Pair[A, B]]) (Option[A], Option[B]) {
	if !o.ok {
		return None[A](), None[B]()
	}
	return Some(o.value.First), Some(o.value.Second)
}

// Transpose swaps option-of-result nesting into result-of-option, with the
// result arm in Go's (value, error) shape. A present error is never wrapped
// in presence: it comes back as the bare error.
func Transpose[T any](o Option[Pair[T, error]]) (Option[T], error) {
	if !o.ok {
		return None[T](), nil
	}
	if err := o.value.Second; err != nil {
		return None[T](), err
	}
	return Some(o.value.First), nil
}
