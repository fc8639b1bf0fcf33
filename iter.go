package option

import (
	"iter"
)

// Iter ranges over the zero or one held values.
func (me Option[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if me.ok {
			yield(me.value)
		}
	}
}

// Iter ranges over the zero or one referents, yielding the alias itself.
// Iteration borrows: nothing is copied.
func (me Ref[T]) Iter() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if me.ptr != nil {
			yield(me.ptr)
		}
	}
}

// SeqFirst returns Some of the first item in a iter.Seq, or None if the
// sequence is empty.
func SeqFirst[V any](seq iter.Seq[V]) (first Option[V]) {
	for item := range seq {
		first.Set(item)
		break
	}
	return
}

// SeqLast returns Some of the last item in a iter.Seq, or None if the
// sequence is empty.
func SeqLast[V any](seq iter.Seq[V]) (last Option[V]) {
	for item := range seq {
		last.Set(item)
	}
	return
}
