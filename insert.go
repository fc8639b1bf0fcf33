package option

import (
	"github.com/anacrolix/missinggo/v2/panicif"
)

// Set stores value, destroying any previous payload, and returns a pointer
// into the Option's storage.
func (me *Option[T]) Set(value T) *T {
	me.value = value
	me.ok = true
	return &me.value
}

// SetNone clears the Option. Storage is zeroed so stale payloads can't leak
// through comparisons or UnwrapUnchecked.
func (me *Option[T]) SetNone() {
	*me = Option[T]{}
}

// SetFromOk assigns from Go's comma-ok convention.
func (me *Option[T]) SetFromOk(value T, ok bool) {
	*me = FromOk(value, ok)
}

// GetOrInsert returns a pointer to the held value, inserting value first if
// absent. Idempotent while present: later calls ignore their argument.
func (me *Option[T]) GetOrInsert(value T) *T {
	if !me.ok {
		me.Set(value)
	}
	return &me.value
}

func (me *Option[T]) GetOrInsertZero() *T {
	var zero T
	return me.GetOrInsert(zero)
}

// GetOrInsertWith is GetOrInsert with a lazily computed value.
func (me *Option[T]) GetOrInsertWith(f func() T) *T {
	if !me.ok {
		me.Set(f())
	}
	panicif.False(me.ok)
	return &me.value
}

// Take moves the payload out, leaving None behind.
func (me *Option[T]) Take() Option[T] {
	old := *me
	me.SetNone()
	return old
}

// TakeIf takes only when present and pred approves of the (mutable) payload.
func (me *Option[T]) TakeIf(pred func(*T) bool) Option[T] {
	if !me.ok || !pred(&me.value) {
		return None[T]()
	}
	return me.Take()
}

// Replace stores value and returns the prior state.
func (me *Option[T]) Replace(value T) Option[T] {
	old := *me
	me.Set(value)
	return old
}

// AsPtr returns a pointer into the Option's storage, or nil when absent.
// Mutating through it keeps presence intact.
func (me *Option[T]) AsPtr() *T {
	if !me.ok {
		return nil
	}
	return &me.value
}

// AsPtrOr returns a pointer into the Option's storage when present, else
// alt. The alias-preserving counterpart to UnwrapOr: both arms are pointers
// to existing storage, so callers can chain mutation through the result.
func (me *Option[T]) AsPtrOr(alt *T) *T {
	if me.ok {
		return &me.value
	}
	return alt
}

// AsRef borrows the payload as a reference container. Absent gives an
// unbound Ref.
func (me *Option[T]) AsRef() Ref[T] {
	return Bind(me.AsPtr())
}

func Swap[T any](a, b *Option[T]) {
	*a, *b = *b, *a
}
