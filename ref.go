package option

import (
	"fmt"
)

// Ref holds zero or one references to an externally owned T. It never
// copies or zeroes the referent: mutating operations rebind the address and
// nothing else. Presence is the address's non-nilness, so unlike Option[*T]
// a Ref can't be present-and-nil. The zero value is unbound. Callers must
// not keep a Ref past the referent's usefulness; the type can't enforce
// that.
type Ref[T any] struct {
	ptr *T
}

// Bind borrows p. Bind(nil) is the unbound Ref.
func Bind[T any](p *T) Ref[T] {
	return Ref[T]{p}
}

func (me Ref[T]) IsSome() bool {
	return me.ptr != nil
}

func (me Ref[T]) IsNone() bool {
	return me.ptr == nil
}

func (me Ref[T]) IsSomeAnd(pred func(*T) bool) bool {
	return me.ptr != nil && pred(me.ptr)
}

// Get copies the referent comma-ok style.
func (me Ref[T]) Get() (_ T, _ bool) {
	if me.ptr == nil {
		return
	}
	return *me.ptr, true
}

// Unwrap returns the referent's address, panicking with an UnwrapError when
// unbound.
func (me Ref[T]) Unwrap() *T {
	if me.ptr == nil {
		panic(UnwrapError{"unwrap on unbound ref"})
	}
	return me.ptr
}

func (me Ref[T]) Expect(msg string) *T {
	if me.ptr == nil {
		panic(UnwrapError{msg})
	}
	return me.ptr
}

func (me Ref[T]) UnwrapOr(alt *T) *T {
	if me.ptr != nil {
		return me.ptr
	}
	return alt
}

func (me Ref[T]) OkOr(err error) (*T, error) {
	if me.ptr == nil {
		return nil, err
	}
	return me.ptr, nil
}

// Set rebinds to p. The old referent is untouched.
func (me *Ref[T]) Set(p *T) {
	me.ptr = p
}

func (me *Ref[T]) SetNone() {
	me.ptr = nil
}

// Take moves the binding out, leaving an unbound Ref behind.
func (me *Ref[T]) Take() Ref[T] {
	old := *me
	me.ptr = nil
	return old
}

// Replace rebinds to p and returns the prior binding.
func (me *Ref[T]) Replace(p *T) Ref[T] {
	old := *me
	me.ptr = p
	return old
}

func (me Ref[T]) Filter(pred func(*T) bool) Ref[T] {
	if me.ptr != nil && pred(me.ptr) {
		return me
	}
	return Ref[T]{}
}

func (me Ref[T]) Inspect(f func(*T)) Ref[T] {
	if me.ptr != nil {
		f(me.ptr)
	}
	return me
}

func (me Ref[T]) Or(other Ref[T]) Ref[T] {
	if me.ptr != nil {
		return me
	}
	return other
}

func (me Ref[T]) OrElse(other func() Ref[T]) Ref[T] {
	if me.ptr != nil {
		return me
	}
	return other()
}

func (me Ref[T]) Xor(other Ref[T]) Ref[T] {
	if (me.ptr != nil) == (other.ptr != nil) {
		return Ref[T]{}
	}
	return me.Or(other)
}

// AsOption copies the referent into an owning Option. The single place a
// borrow becomes ownership; Copied is the free-function spelling.
func (me Ref[T]) AsOption() Option[T] {
	return FromPtr(me.ptr)
}

func (me Ref[T]) ToFlag() Flag {
	return Flag{me.ptr != nil}
}

func (me Ref[T]) String() string {
	if me.ptr == nil {
		return "none"
	}
	return fmt.Sprintf("some(%v)", *me.ptr)
}

// Copied shallow-copies the referent into an owning Option.
func Copied[T any](r Ref[T]) Option[T] {
	return r.AsOption()
}

// Cloned deep-copies the referent into an owning Option, for held types
// whose ordinary copy can't be trusted to be deep.
func Cloned[T Cloner[T]](r Ref[T]) Option[T] {
	if r.ptr == nil {
		return None[T]()
	}
	return Some((*r.ptr).Clone())
}

// MapRef transforms through the borrow, producing an owning Option of f's
// result.
func MapRef[T, U any](r Ref[T], f func(*T) U) Option[U] {
	if r.ptr == nil {
		return None[U]()
	}
	return Some(f(r.ptr))
}

// Deref borrows the pointee of a pointer-shaped payload. None and
// Some(nil) both give an unbound Ref.
func Deref[T any](o Option[*T]) Ref[T] {
	return Bind(o.UnwrapOr(nil))
}

// DerefRef is Deref through an existing borrow.
func DerefRef[T any](r Ref[*T]) Ref[T] {
	if r.ptr == nil {
		return Ref[T]{}
	}
	return Bind(*r.ptr)
}
