package option

import (
	"fmt"
)

// Option holds zero or one values of T. The zero value is None. An absent
// Option always holds the zero value of T, so Options of comparable held
// types compare correctly with ==.
type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{
		value: value,
		ok:    true,
	}
}

func None[T any]() (_ Option[T]) {
	return
}

// FromPtr copies the pointee into a new Option. A nil pointer is None. See
// Bind for the aliasing form.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromOk converts Go's comma-ok convention. The value is dropped when !ok.
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// FromResult converts Go's (value, error) convention, dropping the error.
func FromResult[T any](value T, err error) Option[T] {
	if err != nil {
		return None[T]()
	}
	return Some(value)
}

func (me Option[T]) IsSome() bool {
	return me.ok
}

func (me Option[T]) IsNone() bool {
	return !me.ok
}

func (me Option[T]) IsSomeAnd(pred func(T) bool) bool {
	return me.ok && pred(me.value)
}

func (me Option[T]) IsNoneOr(pred func(T) bool) bool {
	return !me.ok || pred(me.value)
}

// Get returns the held value comma-ok style.
func (me Option[T]) Get() (T, bool) {
	return me.value, me.ok
}

// Unwrap returns the held value, panicking with an UnwrapError if there
// isn't one.
func (me Option[T]) Unwrap() T {
	if !me.ok {
		panic(UnwrapError{"unwrap on none option"})
	}
	return me.value
}

// Expect is Unwrap with a caller-supplied diagnostic.
func (me Option[T]) Expect(msg string) T {
	if !me.ok {
		panic(UnwrapError{msg})
	}
	return me.value
}

func (me Option[T]) UnwrapOr(fallback T) T {
	if me.ok {
		return me.value
	}
	return fallback
}

func (me Option[T]) UnwrapOrElse(fallback func() T) T {
	if me.ok {
		return me.value
	}
	return fallback()
}

func (me Option[T]) UnwrapOrZero() (_ T) {
	return me.value
}

// UnwrapUnchecked returns the storage without checking presence. Callers
// must have established presence by other means. Absent storage is the zero
// value of T.
func (me Option[T]) UnwrapUnchecked() T {
	return me.value
}

// OkOr converts to Go's result convention: the held value, or err when
// absent.
func (me Option[T]) OkOr(err error) (T, error) {
	if me.ok {
		return me.value, nil
	}
	return me.value, err
}

func (me Option[T]) OkOrElse(err func() error) (T, error) {
	if me.ok {
		return me.value, nil
	}
	return me.value, err()
}

// ToPtr returns a pointer to a copy of the held value, or nil. The inverse
// of FromPtr. See AsPtr for a pointer into the Option's own storage.
func (me Option[T]) ToPtr() *T {
	if !me.ok {
		return nil
	}
	v := me.value
	return &v
}

func (me Option[T]) String() string {
	if !me.ok {
		return "none"
	}
	return fmt.Sprintf("some(%v)", me.value)
}
