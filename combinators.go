package option

// Filter keeps the payload only when pred approves of it.
func (me Option[T]) Filter(pred func(T) bool) Option[T] {
	if me.ok && pred(me.value) {
		return me
	}
	return None[T]()
}

// Or returns me when present, else other.
func (me Option[T]) Or(other Option[T]) Option[T] {
	if me.ok {
		return me
	}
	return other
}

// OrElse is Or with a lazily computed alternative.
func (me Option[T]) OrElse(other func() Option[T]) Option[T] {
	if me.ok {
		return me
	}
	return other()
}

// Xor is present only when exactly one operand is.
func (me Option[T]) Xor(other Option[T]) Option[T] {
	if me.ok == other.ok {
		return None[T]()
	}
	return me.Or(other)
}

// Inspect calls f on the payload when present and returns me unchanged.
func (me Option[T]) Inspect(f func(T)) Option[T] {
	if me.ok {
		f(me.value)
	}
	return me
}

// ToFlag drops the payload, keeping presence.
func (me Option[T]) ToFlag() Flag {
	return Flag{me.ok}
}

// Map transforms the payload. None maps to None. Methods can't introduce
// type parameters, so the type-changing combinators are package functions.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(f(o.value))
}

// MapOr returns f(payload) when present, else fallback.
func MapOr[T, U any](o Option[T], fallback U, f func(T) U) U {
	if !o.ok {
		return fallback
	}
	return f(o.value)
}

func MapOrElse[T, U any](o Option[T], fallback func() U, f func(T) U) U {
	if !o.ok {
		return fallback()
	}
	return f(o.value)
}

func MapOrZero[T, U any](o Option[T], f func(T) U) (zero U) {
	if !o.ok {
		return
	}
	return f(o.value)
}

// MapToFlag runs f for its side effect, keeping only presence. The
// counterpart of Map for payload-free results.
func MapToFlag[T any](o Option[T], f func(T)) Flag {
	if o.ok {
		f(o.value)
	}
	return o.ToFlag()
}

// AndThen chains a transformation that can itself decline, flattening one
// level.
func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return f(o.value)
}

// And returns b only when a is present.
func And[T, U any](a Option[T], b Option[U]) Option[U] {
	if !a.ok {
		return None[U]()
	}
	return b
}

// Flatten collapses one level of nesting.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if !o.ok {
		return None[T]()
	}
	return o.value
}

// Contains reports whether o holds exactly v. None never contains anything.
func Contains[T comparable](o Option[T], v T) bool {
	return o.ok && o.value == v
}
