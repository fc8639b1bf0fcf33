package option

// Flag holds zero or one units of nothing: a bare presence flag. It's the
// payload-free container shape, so the dereferencing, zipping and
// get-or-insert operations don't exist on it; everything else degenerates
// to flag logic. The zero value is absent.
type Flag struct {
	ok bool
}

// Nothing is the typeless absence sentinel. Any container shape can be
// built from it (None, MapFlag) and every absent container compares equal
// to it by presence.
var Nothing Flag

func SomeFlag() Flag {
	return Flag{true}
}

func (me Flag) IsSome() bool {
	return me.ok
}

func (me Flag) IsNone() bool {
	return !me.ok
}

func (me Flag) IsSomeAnd(pred func() bool) bool {
	return me.ok && pred()
}

func (me Flag) IsNoneOr(pred func() bool) bool {
	return !me.ok || pred()
}

// Unwrap asserts presence, panicking with an UnwrapError when absent.
// There's no payload to return.
func (me Flag) Unwrap() {
	if !me.ok {
		panic(UnwrapError{"unwrap on none flag"})
	}
}

func (me Flag) Expect(msg string) {
	if !me.ok {
		panic(UnwrapError{msg})
	}
}

func (me Flag) OkOr(err error) error {
	if me.ok {
		return nil
	}
	return err
}

func (me Flag) OkOrElse(err func() error) error {
	if me.ok {
		return nil
	}
	return err()
}

func (me *Flag) Set() {
	me.ok = true
}

func (me *Flag) SetNone() {
	me.ok = false
}

func (me *Flag) Take() Flag {
	old := *me
	me.ok = false
	return old
}

func (me *Flag) Replace() Flag {
	old := *me
	me.ok = true
	return old
}

func (me Flag) Filter(pred func() bool) Flag {
	if me.ok && pred() {
		return me
	}
	return Flag{}
}

func (me Flag) Inspect(f func()) Flag {
	if me.ok {
		f()
	}
	return me
}

func (me Flag) And(other Flag) Flag {
	if !me.ok {
		return Flag{}
	}
	return other
}

func (me Flag) Or(other Flag) Flag {
	if me.ok {
		return me
	}
	return other
}

func (me Flag) OrElse(other func() Flag) Flag {
	if me.ok {
		return me
	}
	return other()
}

func (me Flag) Xor(other Flag) Flag {
	return Flag{me.ok != other.ok}
}

// Hash is fixed per state: 1 present, 0 absent.
func (me Flag) Hash() uint64 {
	if me.ok {
		return 1
	}
	return 0
}

func (me Flag) String() string {
	if me.ok {
		return "some()"
	}
	return "none"
}

// MapFlag is the one bridge from the payload-free shape to a value
// container: f supplies the payload when the flag is present.
func MapFlag[T any](me Flag, f func() T) Option[T] {
	if !me.ok {
		return None[T]()
	}
	return Some(f())
}

// AndThenFlag chains a payload-free presence into a computation that can
// itself decline.
func AndThenFlag[T any](me Flag, f func() Option[T]) Option[T] {
	if !me.ok {
		return None[T]()
	}
	return f()
}
