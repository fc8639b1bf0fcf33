package option

// UnwrapError is the panic value raised by checked access to an absent
// container. It's the only thing this package panics with.
type UnwrapError struct {
	msg string
}

func (me UnwrapError) Error() string {
	return me.msg
}

// Message returns the diagnostic supplied when the panic was raised.
func (me UnwrapError) Message() string {
	return me.msg
}
