package option

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// MarshalJSON renders the payload, or null when absent.
func (me Option[T]) MarshalJSON() ([]byte, error) {
	if !me.ok {
		return jsonNull, nil
	}
	return json.Marshal(me.value)
}

// UnmarshalJSON treats null as absence. A failed payload decode leaves the
// Option untouched.
func (me *Option[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, jsonNull) {
		me.SetNone()
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	me.Set(v)
	return nil
}

func (me Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(me.ok)
}

func (me *Flag) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, jsonNull) {
		me.SetNone()
		return nil
	}
	return json.Unmarshal(b, &me.ok)
}
