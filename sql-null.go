package option

import (
	"database/sql"
)

// ToNull converts to the standard library's structurally matching optional.
func (me Option[T]) ToNull() sql.Null[T] {
	return sql.Null[T]{
		V:     me.value,
		Valid: me.ok,
	}
}

// FromNull converts from the standard library's optional. Invalid Nulls
// come back as None regardless of what their V holds.
func FromNull[T any](n sql.Null[T]) Option[T] {
	return FromOk(n.V, n.Valid)
}
