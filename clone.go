package option

// Cloner is the explicit deep-copy capability. Ordinary assignment can't be
// trusted to produce an independent copy for held types with sharing
// semantics (slices, maps, pointer-bearing structs), so deep-copying
// operations demand it.
type Cloner[T any] interface {
	Clone() T
}

// Clone deep-copies the payload when present.
func Clone[T Cloner[T]](o Option[T]) Option[T] {
	return Map(o, func(v T) T { return v.Clone() })
}

// CloneFrom resets dst to a deep copy of src's state.
func CloneFrom[T Cloner[T]](dst *Option[T], src Option[T]) {
	*dst = Clone(src)
}
