package option

import (
	"github.com/cespare/xxhash"
)

// HashWith delegates to the held type's hash provider. None hashes to the
// fixed sentinel 0, so providers should avoid returning 0 for values that
// must not collide with absence.
func HashWith[T any](o Option[T], hash func(T) uint64) uint64 {
	if !o.ok {
		return 0
	}
	return hash(o.value)
}

func HashBytes(o Option[[]byte]) uint64 {
	return HashWith(o, xxhash.Sum64)
}

func HashString(o Option[string]) uint64 {
	return HashWith(o, xxhash.Sum64String)
}
