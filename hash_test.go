package option

import (
	"testing"

	"github.com/cespare/xxhash"
	qt "github.com/go-quicktest/qt"
)

func TestHashWith(t *testing.T) {
	ident := func(v uint64) uint64 { return v }
	qt.Assert(t, qt.Equals(HashWith(Some(uint64(7)), ident), uint64(7)))
	// None hashes to the fixed sentinel.
	qt.Assert(t, qt.Equals(HashWith(None[uint64](), ident), uint64(0)))
	called := false
	HashWith(None[uint64](), func(v uint64) uint64 { called = true; return v })
	qt.Assert(t, qt.IsFalse(called))
}

func TestHashString(t *testing.T) {
	qt.Assert(t, qt.Equals(HashString(Some("magnet")), xxhash.Sum64String("magnet")))
	qt.Assert(t, qt.Equals(HashString(None[string]()), uint64(0)))
	// Equal payloads hash equal across bytes and string forms.
	qt.Assert(t, qt.Equals(HashBytes(Some([]byte("magnet"))), HashString(Some("magnet"))))
	qt.Assert(t, qt.Equals(HashBytes(None[[]byte]()), uint64(0)))
}
