package option

import (
	"testing"

	qt "github.com/go-quicktest/qt"
)

func TestClone(t *testing.T) {
	src := Some(cloningBuf{[]byte("abc")})
	dup := Clone(src)
	// Independent storage: mutating the source's buffer doesn't show in the
	// clone.
	src.AsPtr().b[0] = 'z'
	qt.Assert(t, qt.Equals(string(dup.Unwrap().b), "abc"))
	qt.Assert(t, qt.Equals(string(src.Unwrap().b), "zbc"))

	qt.Assert(t, qt.IsTrue(Clone(None[cloningBuf]()).IsNone()))
}

func TestCloneFrom(t *testing.T) {
	dst := Some(cloningBuf{[]byte("old")})
	src := Some(cloningBuf{[]byte("new")})
	CloneFrom(&dst, src)
	qt.Assert(t, qt.Equals(string(dst.Unwrap().b), "new"))
	src.AsPtr().b[0] = 'z'
	qt.Assert(t, qt.Equals(string(dst.Unwrap().b), "new"))

	CloneFrom(&dst, None[cloningBuf]())
	qt.Assert(t, qt.IsTrue(dst.IsNone()))
}
