package option

import (
	"slices"
	"testing"

	qt "github.com/go-quicktest/qt"
)

func TestOptionIter(t *testing.T) {
	qt.Assert(t, qt.DeepEquals(slices.Collect(Some(1).Iter()), []int{1}))
	qt.Assert(t, qt.HasLen(slices.Collect(None[int]().Iter()), 0))

	total := 0
	for v := range Some(5).Iter() {
		total += v
	}
	qt.Assert(t, qt.Equals(total, 5))
}

func TestRefIter(t *testing.T) {
	x := 1
	for p := range Bind(&x).Iter() {
		*p = 2
	}
	qt.Assert(t, qt.Equals(x, 2))
	qt.Assert(t, qt.HasLen(slices.Collect(Bind[int](nil).Iter()), 0))
}

func TestSeqFirstLast(t *testing.T) {
	qt.Assert(t, qt.Equals(SeqFirst(slices.Values([]int{3, 1, 2})), Some(3)))
	qt.Assert(t, qt.Equals(SeqLast(slices.Values([]int{3, 1, 2})), Some(2)))
	qt.Assert(t, qt.Equals(SeqFirst(slices.Values([]int(nil))), None[int]()))
	qt.Assert(t, qt.Equals(SeqLast(slices.Values([]int(nil))), None[int]()))
}

// Options compose with the slices package like any zero-or-one-element
// sequence.
func TestIterWithRangeFuncs(t *testing.T) {
	qt.Assert(t, qt.IsTrue(slices.Contains(slices.Collect(Some("hi").Iter()), "hi")))
	var collected []string
	for _, o := range []Option[string]{Some("a"), None[string](), Some("b")} {
		collected = slices.AppendSeq(collected, o.Iter())
	}
	qt.Assert(t, qt.DeepEquals(collected, []string{"a", "b"}))
}
