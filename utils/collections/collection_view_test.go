package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArraySetAsCollection(t *testing.T) {
	s := NewArraySet(mockEquals)
	s.AddAll(&Mock{A: "aa", B: 1}, &Mock{A: "bb", B: 2})
	c := s.AsCollection()
	require.Equal(t, true, c.Contains(&Mock{A: "aa", B: 1}))
	require.Equal(t, true, c.Contains(&Mock{A: "aa", B: 1}, &Mock{A: "bb", B: 2}))
	require.Equal(t, false, c.Contains(&Mock{A: "aa", B: 1}, &Mock{A: "cc", B: 3}))
	require.Equal(t, false, c.Contains("aa"))
	require.Equal(t, true, c.Contains())
	require.Equal(t, 2, len(c.Values()))
	s.Add(&Mock{A: "cc", B: 3})
	require.Equal(t, 3, len(c.Values()))
}

func TestArraySetAlgebraWithItself(t *testing.T) {
	s := NewArraySet(mockEquals)
	s.AddAll(&Mock{A: "aa", B: 1}, &Mock{A: "bb", B: 2})
	require.Equal(t, false, s.RetainAll(s.AsCollection()))
	require.Equal(t, 2, s.Size())
	require.Equal(t, true, s.RemoveAll(s.AsCollection()))
	require.Equal(t, 0, s.Size())
}

func TestArraySetIntersectionUsesEquals(t *testing.T) {
	a := NewArraySet(mockEquals)
	a.AddAll(&Mock{A: "aa", B: 1}, &Mock{A: "bb", B: 2}, &Mock{A: "cc", B: 3})
	b := NewArraySet(mockEquals)
	b.AddAll(&Mock{A: "bb", B: 2}, &Mock{A: "cc", B: 3}, &Mock{A: "dd", B: 4})
	require.Equal(t, true, a.RetainAll(b.AsCollection()))
	require.Equal(t, 2, a.Size())
	require.Equal(t, "bb", a.Entries()[0].A)
	require.Equal(t, true, a.RemoveAll(b.AsCollection()))
	require.Equal(t, true, a.IsEmpty())
}
