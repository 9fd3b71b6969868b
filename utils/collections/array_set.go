package collections

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/tuannh982/vegetable-set/utils/math"
)

const (
	DefaultCapacity = 15
	GrowthFactor    = 1.3
)

var logger = log.WithFields(log.Fields{"component": "collections"})

type EqualsFunc[V any] func(a, b V) bool

// ArraySet keeps its elements in insertion order in the first size slots of
// a fixed length backing array. Membership is decided by an EqualsFunc, so
// lookups are linear scans.
type ArraySet[V any] struct {
	entries  []V
	size     int
	modCount int
	equals   EqualsFunc[V]
}

var _ Set[int] = (*ArraySet[int])(nil)

func NewArraySet[V any](f EqualsFunc[V]) *ArraySet[V] {
	return &ArraySet[V]{
		entries: make([]V, DefaultCapacity),
		size:    0,
		equals:  f,
	}
}

// ensureCapacity grows the backing array to max(capacity*1.3, minCapacity).
func (s *ArraySet[V]) ensureCapacity(minCapacity int) {
	if minCapacity <= len(s.entries) {
		return
	}
	newCapacity := math.Max(math.ScaleFloor(len(s.entries), GrowthFactor), minCapacity)
	logger.WithFields(log.Fields{"from": len(s.entries), "to": newCapacity}).Debug("grow backing array")
	entries := make([]V, newCapacity)
	copy(entries, s.entries[:s.size])
	s.entries = entries
}

func (s *ArraySet[V]) indexOf(v V) int {
	for i := 0; i < s.size; i++ {
		if s.equals(s.entries[i], v) {
			return i
		}
	}
	return -1
}

// fastRemove shifts everything after index one slot to the left and clears
// the vacated tail slot. index is not bounds checked.
func (s *ArraySet[V]) fastRemove(index int) {
	var zero V
	copy(s.entries[index:s.size], s.entries[index+1:s.size])
	s.size--
	s.entries[s.size] = zero
	s.modCount++
}

func (s *ArraySet[V]) Contains(v V) bool {
	return s.indexOf(v) >= 0
}

func (s *ArraySet[V]) Add(v V) bool {
	if s.Contains(v) {
		return false
	}
	s.ensureCapacity(s.size + 1)
	s.entries[s.size] = v
	s.size++
	s.modCount++
	return true
}

func (s *ArraySet[V]) Remove(v V) bool {
	i := s.indexOf(v)
	if i < 0 {
		return false
	}
	s.fastRemove(i)
	return true
}

func (s *ArraySet[V]) Size() int {
	return s.size
}

func (s *ArraySet[V]) IsEmpty() bool {
	return s.size == 0
}

// Cap returns the length of the backing array.
func (s *ArraySet[V]) Cap() int {
	return len(s.entries)
}

func (s *ArraySet[V]) ContainsAll(values ...V) bool {
	for _, v := range values {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

func (s *ArraySet[V]) AddAll(values ...V) bool {
	modified := false
	for _, v := range values {
		if s.Add(v) {
			modified = true
		}
	}
	return modified
}

// RetainAll removes every element that c does not contain, as decided by
// c.Contains rather than by the set's EqualsFunc.
func (s *ArraySet[V]) RetainAll(c Collection) bool {
	return s.removeIf(func(v V) bool {
		return !c.Contains(v)
	})
}

// RemoveAll removes every element that c contains, as decided by c.Contains
// rather than by the set's EqualsFunc.
func (s *ArraySet[V]) RemoveAll(c Collection) bool {
	return s.removeIf(func(v V) bool {
		return c.Contains(v)
	})
}

// removeIf walks from the tail so compaction never moves an unvisited slot.
func (s *ArraySet[V]) removeIf(pred func(V) bool) bool {
	modified := false
	for i := s.size - 1; i >= 0; i-- {
		if pred(s.entries[i]) {
			s.fastRemove(i)
			modified = true
		}
	}
	return modified
}

func (s *ArraySet[V]) Clear() {
	var zero V
	for i := 0; i < s.size; i++ {
		s.entries[i] = zero
	}
	s.size = 0
	s.modCount++
}

func (s *ArraySet[V]) Entries() []V {
	arr := make([]V, s.size)
	copy(arr, s.entries[:s.size])
	return arr
}

// CopyInto copies the elements into dst when it is large enough, writing a
// zero value right after the last element if dst has room for it. Otherwise a
// new slice of exactly Size() elements is returned.
func (s *ArraySet[V]) CopyInto(dst []V) []V {
	if len(dst) < s.size {
		return s.Entries()
	}
	copy(dst, s.entries[:s.size])
	if len(dst) > s.size {
		var zero V
		dst[s.size] = zero
	}
	return dst
}

func (s *ArraySet[V]) Iterator() *Iterator[V] {
	return &Iterator[V]{
		set:              s,
		cursor:           0,
		lastRet:          -1,
		expectedModCount: s.modCount,
	}
}

func (s *ArraySet[V]) String() string {
	parts := make([]string, 0, s.size)
	for i := 0; i < s.size; i++ {
		parts = append(parts, fmt.Sprint(s.entries[i]))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
