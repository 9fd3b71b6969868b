package vegetable

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tuannh982/vegetable-set/utils/collections"
	"github.com/tuannh982/vegetable-set/utils/math"
)

var logger = log.WithFields(log.Fields{"component": "vegetable"})

// Set is a set of vegetables that uses Equals instead of identity, so two
// separately built carrots of the same weight are one element. It is not safe
// for concurrent use.
type Set struct {
	entries *collections.ArraySet[*Vegetable]
}

var _ collections.Collection = (*Set)(nil)

func NewSet() *Set {
	return &Set{
		entries: collections.NewArraySet(Equals),
	}
}

func NewSetOf(v *Vegetable) (*Set, error) {
	if v == nil {
		return nil, collections.ErrNilElement
	}
	s := NewSet()
	s.entries.Add(v)
	return s, nil
}

// NewSetFrom copies c, collapsing elements that are Equals to each other.
func NewSetFrom(c collections.Collection) (*Set, error) {
	if c == nil {
		return nil, collections.ErrNilCollection
	}
	s := NewSet()
	if _, err := s.AddAll(c); err != nil {
		return nil, err
	}
	return s, nil
}

func asVegetable(o interface{}) (*Vegetable, bool) {
	v, ok := o.(*Vegetable)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (s *Set) Size() int {
	return s.entries.Size()
}

func (s *Set) IsEmpty() bool {
	return s.entries.IsEmpty()
}

// Contains reports whether every value is Equals to an element of the set.
// Anything that is not a *Vegetable is never contained. With this and Values
// a Set is itself a collections.Collection, so it can be the argument of
// another set's ContainsAll, AddAll, RetainAll and RemoveAll.
func (s *Set) Contains(values ...interface{}) bool {
	for _, o := range values {
		v, ok := asVegetable(o)
		if !ok || !s.entries.Contains(v) {
			return false
		}
	}
	return true
}

// Values returns a snapshot of the elements in insertion order.
func (s *Set) Values() []interface{} {
	entries := s.entries.Entries()
	arr := make([]interface{}, 0, len(entries))
	for _, v := range entries {
		arr = append(arr, v)
	}
	return arr
}

func (s *Set) Add(v *Vegetable) (bool, error) {
	if v == nil {
		return false, collections.ErrNilElement
	}
	return s.entries.Add(v), nil
}

func (s *Set) Remove(o interface{}) bool {
	v, ok := asVegetable(o)
	if !ok {
		return false
	}
	return s.entries.Remove(v)
}

func (s *Set) ContainsAll(c collections.Collection) bool {
	for _, o := range c.Values() {
		if !s.Contains(o) {
			return false
		}
	}
	return true
}

// AddAll stops at the first element that is nil or not a *Vegetable. Elements
// added before it stay in the set.
func (s *Set) AddAll(c collections.Collection) (bool, error) {
	if c == nil {
		return false, collections.ErrNilCollection
	}
	modified := false
	for i, o := range c.Values() {
		if o == nil {
			return modified, errors.Wrapf(collections.ErrNilElement, "index %d", i)
		}
		v, ok := o.(*Vegetable)
		if !ok {
			return modified, errors.Wrapf(ErrNotVegetable, "index %d: %T", i, o)
		}
		added, err := s.Add(v)
		if err != nil {
			return modified, errors.Wrapf(err, "index %d", i)
		}
		if added {
			modified = true
		}
	}
	return modified, nil
}

// RetainAll keeps the elements that c.Contains reports. Note that c decides
// equality: a gods arraylist of *Vegetable matches by pointer only, while
// another Set matches with Equals.
func (s *Set) RetainAll(c collections.Collection) bool {
	return s.entries.RetainAll(c)
}

// RemoveAll drops the elements that c.Contains reports, with the same
// equality caveat as RetainAll.
func (s *Set) RemoveAll(c collections.Collection) bool {
	return s.entries.RemoveAll(c)
}

func (s *Set) Clear() {
	s.entries.Clear()
}

func (s *Set) ToArray() []*Vegetable {
	return s.entries.Entries()
}

// ToArrayInto fills dst when it has room for every element, nil-terminating
// it if longer. Otherwise a new slice is allocated.
func (s *Set) ToArrayInto(dst []*Vegetable) []*Vegetable {
	return s.entries.CopyInto(dst)
}

func (s *Set) Iterator() *collections.Iterator[*Vegetable] {
	return s.entries.Iterator()
}

func (s *Set) TotalCalories() float64 {
	return math.Sum(s.entries.Entries(), (*Vegetable).TotalCalories)
}

func (s *Set) TotalCost() float64 {
	return math.Sum(s.entries.Entries(), (*Vegetable).Cost)
}

// FindByCalorieRange returns a new set holding the vegetables whose calories
// per 100 g lie in [min, max].
func (s *Set) FindByCalorieRange(min, max float64) (*Set, error) {
	if min > max {
		return nil, errors.Wrapf(ErrInvalidRange, "min=%g max=%g", min, max)
	}
	result := NewSet()
	for _, v := range s.entries.Entries() {
		if v.calories >= min && v.calories <= max {
			result.entries.Add(v)
		}
	}
	logger.WithFields(log.Fields{
		"min":     min,
		"max":     max,
		"matched": result.Size(),
	}).Debug("calorie range query")
	return result, nil
}

func (s *Set) String() string {
	return s.entries.String()
}
