package collections

type Set[V any] interface {
	Contains(v V) bool
	Add(v V) bool
	Remove(v V) bool
	Size() int
	Entries() []V
}

// Collection is a plain collection owned by the caller. Contains uses the
// collection's own notion of equality. Lists and sets from
// github.com/emirpasic/gods satisfy it.
type Collection interface {
	Contains(values ...interface{}) bool
	Values() []interface{}
}
