package collections

// AsCollection returns a live view of s. Its Contains decides membership
// with the set's EqualsFunc, and values that are not a V are never contained.
func (s *ArraySet[V]) AsCollection() Collection {
	return arraySetView[V]{set: s}
}

type arraySetView[V any] struct {
	set *ArraySet[V]
}

func (c arraySetView[V]) Contains(values ...interface{}) bool {
	for _, o := range values {
		v, ok := o.(V)
		if !ok || !c.set.Contains(v) {
			return false
		}
	}
	return true
}

func (c arraySetView[V]) Values() []interface{} {
	arr := make([]interface{}, 0, c.set.size)
	for i := 0; i < c.set.size; i++ {
		arr = append(arr, c.set.entries[i])
	}
	return arr
}
