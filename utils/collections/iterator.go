package collections

import log "github.com/sirupsen/logrus"

// Iterator is a fail-fast cursor over an ArraySet. Any structural change made
// to the set other than through Iterator.Remove is reported as
// ErrConcurrentModification by the next call to Next or Remove. It does not
// make the set safe for use from several goroutines.
type Iterator[V any] struct {
	set              *ArraySet[V]
	cursor           int
	lastRet          int
	expectedModCount int
}

func (it *Iterator[V]) HasNext() bool {
	return it.cursor < it.set.size
}

func (it *Iterator[V]) Next() (v V, err error) {
	if err = it.checkForComodification(); err != nil {
		return v, err
	}
	if it.cursor >= it.set.size {
		return v, ErrNoSuchElement
	}
	it.lastRet = it.cursor
	it.cursor++
	return it.set.entries[it.lastRet], nil
}

// Remove drops the element returned by the last call to Next. The element
// that slides into its slot is returned by the following Next.
func (it *Iterator[V]) Remove() error {
	if it.lastRet < 0 {
		return ErrIllegalState
	}
	if err := it.checkForComodification(); err != nil {
		return err
	}
	if it.lastRet >= it.set.size {
		return ErrConcurrentModification
	}
	it.set.fastRemove(it.lastRet)
	it.cursor = it.lastRet
	it.lastRet = -1
	it.expectedModCount = it.set.modCount
	return nil
}

func (it *Iterator[V]) checkForComodification() error {
	if it.set.modCount != it.expectedModCount {
		logger.WithFields(log.Fields{
			"expected": it.expectedModCount,
			"actual":   it.set.modCount,
		}).Debug("iterator detected structural change")
		return ErrConcurrentModification
	}
	return nil
}
