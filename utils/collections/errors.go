package collections

import "errors"

var (
	ErrNilElement             = errors.New("element cannot be nil")
	ErrNilCollection          = errors.New("collection cannot be nil")
	ErrNoSuchElement          = errors.New("no such element")
	ErrIllegalState           = errors.New("illegal iterator state")
	ErrConcurrentModification = errors.New("concurrent modification")
)
