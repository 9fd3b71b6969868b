package vegetable

import "errors"

var (
	ErrInvalidWeight    = errors.New("weight must be positive")
	ErrNegativeCalories = errors.New("calories cannot be negative")
	ErrInvalidPrice     = errors.New("price must be positive")
	ErrInvalidRange     = errors.New("minimum calories cannot be greater than maximum calories")
	ErrNotVegetable     = errors.New("element is not a vegetable")
	ErrUnknownSpecies   = errors.New("unknown species")
)
