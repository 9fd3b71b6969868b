package math

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Integer | constraints.Float
}

func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// ApproxEqual reports whether a and b differ by strictly less than eps.
func ApproxEqual[T constraints.Float](a, b, eps T) bool {
	return Abs(a-b) < eps
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// ScaleFloor returns n * factor rounded toward zero.
func ScaleFloor[T constraints.Integer](n T, factor float64) T {
	return T(float64(n) * factor)
}

func Sum[V any, T Number](values []V, f func(V) T) T {
	var total T
	for _, v := range values {
		total += f(v)
	}
	return total
}
