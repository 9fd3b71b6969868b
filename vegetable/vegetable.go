package vegetable

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/tuannh982/vegetable-set/utils/math"
)

// Epsilon is the tolerance used when comparing the numeric fields of two
// vegetables.
const Epsilon = 0.001

// Vegetable is an immutable record. Calories are per 100 g, weight is in
// grams and price is per kg.
type Vegetable struct {
	name     string
	calories float64
	weight   float64
	price    float64
}

func New(name string, calories, weight, price float64) (*Vegetable, error) {
	if weight <= 0 {
		return nil, errors.Wrapf(ErrInvalidWeight, "%s: got %g", name, weight)
	}
	if calories < 0 {
		return nil, errors.Wrapf(ErrNegativeCalories, "%s: got %g", name, calories)
	}
	if price <= 0 {
		return nil, errors.Wrapf(ErrInvalidPrice, "%s: got %g", name, price)
	}
	return &Vegetable{
		name:     name,
		calories: calories,
		weight:   weight,
		price:    price,
	}, nil
}

func (v *Vegetable) Name() string {
	return v.name
}

func (v *Vegetable) Calories() float64 {
	return v.calories
}

func (v *Vegetable) Weight() float64 {
	return v.weight
}

func (v *Vegetable) Price() float64 {
	return v.price
}

func (v *Vegetable) TotalCalories() float64 {
	return v.calories * v.weight / 100
}

// Cost converts the weight to kilograms before applying the price.
func (v *Vegetable) Cost() float64 {
	return v.price * v.weight / 1000
}

func (v Vegetable) String() string {
	return fmt.Sprintf("%s (%.1fg, %.1f cal/100g, $%.2f/kg)", v.name, v.weight, v.calories, v.price)
}

// Equals compares names exactly and the numeric fields within Epsilon. The
// relation is not transitive for values that drift by less than Epsilon at a
// time. There is no identity shortcut, so a record holding NaN is not equal
// even to itself.
func Equals(a, b *Vegetable) bool {
	if a == nil || b == nil {
		return false
	}
	return a.name == b.name &&
		math.ApproxEqual(a.weight, b.weight, Epsilon) &&
		math.ApproxEqual(a.calories, b.calories, Epsilon) &&
		math.ApproxEqual(a.price, b.price, Epsilon)
}
