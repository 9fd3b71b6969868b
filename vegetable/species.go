package vegetable

import (
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/pkg/errors"
)

type Species struct {
	Name     string
	Calories float64
	Price    float64
}

func (s Species) New(weight float64) (*Vegetable, error) {
	return New(s.Name, s.Calories, weight, s.Price)
}

var (
	BellPepperSpecies = Species{Name: "Bell Pepper", Calories: 31, Price: 3.99}
	CarrotSpecies     = Species{Name: "Carrot", Calories: 41, Price: 1.49}
	CucumberSpecies   = Species{Name: "Cucumber", Calories: 15, Price: 1.99}
	LettuceSpecies    = Species{Name: "Lettuce", Calories: 15, Price: 2.49}
	OnionSpecies      = Species{Name: "Onion", Calories: 40, Price: 1.29}
	TomatoSpecies     = Species{Name: "Tomato", Calories: 18, Price: 2.99}
)

// registry is keyed by lower-case species name without spaces. The tree map
// keeps keys sorted.
var registry = newRegistry(
	BellPepperSpecies,
	CarrotSpecies,
	CucumberSpecies,
	LettuceSpecies,
	OnionSpecies,
	TomatoSpecies,
)

func newRegistry(species ...Species) *treemap.Map {
	m := treemap.NewWithStringComparator()
	for _, s := range species {
		m.Put(s.Key(), s)
	}
	return m
}

// Key is the registry key of s, e.g. "bellpepper".
func (s Species) Key() string {
	return strings.ToLower(strings.ReplaceAll(s.Name, " ", ""))
}

func BellPepper(weight float64) (*Vegetable, error) { return BellPepperSpecies.New(weight) }
func Carrot(weight float64) (*Vegetable, error)     { return CarrotSpecies.New(weight) }
func Cucumber(weight float64) (*Vegetable, error)   { return CucumberSpecies.New(weight) }
func Lettuce(weight float64) (*Vegetable, error)    { return LettuceSpecies.New(weight) }
func Onion(weight float64) (*Vegetable, error)      { return OnionSpecies.New(weight) }
func Tomato(weight float64) (*Vegetable, error)     { return TomatoSpecies.New(weight) }

// LookupSpecies resolves a registry key such as "carrot" or "bellpepper".
func LookupSpecies(key string) (Species, error) {
	s, ok := registry.Get(key)
	if !ok {
		return Species{}, errors.Wrapf(ErrUnknownSpecies, "%q", key)
	}
	return s.(Species), nil
}

// SpeciesKeys returns the registry keys in ascending order.
func SpeciesKeys() []string {
	keys := make([]string, 0, registry.Size())
	for _, k := range registry.Keys() {
		keys = append(keys, k.(string))
	}
	return keys
}
