package demo

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/tuannh982/vegetable-set/vegetable"
)

type maker func(weight float64) (*vegetable.Vegetable, error)

type portion struct {
	newFn  maker
	weight float64
}

func build(portions ...portion) ([]*vegetable.Vegetable, error) {
	arr := make([]*vegetable.Vegetable, 0, len(portions))
	for _, p := range portions {
		v, err := p.newFn(p.weight)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	return arr, nil
}

// Run walks through constructors, set operations, the aggregate queries and
// iteration, printing each step.
func Run() error {
	if err := constructors(); err != nil {
		return errors.Wrap(err, "constructors")
	}
	salad, err := sampleSalad()
	if err != nil {
		return errors.Wrap(err, "sample salad")
	}
	steps := []func(*vegetable.Set) error{
		duplicates,
		removal,
		totals,
		calorieRanges,
		iteration,
	}
	for _, step := range steps {
		if err := step(salad); err != nil {
			return err
		}
	}
	return nil
}

func constructors() error {
	pterm.DefaultSection.Println("Empty constructor")
	empty := vegetable.NewSet()
	pterm.Info.Println(fmt.Sprintf("set: %s size: %d", empty, empty.Size()))

	pterm.DefaultSection.Println("Single element constructor")
	carrot, err := vegetable.Carrot(150)
	if err != nil {
		return err
	}
	single, err := vegetable.NewSetOf(carrot)
	if err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("set: %s size: %d", single, single.Size()))

	pterm.DefaultSection.Println("Collection constructor")
	arr, err := build(portion{vegetable.Carrot, 150}, portion{vegetable.Tomato, 200}, portion{vegetable.Cucumber, 300})
	if err != nil {
		return err
	}
	list := arraylist.New()
	for _, v := range arr {
		list.Add(v)
	}
	fromList, err := vegetable.NewSetFrom(list)
	if err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("set: %s size: %d", fromList, fromList.Size()))
	return nil
}

func sampleSalad() (*vegetable.Set, error) {
	pterm.DefaultSection.Println("Add")
	arr, err := build(
		portion{vegetable.Lettuce, 100},
		portion{vegetable.Tomato, 150},
		portion{vegetable.Cucumber, 200},
		portion{vegetable.BellPepper, 100},
		portion{vegetable.Onion, 50},
	)
	if err != nil {
		return nil, err
	}
	salad := vegetable.NewSet()
	for _, v := range arr {
		if _, err := salad.Add(v); err != nil {
			return nil, err
		}
	}
	pterm.Info.Println("salad: " + salad.String())
	return salad, nil
}

func duplicates(salad *vegetable.Set) error {
	pterm.DefaultSection.Println("Duplicate handling")
	tomato, err := vegetable.Tomato(150)
	if err != nil {
		return err
	}
	added, err := salad.Add(tomato)
	if err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("added duplicate tomato? %t", added))
	pterm.Info.Println("salad: " + salad.String())
	return nil
}

func removal(salad *vegetable.Set) error {
	pterm.DefaultSection.Println("Remove")
	onion, err := vegetable.Onion(50)
	if err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("removed onion? %t", salad.Remove(onion)))
	pterm.Info.Println("salad: " + salad.String())
	return nil
}

func totals(salad *vegetable.Set) error {
	pterm.DefaultSection.Println("Totals")
	pterm.Info.Println(fmt.Sprintf("total calories: %.2f cal", salad.TotalCalories()))
	pterm.Info.Println(fmt.Sprintf("total cost: $%.2f", salad.TotalCost()))
	return nil
}

func calorieRanges(salad *vegetable.Set) error {
	pterm.DefaultSection.Println("Calorie range search")
	for _, r := range [][2]float64{{0, 20}, {20, 35}} {
		found, err := salad.FindByCalorieRange(r[0], r[1])
		if err != nil {
			return err
		}
		pterm.Info.Println(fmt.Sprintf("%g-%g cal/100g: %s", r[0], r[1], found))
	}
	return nil
}

func iteration(salad *vegetable.Set) error {
	pterm.DefaultSection.Println("Iterator")
	it := salad.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return err
		}
		pterm.Info.Println(fmt.Sprintf("- %s: %.1f calories per 100g", v.Name(), v.Calories()))
	}
	return nil
}
