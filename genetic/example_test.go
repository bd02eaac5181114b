package genetic_test

import (
	"fmt"

	"github.com/katalvlaran/gatsp/cities"
	"github.com/katalvlaran/gatsp/genetic"
)

// lineTable puts city i at (i, 0): the alphabetical route is optimal.
func lineTable() *cities.Table {
	var t cities.Table
	for i := range t {
		t[i] = cities.Point{X: i, Y: 0}
	}
	return &t
}

// ExampleEngine_Evaluate ranks two routes on a line.
func ExampleEngine_Evaluate() {
	eng, err := genetic.NewEngine(lineTable(),
		genetic.WithPopulationSize(2),
		genetic.WithTopFraction(2),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer eng.Close()

	backwards, _ := genetic.NewRoute("9876543210ZYXWVUTSRQPONMLKJIHGFEDCBA")
	forwards, _ := genetic.NewRoute(cities.Symbols)
	pop := []genetic.Route{backwards, forwards}

	if err = eng.Evaluate(pop); err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range pop {
		fmt.Printf("%s %.0f\n", r.String(), r.Fitness)
	}
	// Output:
	// ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 35
	// 9876543210ZYXWVUTSRQPONMLKJIHGFEDCBA 70
}

// ExampleEngine_Crossover shows the complement relation between siblings.
func ExampleEngine_Crossover() {
	eng, err := genetic.NewEngine(lineTable(),
		genetic.WithPopulationSize(2),
		genetic.WithTopFraction(2),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer eng.Close()

	a, _ := genetic.NewRoute(cities.Symbols)
	b, _ := genetic.NewRoute("9876543210ZYXWVUTSRQPONMLKJIHGFEDCBA")
	kids, err := eng.Crossover([]genetic.Route{a, b})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(kids[0].String())
	fmt.Println(kids[1].String())
	// Output:
	// ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789
	// 9876543210ZYXWVUTSRQPONMLKJIHGFEDCBA
}
