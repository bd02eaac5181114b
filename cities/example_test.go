package cities_test

import (
	"fmt"

	"github.com/katalvlaran/gatsp/cities"
)

// ExampleComplementOf shows the mirrored-alphabet mapping.
func ExampleComplementOf() {
	for _, s := range []byte("AB9R") {
		c, _ := cities.ComplementOf(s)
		fmt.Printf("%c→%c ", s, c)
	}
	fmt.Println()
	// Output:
	// A→9 B→8 9→A R→S
}

// ExamplePathLength evaluates a two-city toy path from the depot.
func ExamplePathLength() {
	var table cities.Table
	table[0] = cities.Point{X: 0, Y: 0} // A
	table[1] = cities.Point{X: 3, Y: 4} // B

	length, err := cities.PathLength([]byte("AB"), &table, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(length)
	// Output:
	// 5
}
