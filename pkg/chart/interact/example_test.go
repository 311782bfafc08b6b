package interact_test

import (
	"fmt"

	"github.com/matzehuels/chartkit/pkg/chart/interact"
)

func ExampleResolver() {
	slices := []string{"rent", "food", "travel"}
	r := interact.New(slices, interact.Options[int, string]{
		Hoverable:  true,
		Selectable: true,
		OnSelectChange: func(e interact.Event[int, string]) {
			fmt.Println("select ->", e.Key)
		},
	})

	r.HoverEnter(0)
	r.Click(2)
	for i := range slices {
		o, _ := r.Opacity(i)
		fmt.Printf("%s: %.1f\n", slices[i], o)
	}
	// Output:
	// select -> 2
	// rent: 0.3
	// food: 0.3
	// travel: 1.0
}

func ExampleControlled() {
	// The owner holds the hovered index; local hover writes are ignored
	// and only proposed through the callback.
	r := interact.New([]int{10, 20}, interact.Options[int, int]{
		Hoverable: true,
		Hovered:   interact.Controlled(interact.Some(1)),
		OnHoverChange: func(e interact.Event[int, int]) {
			fmt.Println("proposed:", e.Key)
		},
	})

	r.HoverEnter(0)
	fmt.Println("hovered:", r.HoveredIndex())
	// Output:
	// proposed: 0
	// hovered: 1
}
