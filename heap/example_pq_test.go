// This example demonstrates a priority queue built using the Queue type.
package heap_test

import (
	"fmt"

	"github.com/aiclass/generic/heap"
)

// This example queues some cities by their straight-line distance
// to Bucharest and removes them closest first.
func Example_priorityQueue() {
	distances := []struct {
		city string
		km   float64
	}{
		{"Arad", 366},
		{"Sibiu", 253},
		{"Fagaras", 176},
		{"Pitesti", 100},
		{"Timisoara", 329},
	}

	var q heap.Queue[string]
	for _, d := range distances {
		q.Push(d.city, d.km)
	}

	// Equal priorities come out in the order they went in.
	q.Push("Rimnicu Vilcea", 176)

	for q.Len() > 0 {
		city, km := q.Pop()
		fmt.Printf("%s:%v ", city, km)
	}
	fmt.Println()
	// Output:
	// Pitesti:100 Fagaras:176 Rimnicu Vilcea:176 Sibiu:253 Timisoara:329 Arad:366
}
