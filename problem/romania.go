package problem

import (
	_ "embed"
	"fmt"
)

//go:embed romania.yaml
var romaniaYAML []byte

// Example returns the named built-in problem.
// The only one so far is "romania".
func Example(name string) (*Problem, error) {
	switch name {
	case "romania":
		return Romania(), nil
	}
	return nil, fmt.Errorf("unknown example problem %q", name)
}

// Romania returns the road map of Romania from Russell and Norvig's
// "Artificial Intelligence: A Modern Approach", searching from Arad
// to Bucharest, with straight-line distances to Bucharest as the
// heuristic. Each call returns a new Problem.
func Romania() *Problem {
	p, err := Parse(romaniaYAML)
	if err != nil {
		panic(fmt.Errorf("bad embedded romania problem: %v", err))
	}
	return p
}

// RomaniaYAML returns the source of the built-in Romania problem.
func RomaniaYAML() []byte {
	return append([]byte(nil), romaniaYAML...)
}
