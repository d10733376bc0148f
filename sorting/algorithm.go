// Package sorting implements the sort strategies a pipeline worker can apply to a sequence.
//
// A strategy is selected by Algorithm, a closed set of variants. Every strategy sorts in
// place and is safe for concurrent use on distinct slices.
package sorting

import (
	"errors"
	"strings"

	"github.com/ygrebnov/errorc"
)

const Namespace = "sorting"

var ErrUnknownAlgorithm = errors.New(Namespace + ": unknown sort algorithm")

// Algorithm selects a sort strategy.
type Algorithm int

const (
	Insertion Algorithm = iota
	Merge
	Quick
	// Std is the standard library sort.
	Std
)

var names = [...]string{
	Insertion: "insertion",
	Merge:     "merge",
	Quick:     "quick",
	Std:       "std",
}

// Algorithms returns every supported algorithm.
func Algorithms() []Algorithm { return []Algorithm{Insertion, Merge, Quick, Std} }

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(names) {
		return "unknown"
	}
	return names[a]
}

// ParseAlgorithm maps a selector to an Algorithm. Unknown selectors are rejected.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "insertion":
		return Insertion, nil
	case "merge":
		return Merge, nil
	case "quick":
		return Quick, nil
	case "std", "library-default", "default":
		return Std, nil
	default:
		return 0, errorc.With(ErrUnknownAlgorithm, errorc.String("name", name))
	}
}

// Strategy sorts a sequence in place and returns it.
type Strategy interface {
	Sort(seq []int64) []int64
}

// StrategyFunc adapts a function to Strategy.
type StrategyFunc func([]int64)

func (f StrategyFunc) Sort(seq []int64) []int64 {
	f(seq)
	return seq
}

// Strategy returns the ascending strategy for a.
func (a Algorithm) Strategy() Strategy {
	switch a {
	case Insertion:
		return StrategyFunc(InsertionSort)
	case Merge:
		return StrategyFunc(MergeSort)
	case Quick:
		return StrategyFunc(QuickSort)
	case Std:
		return StrategyFunc(StdSort)
	default:
		return nil
	}
}

// New returns the strategy for a, reversing the result when descending is set.
func New(a Algorithm, descending bool) (Strategy, error) {
	s := a.Strategy()
	if s == nil {
		return nil, errorc.With(ErrUnknownAlgorithm, errorc.String("name", a.String()))
	}
	if descending {
		return Reverse(s), nil
	}
	return s, nil
}

// Reverse returns a strategy producing the reverse order of s.
func Reverse(s Strategy) Strategy { return reversed{s} }

type reversed struct{ base Strategy }

func (r reversed) Sort(seq []int64) []int64 {
	seq = r.base.Sort(seq)
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}
	return seq
}

// IsSorted reports whether seq is in non-decreasing order, or non-increasing
// order when descending is set.
func IsSorted(seq []int64, descending bool) bool {
	for i := 1; i < len(seq); i++ {
		if descending && seq[i] > seq[i-1] {
			return false
		}
		if !descending && seq[i] < seq[i-1] {
			return false
		}
	}
	return true
}
