package sorting

import (
	"slices"

	"github.com/ygrebnov/sortpipe/pool"
)

// quickSortThreshold is the partition size below which quicksort falls back
// to insertion sort.
const quickSortThreshold = 40

// scratch holds merge buffers shared by concurrent MergeSort calls.
var scratch = pool.NewDynamic(func() *[]int64 {
	b := make([]int64, 0, 512)
	return &b
})

// InsertionSort sorts seq in ascending order.
func InsertionSort(seq []int64) {
	insertionSort(seq, 0, len(seq)-1)
}

func insertionSort(a []int64, l, r int) {
	for i := l + 1; i <= r; i++ {
		tmp := a[i]
		j := i
		for ; j > l && tmp < a[j-1]; j-- {
			a[j] = a[j-1]
		}
		a[j] = tmp
	}
}

// QuickSort sorts seq in ascending order.
// Partitions smaller than quickSortThreshold are finished with insertion sort and
// the smaller side is always recursed into first, bounding stack depth to O(log n).
func QuickSort(seq []int64) {
	quickSort(seq, 0, len(seq)-1)
}

func quickSort(a []int64, l, r int) {
	for r-l >= quickSortThreshold {
		p := partition(a, l, r)
		if p-l < r-p {
			quickSort(a, l, p-1)
			l = p + 1
		} else {
			quickSort(a, p+1, r)
			r = p - 1
		}
	}
	insertionSort(a, l, r)
}

// medianOfThree returns the index of the median of a[l], a[m] and a[r].
func medianOfThree(a []int64, l, r int) int {
	m := l + (r-l)/2
	switch {
	case a[l] < a[m]:
		switch {
		case a[m] < a[r]:
			return m
		case a[l] < a[r]:
			return r
		default:
			return l
		}
	default:
		switch {
		case a[l] < a[r]:
			return l
		case a[m] < a[r]:
			return r
		default:
			return m
		}
	}
}

// partition places the pivot at its final index and returns that index.
func partition(a []int64, l, r int) int {
	p := medianOfThree(a, l, r)
	a[p], a[r] = a[r], a[p]

	pivot := a[r]
	i, j := l-1, r
	for {
		for i++; a[i] < pivot; i++ {
		}
		for j--; j > l && pivot < a[j]; j-- {
		}
		if i >= j {
			break
		}
		a[i], a[j] = a[j], a[i]
	}
	a[i], a[r] = a[r], a[i]

	return i
}

// MergeSort sorts seq in ascending order with a top-down merge sort.
// Halves that are already ordered relative to each other are not merged.
func MergeSort(seq []int64) {
	if len(seq) < 2 {
		return
	}

	bp := scratch.Get()
	buf := slices.Grow((*bp)[:0], len(seq))
	mergeSort(seq, buf, 0, len(seq)-1)
	*bp = buf[:0]
	scratch.Put(bp)
}

func mergeSort(a, buf []int64, l, r int) {
	if l >= r {
		return
	}

	m := l + (r-l)/2
	mergeSort(a, buf, l, m)
	mergeSort(a, buf, m+1, r)

	if a[m] <= a[m+1] {
		return
	}
	merge(a, buf, l, m, r)
}

// merge combines the sorted runs a[l..m] and a[m+1..r].
func merge(a, buf []int64, l, m, r int) {
	left := append(buf[:0], a[l:m+1]...)

	i, j, k := 0, m+1, l
	for i < len(left) && j <= r {
		if a[j] < left[i] {
			a[k] = a[j]
			j++
		} else {
			a[k] = left[i]
			i++
		}
		k++
	}
	copy(a[k:], left[i:])
}

// StdSort sorts seq with the standard library.
func StdSort(seq []int64) {
	slices.Sort(seq)
}
