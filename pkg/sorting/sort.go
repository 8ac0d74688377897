package sorting

import "slices"

// None marks an absent highlight index.
const None = -1

// RenderFunc receives the live sequence after a step together with the
// primary and secondary highlight indices. The slice must not be retained
// or modified; copy it if it has to outlive the call.
type RenderFunc func(values []int, primary, secondary int)

func (r RenderFunc) emit(values []int, primary, secondary int) {
	if r != nil {
		r(values, primary, secondary)
	}
}

// Selection sorts values with selection sort.
func Selection(values []int, render RenderFunc) {
	n := len(values)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if values[j] < values[minIdx] {
				minIdx = j
			}
			render.emit(values, j, minIdx)
		}
		values[i], values[minIdx] = values[minIdx], values[i]
		render.emit(values, i, i)
	}
}

// Bubble sorts values with bubble sort. A pass without swaps ends the sort.
func Bubble(values []int, render RenderFunc) {
	for i := len(values) - 1; i > 0; i-- {
		swapped := false
		for j := 0; j < i; j++ {
			if values[j] > values[j+1] {
				values[j], values[j+1] = values[j+1], values[j]
				swapped = true
				render.emit(values, j, i)
			}
			render.emit(values, j+1, i)
		}
		if !swapped {
			return
		}
	}
}

// Insertion sorts values with insertion sort.
func Insertion(values []int, render RenderFunc) {
	for i := 1; i < len(values); i++ {
		key := values[i]
		j := i - 1
		for j >= 0 && values[j] > key {
			values[j+1] = values[j]
			j--
			render.emit(values, j+1, i)
		}
		values[j+1] = key
		render.emit(values, j+1, i)
	}
}

// Merge sorts values with top-down merge sort. Equal elements keep their
// relative order.
func Merge(values []int, render RenderFunc) {
	mergeSort(values, 0, len(values)-1, render, nil)
}

func mergeSort(values []int, lo, hi int, render RenderFunc, parent *CallNode) {
	if lo > hi {
		return
	}
	node := parent.child(lo, hi)
	if lo == hi {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(values, lo, mid, render, node)
	mergeSort(values, mid+1, hi, render, node)
	merge(values, lo, mid, hi, render)
}

// merge combines the sorted runs [lo,mid] and [mid+1,hi].
func merge(values []int, lo, mid, hi int, render RenderFunc) {
	left := slices.Clone(values[lo : mid+1])
	right := slices.Clone(values[mid+1 : hi+1])

	i, j, k := 0, 0, lo
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			values[k] = left[i]
			i++
		} else {
			values[k] = right[j]
			j++
		}
		render.emit(values, k, None)
		k++
	}
	for ; i < len(left); i++ {
		values[k] = left[i]
		render.emit(values, k, None)
		k++
	}
	for ; j < len(right); j++ {
		values[k] = right[j]
		render.emit(values, k, None)
		k++
	}
}

// Quick sorts values with quicksort using the Lomuto partition scheme.
func Quick(values []int, render RenderFunc) {
	quickSort(values, 0, len(values)-1, render, nil)
}

func quickSort(values []int, lo, hi int, render RenderFunc, parent *CallNode) {
	if lo > hi {
		return
	}
	node := parent.child(lo, hi)
	if lo == hi {
		return
	}
	p := partition(values, lo, hi, render)
	node.setPivot(p)
	quickSort(values, lo, p-1, render, node)
	quickSort(values, p+1, hi, render, node)
}

// partition places values[hi] at its final position and returns it.
// Everything strictly smaller ends up to its left.
func partition(values []int, lo, hi int, render RenderFunc) int {
	pivot := values[hi]
	boundary := lo
	for i := lo; i < hi; i++ {
		if values[i] < pivot {
			values[i], values[boundary] = values[boundary], values[i]
			render.emit(values, i, boundary)
			boundary++
		}
	}
	values[hi], values[boundary] = values[boundary], values[hi]
	render.emit(values, boundary, hi)
	return boundary
}
