package internal

// QuickSort sorts points in place with a recursive partition-exchange sort.
//
// The pivot is always the middle of the range, so the result is reproducible
// for a given input order. The cost is that some orderings, such as input
// that is already sorted in reverse, degrade to O(n^2) time and O(n) stack
// depth. Point sets read from files are small enough for this not to matter;
// a randomized or median-of-three pivot can be swapped in here without
// touching the comparator.
//
// The sort is not stable. Points which cmp considers tied may end up in any
// order, so cmp should be a total order when determinism matters.
func QuickSort(points []Point, cmp Comparator) {
	quickSort(points, 0, len(points)-1, cmp)
}

func quickSort(points []Point, left, right int, cmp Comparator) {
	if left >= right {
		return
	}
	pivot := partition(points, left, right, cmp)
	quickSort(points, left, pivot-1, cmp)
	quickSort(points, pivot+1, right, cmp)
}

// Moves the middle element to the right end, sweeps everything that sorts at
// or before it to the left, then puts the pivot between the two halves.
// Returns the pivot's final index.
func partition(points []Point, left, right int, cmp Comparator) int {
	middle := left + (right-left)/2
	points[middle], points[right] = points[right], points[middle]
	pivot := points[right]

	store := left
	for i := left; i < right; i++ {
		if cmp(points[i], pivot) <= 0 {
			points[i], points[store] = points[store], points[i]
			store++
		}
	}
	points[store], points[right] = points[right], points[store]
	return store
}
