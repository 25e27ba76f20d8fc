package fixpoly

// insertionThreshold is the partition size below which the depth sort
// switches to insertion sort. Quicksort's bookkeeping costs more than
// it saves on runs this small.
const insertionThreshold = 16

// DepthSorter orders faces with the runtime painter's algorithm: each
// face gets a scalar depth key, the observer-space depth of its
// farthest vertex (maximum zo), and faces are sorted by that key in
// descending order, so iteration draws back to front. Faces with any
// vertex on or behind the observer plane are marked non-displayable
// and left to the dispatcher to skip.
//
// The sort is adaptive (insertion sort for small runs, median-of-three
// quicksort with an insertion fallback otherwise) and not stable: ties
// may land in either order. It permutes an index slice only; the
// model's face arena never moves.
type DepthSorter struct {
	order []int
}

// NewDepthSorter creates a depth-sort orderer. The internal index
// buffer is grown once per model size and reused across frames.
func NewDepthSorter() *DepthSorter { return &DepthSorter{} }

// Order computes depth keys and visibility for every face and returns
// the face ids sorted farthest-first. The observer parameter is unused
// here (depth sort consumes the transformed coordinates already in the
// model) but kept for interchangeability with BSP traversal.
func (d *DepthSorter) Order(m *Model, _ Observer) ([]int, error) {
	m.updateVisibility()

	n := m.faceCount
	if cap(d.order) < n {
		d.order = make([]int, n)
	}
	d.order = d.order[:n]
	for i := range d.order {
		d.order[i] = i
	}

	if n > 1 {
		if n <= insertionThreshold {
			insertionByDepth(d.order, m.depth, 0, n-1)
		} else {
			quicksortByDepth(d.order, m.depth, 0, n-1)
		}
	}

	Logger().Debug("depth sort", "faces", n)
	return d.order, nil
}

// insertionByDepth sorts order[lo..hi] (inclusive) by descending depth
// key.
func insertionByDepth(order []int, depth []Fixed, lo, hi int) {
	for i := lo + 1; i <= hi; i++ {
		id := order[i]
		key := depth[id]
		j := i - 1
		for j >= lo && depth[order[j]] < key {
			order[j+1] = order[j]
			j--
		}
		order[j+1] = id
	}
}

// quicksortByDepth sorts order[lo..hi] by descending depth key using
// median-of-three pivot selection, falling back to insertion sort for
// small partitions.
func quicksortByDepth(order []int, depth []Fixed, lo, hi int) {
	for lo < hi {
		if hi-lo < insertionThreshold {
			insertionByDepth(order, depth, lo, hi)
			return
		}
		p := partitionByDepth(order, depth, lo, hi)
		// Recurse into the smaller side to bound stack depth.
		if p-lo < hi-p {
			quicksortByDepth(order, depth, lo, p-1)
			lo = p + 1
		} else {
			quicksortByDepth(order, depth, p+1, hi)
			hi = p - 1
		}
	}
}

// partitionByDepth partitions order[lo..hi] around a median-of-three
// pivot and returns the pivot's final position. Descending order:
// keys >= pivot end up left of it.
func partitionByDepth(order []int, depth []Fixed, lo, hi int) int {
	mid := lo + (hi-lo)/2
	if depth[order[lo]] < depth[order[mid]] {
		order[lo], order[mid] = order[mid], order[lo]
	}
	if depth[order[lo]] < depth[order[hi]] {
		order[lo], order[hi] = order[hi], order[lo]
	}
	if depth[order[mid]] < depth[order[hi]] {
		order[mid], order[hi] = order[hi], order[mid]
	}
	// Median now sits at lo; park it at hi for the sweep.
	pivot := depth[order[lo]]
	order[lo], order[hi] = order[hi], order[lo]

	i := lo - 1
	for j := lo; j < hi; j++ {
		if depth[order[j]] >= pivot {
			i++
			order[i], order[j] = order[j], order[i]
		}
	}
	order[i+1], order[hi] = order[hi], order[i+1]
	return i + 1
}
