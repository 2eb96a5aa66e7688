package listkit

// NoIndex is returned where an index is absent: no current item, a miss in
// hit-testing, or an empty visible range.
const NoIndex = -1

// Range is an inclusive range of item indices.
type Range struct {
	First, Last int
}

var emptyRange = Range{First: NoIndex, Last: NoIndex}

// Empty reports whether the range holds no indices.
func (r Range) Empty() bool {
	return r.First < 0 || r.Last < r.First
}

// Contains reports whether index lies within the range.
func (r Range) Contains(index int) bool {
	return !r.Empty() && index >= r.First && index <= r.Last
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.Last - r.First + 1
}

// viewport holds the scroll position and row geometry. offset is the
// index of the first row drawn at the top edge.
type viewport struct {
	offset     int
	itemHeight int
	spacing    int
	width      int
	height     int
}

func (v viewport) stride() int {
	return v.itemHeight + v.spacing
}

// pageStep is the number of rows that fit entirely in the viewport.
func (v viewport) pageStep() int {
	if v.height <= 0 {
		return 0
	}
	return v.height / v.stride()
}

// rowsInView counts rows that intersect the viewport, including a
// partially visible trailing row.
func (v viewport) rowsInView() int {
	if v.height <= 0 {
		return 0
	}
	s := v.stride()
	return (v.height + s - 1) / s
}

func (v viewport) visibleRange(count int) Range {
	if count == 0 {
		return emptyRange
	}
	first := max(0, v.offset)
	last := min(count-1, v.offset+v.rowsInView()-1)
	if last < first {
		return emptyRange
	}
	return Range{First: first, Last: last}
}

// maxScroll is the largest offset that still shows content:
// ceil((count*stride - height) / stride), never negative.
func (v viewport) maxScroll(count int) int {
	s := v.stride()
	overflow := count*s - v.height
	if overflow <= 0 {
		return 0
	}
	return (overflow + s - 1) / s
}

func (v viewport) clampOffset(offset, count int) int {
	return max(0, min(offset, v.maxScroll(count)))
}

// rowTop is the y coordinate of a row's top edge.
func (v viewport) rowTop(index int) int {
	return (index - v.offset) * v.stride()
}
