package attack

import "fmt"

// ColumnRotator hands out target columns for garbage placement. The
// outside-in rotation guarantees no column repeats within width consecutive
// calls, so obstruction blocks spread across the whole board before any
// column receives a second one.
type ColumnRotator struct {
	width    int
	rotation []int
	index    int
}

// NewColumnRotator builds a rotator for the given grid width. The rotation
// alternates a low cursor from the left edge and a high cursor from the
// right: width 6 yields 0,5,1,4,2,3.
func NewColumnRotator(width int) *ColumnRotator {
	if width < 1 {
		width = 1
	}
	rotation := make([]int, 0, width)
	lo, hi := 0, width-1
	for lo <= hi {
		rotation = append(rotation, lo)
		if hi != lo {
			rotation = append(rotation, hi)
		}
		lo++
		hi--
	}
	return &ColumnRotator{width: width, rotation: rotation}
}

// Next returns the next column in rotation and advances the cursor.
func (r *ColumnRotator) Next() int {
	col := r.rotation[r.index]
	r.index = (r.index + 1) % len(r.rotation)
	return col
}

// Current returns the column Next would yield, without advancing.
func (r *ColumnRotator) Current() int {
	return r.rotation[r.index]
}

// Reset rewinds the rotation to its start.
func (r *ColumnRotator) Reset() {
	r.index = 0
}

// SetPattern replaces the rotation with a custom column order. The pattern
// must cover exactly the grid width.
func (r *ColumnRotator) SetPattern(pattern []int) error {
	if len(pattern) != r.width {
		return fmt.Errorf("rotation pattern has %d columns, want %d", len(pattern), r.width)
	}
	r.rotation = append([]int(nil), pattern...)
	r.index = 0
	return nil
}

// Width returns the grid width the rotator was built for.
func (r *ColumnRotator) Width() int {
	return r.width
}
