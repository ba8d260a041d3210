package attack

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape is a strike footprint: Width adjacent columns damaged across Height
// rows on the opponent's board.
type Shape struct {
	Width, Height int
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Area is the number of cells the strike covers.
func (s Shape) Area() int {
	return s.Width * s.Height
}

// ParseShape parses a "WxH" descriptor such as "2x12".
func ParseShape(desc string) (Shape, error) {
	w, h, ok := strings.Cut(desc, "x")
	if !ok {
		return Shape{}, fmt.Errorf("parse shape %q: missing separator", desc)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return Shape{}, fmt.Errorf("parse shape %q: %w", desc, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return Shape{}, fmt.Errorf("parse shape %q: %w", desc, err)
	}
	return Shape{Width: width, Height: height}, nil
}
