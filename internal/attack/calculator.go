package attack

// maxStrikeHeight caps chain-scaled strikes at the opponent board height.
const maxStrikeHeight = 12

// strikeShapes maps a cluster size to its chain-1 strike footprint. Sizes
// outside this table have no canonical shape and produce no strike.
var strikeShapes = map[int]Shape{
	4:  {Width: 1, Height: 4},
	6:  {Width: 3, Height: 2},
	8:  {Width: 2, Height: 4},
	9:  {Width: 3, Height: 3},
	12: {Width: 3, Height: 4},
	16: {Width: 4, Height: 4},
}

// StrikeShape returns the chain-1 strike footprint for a cluster size.
func StrikeShape(size int) (Shape, bool) {
	s, ok := strikeShapes[size]
	return s, ok
}

// GarbageBlocks converts a combo's individual block count into garbage
// blocks: zero for zero, otherwise max(1, n/2). Garbage never scales with the
// chain position, and breakers are excluded before this point.
func GarbageBlocks(individual int) int {
	if individual <= 0 {
		return 0
	}
	g := individual / 2
	if g < 1 {
		g = 1
	}
	return g
}

// ScaleShape applies the chain multiplier to a chain-1 footprint. Height
// scales linearly up to maxStrikeHeight. A strike splits into two half-width
// strikes of three-quarter height when the scaled height overflows the cap,
// and size-16 clusters split on any chained combo; that is how the 4x4
// "two swords" behavior falls out (chain 2 → two 2x6, chain 3 → two 2x9).
func ScaleShape(size int, base Shape, chain int) []Shape {
	if chain < 1 {
		chain = 1
	}
	h := base.Height * chain
	split := h > maxStrikeHeight || (size >= 16 && chain > 1)
	if !split {
		return []Shape{{Width: base.Width, Height: h}}
	}
	w := base.Width / 2
	if w < 1 {
		w = 1
	}
	sh := h * 3 / 4
	if sh > maxStrikeHeight {
		sh = maxStrikeHeight
	}
	if sh < 1 {
		sh = 1
	}
	return []Shape{{Width: w, Height: sh}, {Width: w, Height: sh}}
}

// ClusterStrikes resolves one cluster size into its chain-scaled strikes.
func ClusterStrikes(size, chain int) []Shape {
	base, ok := StrikeShape(size)
	if !ok {
		return nil
	}
	return ScaleShape(size, base, chain)
}
