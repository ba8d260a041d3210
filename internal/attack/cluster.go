package attack

// minClusterSize is the smallest connected group that counts as a cluster.
// Smaller same-type groups fall through to the individual block count.
const minClusterSize = 4

type point struct {
	x, y int
}

// DetectClusters groups a combo's broken blocks into 4-connected same-type
// clusters and returns their sizes in detection order. Breakers are excluded.
// Detection operates purely on the supplied coordinate set; the live board is
// never consulted, so out-of-range coordinates and unknown block types are
// handled like any other.
func DetectClusters(blocks []Block) []int {
	sizes, _ := clusterize(blocks)
	return sizes
}

// Categorize splits broken blocks into cluster members, individual blocks
// and breakers.
func Categorize(blocks []Block) (clustered, individual, breakers []Block) {
	_, member := clusterize(blocks)
	for _, b := range blocks {
		switch {
		case b.IsBreaker():
			breakers = append(breakers, b)
		case member[point{b.X, b.Y}]:
			clustered = append(clustered, b)
		default:
			individual = append(individual, b)
		}
	}
	return clustered, individual, breakers
}

func clusterize(blocks []Block) (sizes []int, member map[point]bool) {
	member = make(map[point]bool)

	byType := make(map[string][]point)
	var typeOrder []string
	for _, b := range blocks {
		if b.IsBreaker() {
			continue
		}
		if _, seen := byType[b.Type]; !seen {
			typeOrder = append(typeOrder, b.Type)
		}
		byType[b.Type] = append(byType[b.Type], point{b.X, b.Y})
	}

	for _, t := range typeOrder {
		positions := byType[t]
		if len(positions) < minClusterSize {
			continue
		}
		set := make(map[point]bool, len(positions))
		for _, p := range positions {
			set[p] = true
		}
		visited := make(map[point]bool, len(positions))
		for _, start := range positions {
			if visited[start] {
				continue
			}
			group := floodFill(start, set, visited)
			if len(group) >= minClusterSize {
				sizes = append(sizes, len(group))
				for _, p := range group {
					member[p] = true
				}
			}
		}
	}
	return sizes, member
}

// floodFill collects the 4-connected component containing start. The explicit
// stack keeps large contiguous regions from exhausting the call stack.
func floodFill(start point, set, visited map[point]bool) []point {
	stack := []point{start}
	visited[start] = true
	var group []point
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		group = append(group, p)
		for _, n := range [4]point{{p.x, p.y + 1}, {p.x + 1, p.y}, {p.x, p.y - 1}, {p.x - 1, p.y}} {
			if set[n] && !visited[n] {
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}
	return group
}
