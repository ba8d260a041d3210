package attack

import (
	"fmt"
	"sort"
	"strings"
)

// Block is one broken grid cell as reported by the puzzle engine.
type Block struct {
	X, Y int
	Type string
}

// IsBreaker reports whether the block is a breaker type. Breakers trigger
// eliminations but never count toward attack output.
func (b Block) IsBreaker() bool {
	return strings.Contains(b.Type, "breaker")
}

// ComboType classifies a combo by what it contains.
type ComboType string

const (
	ComboEmpty          ComboType = "empty"
	ComboPureCluster    ComboType = "pure_cluster"
	ComboPureIndividual ComboType = "pure_individual"
	ComboMixed          ComboType = "mixed"
)

// Combo is one resolved elimination event: the cluster sizes found in its
// broken blocks, the loose block counts, and its position in the chain.
type Combo struct {
	ClusterSizes     []int // detection order
	IndividualBlocks int   // broken, non-breaker, non-clustered
	BreakerBlocks    int   // informational only
	ChainMultiplier  int   // 1-based chain position
}

// Key returns the canonical identity of the combo: sorted cluster sizes
// joined by commas, then the individual, breaker and chain counts, e.g.
// "4,4,4_0_0_3". Combos with equal keys always resolve to equal outputs.
func (c Combo) Key() string {
	clusters := "0"
	if len(c.ClusterSizes) > 0 {
		sizes := make([]int, len(c.ClusterSizes))
		copy(sizes, c.ClusterSizes)
		sort.Ints(sizes)
		parts := make([]string, len(sizes))
		for i, s := range sizes {
			parts[i] = fmt.Sprintf("%d", s)
		}
		clusters = strings.Join(parts, ",")
	}
	return fmt.Sprintf("%s_%d_%d_%d", clusters, c.IndividualBlocks, c.BreakerBlocks, c.ChainMultiplier)
}

// Type classifies the combo from its contents.
func (c Combo) Type() ComboType {
	switch {
	case len(c.ClusterSizes) == 0 && c.IndividualBlocks == 0:
		return ComboEmpty
	case len(c.ClusterSizes) > 0 && c.IndividualBlocks == 0:
		return ComboPureCluster
	case len(c.ClusterSizes) == 0:
		return ComboPureIndividual
	default:
		return ComboMixed
	}
}

func (c Combo) String() string {
	clusters := "no_clusters"
	if len(c.ClusterSizes) > 0 {
		clusters = fmt.Sprintf("clusters:%v", c.ClusterSizes)
	}
	return fmt.Sprintf("%s+%dind+%dbreakers@%dx",
		clusters, c.IndividualBlocks, c.BreakerBlocks, c.ChainMultiplier)
}
