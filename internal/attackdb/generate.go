package attackdb

import (
	"go.uber.org/zap"

	"github.com/CloudTigerx/BladeFighters-sub001/internal/attack"
)

// canonicalSizes are the cluster sizes with a defined chain-1 strike shape.
var canonicalSizes = []int{4, 6, 8, 9, 12, 16}

// pureClusterSets are the cluster combinations seeded at every chain
// position, from single clusters through the stacked same-size combos that
// competitive play produces.
var pureClusterSets = [][]int{
	// single clusters
	{4}, {6}, {8}, {9}, {12}, {16},
	// mixed-size pairs and triples
	{4, 6}, {4, 9}, {6, 6}, {9, 9},
	{16, 4}, {16, 6}, {16, 9}, {16, 16},
	{12, 12}, {9, 9, 4},
	// stacked same-size runs
	{4, 4}, {4, 4, 4}, {4, 4, 4, 4}, {4, 4, 4, 4, 4}, {4, 4, 4, 4, 4, 4},
	{6, 6, 6}, {6, 6, 6, 6},
	{9, 9, 9}, {9, 9, 9, 9},
	{16, 16, 16},
}

// stackedSets additionally get mixed individual/breaker variants.
var stackedSets = [][]int{
	{4, 4, 4}, {4, 4, 4, 4}, {4, 4, 4, 4, 4},
	{6, 6, 6},
	{9, 9, 9},
}

// GenerateDefaults populates the table with the default rule set: canonical
// cluster combinations crossed with a bounded range of chain multipliers and
// small individual/breaker counts. Every stored output comes from
// ComputeOutput, so regeneration is deterministic.
func (d *Database) GenerateDefaults() {
	store := func(clusters []int, individuals, breakers, chain int) {
		c := attack.Combo{
			ClusterSizes:     clusters,
			IndividualBlocks: individuals,
			BreakerBlocks:    breakers,
			ChainMultiplier:  chain,
		}
		d.table[c.Key()] = ComputeOutput(c)
	}

	// Pure cluster combos across the full competitive chain range.
	for _, clusters := range pureClusterSets {
		for chain := 1; chain <= 8; chain++ {
			store(clusters, 0, 0, chain)
		}
	}

	// Single clusters with individual blocks and breakers mixed in.
	for _, size := range canonicalSizes {
		for individuals := 1; individuals <= 10; individuals++ {
			for breakers := 0; breakers <= 4 && breakers <= individuals; breakers++ {
				for chain := 1; chain <= 5; chain++ {
					store([]int{size}, individuals, breakers, chain)
				}
			}
		}
	}

	// Stacked same-size combos with a few loose blocks.
	for _, clusters := range stackedSets {
		for individuals := 0; individuals <= 4; individuals++ {
			for breakers := 0; breakers <= 2 && breakers <= individuals; breakers++ {
				for chain := 1; chain <= 5; chain++ {
					store(clusters, individuals, breakers, chain)
				}
			}
		}
	}

	// Individual-only combos.
	for individuals := 1; individuals <= 11; individuals++ {
		for breakers := 0; breakers <= 4 && breakers <= individuals; breakers++ {
			for chain := 1; chain <= 8; chain++ {
				store(nil, individuals, breakers, chain)
			}
		}
	}

	d.log.Info("default attack table generated", zap.Int("rules", len(d.table)))
}
