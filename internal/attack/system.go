package attack

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/CloudTigerx/BladeFighters-sub001/internal/core/event"
)

// OutputResolver resolves a combo into its attack output. Satisfied by
// *attackdb.Database; when absent the System falls back to the pure
// calculator formulas.
type OutputResolver interface {
	CalculateAttackOutput(Combo) Output
}

// System is one player's attack engine. It turns resolved combos into
// payload units bound for the opponent and keeps them queued until the
// transport boundary drains them. The puzzle engine invokes it sequentially
// from its update loop, so it needs no internal locking; each player in a
// match owns an independent instance.
type System struct {
	gridWidth int
	maxChain  int
	rotator   *ColumnRotator
	resolver  OutputResolver
	pending   []PayloadUnit
	log       *zap.Logger
	bus       *event.Bus
}

// NewSystem builds an attack system in calculator-only mode. maxChain caps
// the chain multiplier applied to any single combo; values below 1 fall back
// to the default cap of 10.
func NewSystem(gridWidth, maxChain int, log *zap.Logger) *System {
	if maxChain < 1 {
		maxChain = 10
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &System{
		gridWidth: gridWidth,
		maxChain:  maxChain,
		rotator:   NewColumnRotator(gridWidth),
		log:       log,
	}
}

// SetBus attaches an event bus; the system publishes a ComboResolved event
// per processed combo and an AttacksCleared event when the queue drains.
func (s *System) SetBus(bus *event.Bus) {
	s.bus = bus
}

// EnableDatabase routes output resolution through the given database,
// replacing calculator-only mode. Idempotent.
func (s *System) EnableDatabase(r OutputResolver) {
	s.resolver = r
	s.log.Info("attack database enabled")
}

// DisableDatabase reverts to calculator-only resolution.
func (s *System) DisableDatabase() {
	s.resolver = nil
	s.log.Info("attack database disabled, using fallback calculations")
}

// DetectClusters delegates to the cluster detector. Pure, no mutation.
func (s *System) DetectClusters(blocks []Block) []int {
	return DetectClusters(blocks)
}

// ProcessCombo converts one elimination event into payload units: each
// garbage block becomes its own unit with a rotator-assigned target column,
// and each strike footprint becomes one strike unit. The new units are
// appended to the pending queue and returned.
func (s *System) ProcessCombo(blocks []Block, clusters []int, chainPosition int) []PayloadUnit {
	if chainPosition < 1 {
		chainPosition = 1
	}
	chain := chainPosition
	if chain > s.maxChain {
		chain = s.maxChain
	}

	_, individual, breakers := Categorize(blocks)
	combo := Combo{
		ClusterSizes:     clusters,
		IndividualBlocks: len(individual),
		BreakerBlocks:    len(breakers),
		ChainMultiplier:  chain,
	}

	var out Output
	if s.resolver != nil {
		out = s.resolver.CalculateAttackOutput(combo)
	} else {
		out = s.fallbackOutput(combo)
	}

	units := make([]PayloadUnit, 0, len(out.Strikes)+out.GarbageBlocks)
	for _, shape := range out.Strikes {
		units = append(units, PayloadUnit{
			Kind:            PayloadStrike,
			Count:           shape.Area(),
			Shape:           shape,
			ChainMultiplier: chain,
		})
	}
	// One unit per garbage block: batching them would let the whole volley
	// land in a single column and defeat the rotation fairness.
	for i := 0; i < out.GarbageBlocks; i++ {
		units = append(units, PayloadUnit{
			Kind:            PayloadGarbage,
			Count:           1,
			TargetColumn:    s.rotator.Next(),
			ChainMultiplier: chain,
		})
	}
	s.pending = append(s.pending, units...)

	s.log.Debug("combo processed",
		zap.String("key", combo.Key()),
		zap.String("combo_type", string(out.ComboType)),
		zap.Int("strikes", len(out.Strikes)),
		zap.Int("garbage", out.GarbageBlocks),
		zap.Int("chain", chain))
	if s.bus != nil {
		s.bus.Publish(event.ComboResolved{
			Key:             combo.Key(),
			ComboType:       string(out.ComboType),
			Strikes:         len(out.Strikes),
			GarbageBlocks:   out.GarbageBlocks,
			ChainMultiplier: chain,
			TotalDamage:     out.TotalDamage,
		})
	}
	return units
}

// fallbackOutput is calculator-only resolution: per-cluster shape lookup and
// chain scaling, without the database's cluster-combination rules.
func (s *System) fallbackOutput(c Combo) Output {
	var strikes []Shape
	for _, size := range c.ClusterSizes {
		scaled := ClusterStrikes(size, c.ChainMultiplier)
		if scaled == nil {
			s.log.Warn("no canonical strike shape for cluster size", zap.Int("size", size))
			continue
		}
		strikes = append(strikes, scaled...)
	}
	garbage := GarbageBlocks(c.IndividualBlocks)
	total := garbage
	for _, sh := range strikes {
		total += sh.Area()
	}
	return Output{
		Strikes:       strikes,
		GarbageBlocks: garbage,
		ComboType:     c.Type(),
		Description:   c.String(),
		TotalDamage:   total,
	}
}

// PendingAttacks returns a snapshot of the queued payload units.
func (s *System) PendingAttacks() []PayloadUnit {
	return append([]PayloadUnit(nil), s.pending...)
}

// ClearAttacks empties the pending queue. Called only after the transport
// boundary has handed the units to the opponent.
func (s *System) ClearAttacks() {
	n := len(s.pending)
	s.pending = s.pending[:0]
	if n > 0 && s.bus != nil {
		s.bus.Publish(event.AttacksCleared{Units: n})
	}
}

// AttackSummary renders the pending queue for display, grouping strikes by
// footprint.
func (s *System) AttackSummary() string {
	if len(s.pending) == 0 {
		return "No attacks pending"
	}

	strikeCounts := make(map[Shape]int)
	var shapeOrder []Shape
	garbage := 0
	for _, u := range s.pending {
		switch u.Kind {
		case PayloadStrike:
			if strikeCounts[u.Shape] == 0 {
				shapeOrder = append(shapeOrder, u.Shape)
			}
			strikeCounts[u.Shape]++
		case PayloadGarbage:
			garbage += u.Count
		}
	}
	sort.Slice(shapeOrder, func(i, j int) bool {
		return shapeOrder[i].Area() > shapeOrder[j].Area()
	})

	var parts []string
	for _, shape := range shapeOrder {
		parts = append(parts, fmt.Sprintf("%dx %s strike", strikeCounts[shape], shape))
	}
	if garbage > 0 {
		parts = append(parts, fmt.Sprintf("%d garbage blocks", garbage))
	}
	return strings.Join(parts, " + ")
}
