// Package attackdb holds the canonical combo → output lookup table: the
// generated rule set, operator overrides layered on top of it, and the pure
// rule function both are derived from. The table is read-mostly; it is
// loaded once at startup and rewritten synchronously on demand.
package attackdb

import (
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/CloudTigerx/BladeFighters-sub001/internal/attack"
)

// Database maps canonical combo keys to attack outputs. Lookups resolve in
// strict precedence: operator override, then generated table, then on-demand
// computation with the rule function — a miss is never an error.
type Database struct {
	table     map[string]attack.Output
	overrides map[string]attack.Output
	log       *zap.Logger
}

// New returns an empty database.
func New(log *zap.Logger) *Database {
	if log == nil {
		log = zap.NewNop()
	}
	return &Database{
		table:     make(map[string]attack.Output),
		overrides: make(map[string]attack.Output),
		log:       log,
	}
}

// Open loads the table at path. A missing or unreadable file is not fatal:
// when autogen is set the default rule set is regenerated in memory and a
// save is attempted; otherwise the database starts empty and computes
// outputs on demand.
func Open(path string, autogen bool, log *zap.Logger) *Database {
	d := New(log)
	if err := d.LoadFile(path); err != nil {
		d.log.Warn("attack table unavailable", zap.String("path", path), zap.Error(err))
	}
	if len(d.table) == 0 && autogen {
		d.GenerateDefaults()
		if err := d.SaveFile(path); err != nil {
			d.log.Warn("persist regenerated attack table", zap.String("path", path), zap.Error(err))
		}
	}
	d.log.Info("attack database ready", zap.Int("rules", len(d.table)), zap.Int("overrides", len(d.overrides)))
	return d
}

// Len returns the number of generated rules (overrides excluded).
func (d *Database) Len() int {
	return len(d.table)
}

// Lookup returns the stored output for the combo, override first.
func (d *Database) Lookup(c attack.Combo) (attack.Output, bool) {
	key := c.Key()
	if out, ok := d.overrides[key]; ok {
		return out, true
	}
	out, ok := d.table[key]
	return out, ok
}

// CalculateAttackOutput resolves a combo: override, then table, then the
// pure rule function. Computed outputs are cached back into the table so
// identical combos stay identical.
func (d *Database) CalculateAttackOutput(c attack.Combo) attack.Output {
	if out, ok := d.Lookup(c); ok {
		return out
	}
	for _, size := range c.ClusterSizes {
		if _, ok := attack.StrikeShape(size); !ok {
			d.log.Warn("no canonical strike shape for cluster size", zap.Int("size", size))
		}
	}
	out := ComputeOutput(c)
	d.table[c.Key()] = out
	return out
}

// AddAttackRule registers an operator override for the combo. Overrides take
// absolute precedence over generated rules and survive save/load.
func (d *Database) AddAttackRule(c attack.Combo, out attack.Output) {
	key := c.Key()
	d.overrides[key] = out
	d.log.Info("attack rule override registered",
		zap.String("key", key),
		zap.Int("strikes", len(out.Strikes)),
		zap.Int("garbage", out.GarbageBlocks))
}

// ComputeOutput is the pure rule function behind the generated table. Equal
// cluster sizes are grouped; each group's chain-1 shape is scaled for the
// chain position (possibly splitting), and a group occurring more than once
// collapses its repeated strikes into double-width ones instead of stacking
// k separate strikes. Groups contribute in first-seen order.
func ComputeOutput(c attack.Combo) attack.Output {
	type group struct {
		size, count int
	}
	var groups []group
	index := make(map[int]int)
	for _, size := range c.ClusterSizes {
		if i, seen := index[size]; seen {
			groups[i].count++
		} else {
			index[size] = len(groups)
			groups = append(groups, group{size: size, count: 1})
		}
	}

	var strikes []attack.Shape
	for _, g := range groups {
		scaled := attack.ClusterStrikes(g.size, c.ChainMultiplier)
		if g.count > 1 {
			for i := range scaled {
				scaled[i].Width *= 2
			}
		}
		strikes = append(strikes, scaled...)
	}

	garbage := attack.GarbageBlocks(c.IndividualBlocks)
	total := garbage
	for _, s := range strikes {
		total += s.Area()
	}
	return attack.Output{
		Strikes:       strikes,
		GarbageBlocks: garbage,
		ComboType:     c.Type(),
		Description:   c.String(),
		TotalDamage:   total,
	}
}

// Stats summarizes the generated table.
type Stats struct {
	TotalRules int
	Overrides  int
	ByType     map[attack.ComboType]int
	MinDamage  int
	MaxDamage  int
	AvgDamage  float64
}

// Statistics computes counts and the damage distribution over the table.
func (d *Database) Statistics() Stats {
	s := Stats{
		TotalRules: len(d.table),
		Overrides:  len(d.overrides),
		ByType:     make(map[attack.ComboType]int),
	}
	if len(d.table) == 0 {
		return s
	}
	first := true
	sum := 0
	for _, out := range d.table {
		s.ByType[out.ComboType]++
		dmg := out.TotalDamage
		sum += dmg
		if first || dmg < s.MinDamage {
			s.MinDamage = dmg
		}
		if first || dmg > s.MaxDamage {
			s.MaxDamage = dmg
		}
		first = false
	}
	s.AvgDamage = float64(sum) / float64(len(d.table))
	return s
}

// Filter selects table entries in Search. Zero values match everything;
// MaxDamage 0 means no upper bound.
type Filter struct {
	MinDamage       int
	MaxDamage       int
	ComboType       attack.ComboType
	ChainMultiplier int
}

// Entry pairs a canonical key with its stored output.
type Entry struct {
	Key    string
	Output attack.Output
}

// Search linear-scans the generated table. Results are sorted by key so
// repeated searches are stable.
func (d *Database) Search(f Filter) []Entry {
	var results []Entry
	for key, out := range d.table {
		if out.TotalDamage < f.MinDamage {
			continue
		}
		if f.MaxDamage > 0 && out.TotalDamage > f.MaxDamage {
			continue
		}
		if f.ComboType != "" && out.ComboType != f.ComboType {
			continue
		}
		if f.ChainMultiplier > 0 && chainFromKey(key) != f.ChainMultiplier {
			continue
		}
		results = append(results, Entry{Key: key, Output: out})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Key < results[j].Key })
	return results
}

// chainFromKey extracts the chain multiplier, the last _-separated field of
// a canonical key. Returns 0 for malformed keys.
func chainFromKey(key string) int {
	i := strings.LastIndexByte(key, '_')
	if i < 0 {
		return 0
	}
	chain, err := strconv.Atoi(key[i+1:])
	if err != nil {
		return 0
	}
	return chain
}
