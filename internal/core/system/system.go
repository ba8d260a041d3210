package system

import (
	"sort"
	"time"
)

// Phase orders system execution within one engine tick.
type Phase int

const (
	PhasePreUpdate Phase = iota // event dispatch
	PhaseUpdate                 // game logic
	PhaseOutput                 // hand-off to the transport boundary
)

// System is one tick-driven unit of engine logic.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}

// Runner executes registered systems in phase order each tick. Registration
// order breaks ties within a phase, so execution stays deterministic.
type Runner struct {
	systems []System
}

func NewRunner() *Runner {
	return &Runner{}
}

func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
	sort.SliceStable(r.systems, func(i, j int) bool {
		return r.systems[i].Phase() < r.systems[j].Phase()
	})
}

// Tick runs every system once, in phase order.
func (r *Runner) Tick(dt time.Duration) {
	for _, s := range r.systems {
		s.Update(dt)
	}
}
