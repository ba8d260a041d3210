package system

import (
	"time"

	"github.com/CloudTigerx/BladeFighters-sub001/internal/attack"
	"github.com/CloudTigerx/BladeFighters-sub001/internal/core/event"
	coresys "github.com/CloudTigerx/BladeFighters-sub001/internal/core/system"
)

// Sink receives payload units bound for the opponent. The transport layer
// implements it; delivery is a one-way value-copy hand-off with no retry or
// backpressure at this level.
type Sink interface {
	Deliver(units []attack.PayloadUnit)
}

// PayloadOutputSystem flushes one player's pending attacks into the opponent
// sink. Runs in the output phase, after all combo processing, so a
// multi-combo tick ships as a single batch. The queue is cleared only after the sink has
// taken the units.
type PayloadOutputSystem struct {
	engine *attack.System
	sink   Sink
	bus    *event.Bus
}

func NewPayloadOutputSystem(engine *attack.System, sink Sink, bus *event.Bus) *PayloadOutputSystem {
	return &PayloadOutputSystem{engine: engine, sink: sink, bus: bus}
}

func (s *PayloadOutputSystem) Phase() coresys.Phase { return coresys.PhaseOutput }

func (s *PayloadOutputSystem) Update(_ time.Duration) {
	units := s.engine.PendingAttacks()
	if len(units) == 0 {
		return
	}
	s.sink.Deliver(units)
	s.engine.ClearAttacks()
	if s.bus != nil {
		s.bus.Publish(event.PayloadsDelivered{Units: len(units)})
	}
}
