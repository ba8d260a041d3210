package system

import (
	"time"

	"github.com/CloudTigerx/BladeFighters-sub001/internal/attack"
	coresys "github.com/CloudTigerx/BladeFighters-sub001/internal/core/system"
)

// ComboRequest is queued by the grid engine when a match resolves and
// processed by AttackSystem in the Update phase.
type ComboRequest struct {
	Blocks        []attack.Block
	Clusters      []int // cluster sizes from DetectClusters
	ChainPosition int   // 1-based position in the cascade
}

// ComboQueue accepts combo requests for deferred processing.
type ComboQueue interface {
	QueueCombo(req ComboRequest)
}

// AttackSystem drains queued combo requests through one player's attack
// engine in deterministic order. The grid engine calls QueueCombo during its
// own update; the resulting payload units accumulate on the engine's pending
// queue until the payload output phase ships them.
type AttackSystem struct {
	engine   *attack.System
	requests []ComboRequest
}

func NewAttackSystem(engine *attack.System) *AttackSystem {
	return &AttackSystem{engine: engine}
}

func (s *AttackSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

// QueueCombo implements ComboQueue.
func (s *AttackSystem) QueueCombo(req ComboRequest) {
	s.requests = append(s.requests, req)
}

func (s *AttackSystem) Update(_ time.Duration) {
	for _, req := range s.requests {
		clusters := req.Clusters
		if clusters == nil {
			clusters = s.engine.DetectClusters(req.Blocks)
		}
		s.engine.ProcessCombo(req.Blocks, clusters, req.ChainPosition)
	}
	s.requests = s.requests[:0]
}
