package attack

import (
	"reflect"
	"testing"

	"github.com/CloudTigerx/BladeFighters-sub001/internal/core/event"
)

func newTestSystem() *System {
	return NewSystem(6, 10, nil)
}

func TestProcessComboSingleCluster(t *testing.T) {
	sys := newTestSystem()
	blocks := square(0, 0, 2, 2, "red")
	clusters := sys.DetectClusters(blocks)

	units := sys.ProcessCombo(blocks, clusters, 1)
	if len(units) != 1 {
		t.Fatalf("got %d units, want 1", len(units))
	}
	u := units[0]
	if u.Kind != PayloadStrike || u.Shape != (Shape{1, 4}) || u.Count != 4 || u.ChainMultiplier != 1 {
		t.Errorf("unit = %+v, want 1x4 strike at 1x", u)
	}
}

func TestProcessComboMixed(t *testing.T) {
	sys := newTestSystem()
	blocks := square(0, 0, 2, 2, "red")
	blocks = append(blocks,
		Block{X: 5, Y: 0, Type: "green"},
		Block{X: 0, Y: 9, Type: "blue"},
		Block{X: 4, Y: 4, Type: "red_breaker"},
	)
	clusters := sys.DetectClusters(blocks)

	units := sys.ProcessCombo(blocks, clusters, 1)
	if len(units) != 2 {
		t.Fatalf("got %d units, want strike + garbage", len(units))
	}
	if units[0].Kind != PayloadStrike || units[0].Shape != (Shape{1, 4}) {
		t.Errorf("first unit = %+v, want 1x4 strike", units[0])
	}
	// max(1, 2/2) = 1 garbage; the breaker contributes nothing.
	if units[1].Kind != PayloadGarbage || units[1].Count != 1 {
		t.Errorf("second unit = %+v, want one garbage block", units[1])
	}
	if units[1].TargetColumn != 0 {
		t.Errorf("first garbage column = %d, want 0 (rotation start)", units[1].TargetColumn)
	}
}

func TestProcessComboGarbageNeverBatched(t *testing.T) {
	sys := newTestSystem()
	// Five loose blocks, no clusters: max(1, 5/2) = 2 garbage blocks.
	blocks := []Block{
		{0, 0, "red"}, {2, 3, "green"}, {4, 1, "blue"}, {1, 7, "yellow"}, {5, 9, "red"},
	}
	units := sys.ProcessCombo(blocks, nil, 1)
	if len(units) != 2 {
		t.Fatalf("got %d units, want 2 garbage", len(units))
	}
	cols := []int{units[0].TargetColumn, units[1].TargetColumn}
	if !reflect.DeepEqual(cols, []int{0, 5}) {
		t.Errorf("target columns = %v, want [0 5]", cols)
	}
	for _, u := range units {
		if u.Kind != PayloadGarbage || u.Count != 1 {
			t.Errorf("unit = %+v, want single garbage block", u)
		}
	}
}

func TestProcessComboEmpty(t *testing.T) {
	sys := newTestSystem()
	if units := sys.ProcessCombo(nil, nil, 1); len(units) != 0 {
		t.Errorf("empty combo produced %d units", len(units))
	}
	breakers := []Block{{0, 0, "red_breaker"}, {1, 0, "blue_breaker"}}
	if units := sys.ProcessCombo(breakers, nil, 2); len(units) != 0 {
		t.Errorf("breaker-only combo produced %d units", len(units))
	}
}

func TestProcessComboChainCap(t *testing.T) {
	sys := NewSystem(6, 3, nil)
	blocks := square(0, 0, 2, 2, "red")
	units := sys.ProcessCombo(blocks, []int{4}, 99)
	if len(units) != 1 {
		t.Fatalf("got %d units, want 1", len(units))
	}
	if units[0].Shape != (Shape{1, 12}) || units[0].ChainMultiplier != 3 {
		t.Errorf("unit = %+v, want 1x12 at capped 3x", units[0])
	}
}

func TestProcessComboChainScaling(t *testing.T) {
	tests := []struct {
		chain int
		want  Shape
	}{
		{1, Shape{1, 4}},
		{2, Shape{1, 8}},
		{3, Shape{1, 12}},
	}
	for _, tt := range tests {
		sys := newTestSystem()
		units := sys.ProcessCombo(square(0, 0, 2, 2, "red"), []int{4}, tt.chain)
		if len(units) != 1 || units[0].Shape != tt.want {
			t.Errorf("chain %d: units = %+v, want one %s strike", tt.chain, units, tt.want)
		}
	}
}

type fixedResolver struct {
	out Output
}

func (r fixedResolver) CalculateAttackOutput(Combo) Output { return r.out }

func TestProcessComboUsesResolver(t *testing.T) {
	sys := newTestSystem()
	sys.EnableDatabase(fixedResolver{out: Output{
		Strikes:       []Shape{{2, 12}},
		GarbageBlocks: 1,
		ComboType:     ComboPureCluster,
		TotalDamage:   25,
	}})

	units := sys.ProcessCombo(square(0, 0, 2, 2, "red"), []int{4}, 3)
	if len(units) != 2 {
		t.Fatalf("got %d units, want 2", len(units))
	}
	if units[0].Shape != (Shape{2, 12}) {
		t.Errorf("strike = %+v, want resolver's 2x12", units[0])
	}

	sys.DisableDatabase()
	units = sys.ProcessCombo(square(0, 0, 2, 2, "red"), []int{4}, 1)
	if len(units) != 1 || units[0].Shape != (Shape{1, 4}) {
		t.Errorf("after disable: units = %+v, want fallback 1x4", units)
	}
}

func TestPendingQueue(t *testing.T) {
	sys := newTestSystem()
	sys.ProcessCombo(square(0, 0, 2, 2, "red"), []int{4}, 1)
	sys.ProcessCombo(square(0, 0, 3, 3, "blue"), []int{9}, 2)

	pending := sys.PendingAttacks()
	if len(pending) != 2 {
		t.Fatalf("pending = %d units, want 2", len(pending))
	}

	// The snapshot must be detached from the live queue.
	pending[0].Count = 999
	if sys.PendingAttacks()[0].Count == 999 {
		t.Error("PendingAttacks returned the live slice")
	}

	sys.ClearAttacks()
	if len(sys.PendingAttacks()) != 0 {
		t.Error("queue not empty after ClearAttacks")
	}
}

func TestAttackSummary(t *testing.T) {
	sys := newTestSystem()
	if got := sys.AttackSummary(); got != "No attacks pending" {
		t.Errorf("empty summary = %q", got)
	}

	blocks := square(0, 0, 2, 2, "red")
	blocks = append(blocks, Block{X: 5, Y: 9, Type: "green"}, Block{X: 0, Y: 8, Type: "blue"})
	sys.ProcessCombo(blocks, []int{4}, 1)
	if got, want := sys.AttackSummary(), "1x 1x4 strike + 1 garbage blocks"; got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}

func TestProcessComboPublishesEvents(t *testing.T) {
	sys := newTestSystem()
	bus := event.NewBus()
	sys.SetBus(bus)

	var resolved []event.ComboResolved
	bus.Subscribe(func(ev any) {
		if cr, ok := ev.(event.ComboResolved); ok {
			resolved = append(resolved, cr)
		}
	})

	sys.ProcessCombo(square(0, 0, 2, 2, "red"), []int{4}, 1)
	bus.SwapBuffers()
	bus.DispatchAll()

	if len(resolved) != 1 {
		t.Fatalf("got %d ComboResolved events, want 1", len(resolved))
	}
	if resolved[0].Key != "4_0_0_1" || resolved[0].Strikes != 1 {
		t.Errorf("event = %+v", resolved[0])
	}
}
