package event

// --- Attack resolution events (emitted during Update, readable next tick) ---

// ComboResolved is published once per elimination event after the attack
// system expands it into payload units.
// Subscribers: test-mode flow tracker, future replay/telemetry systems.
type ComboResolved struct {
	Key             string
	ComboType       string
	Strikes         int
	GarbageBlocks   int
	ChainMultiplier int
	TotalDamage     int
}

// AttacksCleared is published when the transport boundary drains a player's
// pending queue.
type AttacksCleared struct {
	Units int
}

// PayloadsDelivered is published by the payload output system after handing
// a batch of units to the opponent sink.
type PayloadsDelivered struct {
	Units int
}
