package event

// Bus is a double-buffered event queue. Events published during one tick are
// dispatched at the start of the next, so subscribers always observe the
// world state that existed when the tick they react to finished. Accessed
// only from the game loop goroutine; no mutex needed.
type Bus struct {
	handlers []func(any)
	write    []any
	read     []any
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler invoked for every dispatched event. Handlers
// type-switch on the events they care about.
func (b *Bus) Subscribe(fn func(any)) {
	b.handlers = append(b.handlers, fn)
}

// Publish queues an event for dispatch on the next tick.
func (b *Bus) Publish(ev any) {
	b.write = append(b.write, ev)
}

// SwapBuffers promotes the events published since the last swap for
// dispatch. Called once per tick before DispatchAll.
func (b *Bus) SwapBuffers() {
	b.read, b.write = b.write, b.read[:0]
}

// DispatchAll delivers every promoted event to every subscriber, in publish
// order.
func (b *Bus) DispatchAll() {
	for _, ev := range b.read {
		for _, fn := range b.handlers {
			fn(ev)
		}
	}
}
