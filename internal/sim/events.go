package sim

type EventKind int

const (
	EventIgnite EventKind = iota
	EventFall
	EventLandDie
	EventDrowning
	EventDrown
	EventLavaDeath
	EventEnterHome
	EventLevelComplete
)

func (k EventKind) String() string {
	switch k {
	case EventIgnite:
		return "ignite"
	case EventFall:
		return "fall"
	case EventLandDie:
		return "land-die"
	case EventDrowning:
		return "drowning"
	case EventDrown:
		return "drown"
	case EventLavaDeath:
		return "lava-death"
	case EventEnterHome:
		return "enter-home"
	case EventLevelComplete:
		return "level-complete"
	}
	return "unknown"
}

type Event struct {
	Kind EventKind
	X, Y int
}

type EventHandler func(Event)

// EventBus delivers events synchronously, in subscription order.
type EventBus struct {
	handlers map[EventKind][]EventHandler
	any      []EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventKind][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(k EventKind, fn EventHandler) {
	eb.handlers[k] = append(eb.handlers[k], fn)
}

// SubscribeAll registers fn for every kind.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	eb.any = append(eb.any, fn)
}

// Emit is safe on a nil bus.
func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Kind] {
		fn(e)
	}
	for _, fn := range eb.any {
		fn(e)
	}
}
