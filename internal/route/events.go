package route

import "log/slog"

type EventType int

const (
	EventArrived EventType = iota // doors open at a station
	EventDeparted
	EventPassengersChanged
	EventInspectionStarted
	EventInspectionResolved
	numEventTypes
)

func (t EventType) String() string {
	switch t {
	case EventArrived:
		return "arrived"
	case EventDeparted:
		return "departed"
	case EventPassengersChanged:
		return "passengers"
	case EventInspectionStarted:
		return "inspection started"
	case EventInspectionResolved:
		return "inspection resolved"
	}
	return "unknown"
}

type Event struct {
	Type       EventType
	Station    int
	Passengers int
	Fine       int
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventType(0); t < numEventTypes; t++ {
		eb.Subscribe(t, fn)
	}
}

// Emit is a no-op on a nil bus.
func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

// LogEvents writes one status line per event to logger.
func LogEvents(eb *EventBus, logger *slog.Logger) {
	eb.Subscribe(EventArrived, func(e Event) {
		logger.Debug("arrived", "station", e.Station, "passengers", e.Passengers)
	})
	eb.Subscribe(EventDeparted, func(e Event) {
		logger.Debug("departed", "toward", e.Station, "passengers", e.Passengers)
	})
	eb.Subscribe(EventPassengersChanged, func(e Event) {
		logger.Info("passenger count", "passengers", e.Passengers)
	})
	eb.Subscribe(EventInspectionStarted, func(e Event) {
		logger.Info("inspection started", "passengers", e.Passengers)
	})
	eb.Subscribe(EventInspectionResolved, func(e Event) {
		logger.Info("inspection resolved", "fine", e.Fine, "passengers", e.Passengers)
	})
}
