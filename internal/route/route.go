package route

import "busview/internal/config"

type Phase int

const (
	PhaseWaiting   Phase = iota // doors open at StationIndex
	PhaseTraveling              // moving toward StationIndex
)

func (p Phase) String() string {
	if p == PhaseTraveling {
		return "traveling"
	}
	return "waiting"
}

// State is the bus on its loop. The main loop owns one and passes it by
// pointer; nothing here is global. The zero value is a bus parked at the
// origin of an empty route: it still cycles phases but never changes station.
type State struct {
	Layout Layout
	Events *EventBus // optional

	StationIndex   int
	Phase          Phase
	SegmentElapsed float64 // valid while traveling
	WaitElapsed    float64 // valid while waiting
	BusPos         Point

	Passengers  int
	Inspecting  bool
	PendingFine int
}

// NewState parks the bus at station 0 with an empty cabin.
func NewState(layout Layout, events *EventBus) *State {
	return &State{
		Layout: layout,
		Events: events,
		Phase:  PhaseWaiting,
		BusPos: layout.StationAt(0),
	}
}

func (s *State) Waiting() bool { return s.Phase == PhaseWaiting }

// Advance moves the simulation forward by dt seconds of wall-clock time.
// Negative dt is treated as zero.
func (s *State) Advance(dt float64) {
	if dt < 0 {
		dt = 0
	}
	switch s.Phase {
	case PhaseWaiting:
		s.WaitElapsed += dt
		if s.WaitElapsed >= config.StationWaitSeconds {
			s.Phase = PhaseTraveling
			s.SegmentElapsed = 0
			s.WaitElapsed = 0
			if n := s.Layout.Len(); n > 0 {
				s.StationIndex = (s.StationIndex + 1) % n
			}
			s.emit(EventDeparted)
		}

	case PhaseTraveling:
		s.SegmentElapsed += dt
		t := s.SegmentElapsed / config.TravelTimeSeconds
		arrived := t >= 1.0
		if arrived {
			t = 1.0
		}
		from := s.Layout.StationAt(s.StationIndex - 1)
		to := s.Layout.StationAt(s.StationIndex)
		s.BusPos = lerp(from, to, float32(t))
		if arrived {
			if s.Inspecting {
				s.resolveInspection()
			}
			s.Phase = PhaseWaiting
			s.WaitElapsed = 0
			s.emit(EventArrived)
		}
	}
}

// resolveInspection removes the fined passengers plus the inspector's own slot.
// The count is not clamped and can go negative.
func (s *State) resolveInspection() {
	fine := s.PendingFine
	s.Passengers -= fine + 1
	s.Inspecting = false
	s.PendingFine = 0
	s.Events.Emit(Event{
		Type:       EventInspectionResolved,
		Station:    s.StationIndex,
		Passengers: s.Passengers,
		Fine:       fine,
	})
}

// BeginInspection boards an inspector and draws the fine from rng. It reports
// whether the command was accepted; it is ignored while traveling or when an
// inspection is already under way.
func (s *State) BeginInspection(rng Intner) bool {
	if !s.Waiting() || s.Inspecting {
		return false
	}
	s.PendingFine = 0
	if s.Passengers != 0 {
		s.PendingFine = rng.Intn(s.Passengers)
	}
	s.Passengers++
	s.Inspecting = true
	s.emit(EventInspectionStarted)
	return true
}

// AddPassenger boards one passenger while waiting, up to MaxPassengers.
func (s *State) AddPassenger() bool {
	if !s.Waiting() || s.Passengers >= config.MaxPassengers {
		return false
	}
	s.Passengers++
	s.emit(EventPassengersChanged)
	return true
}

// RemovePassenger drops one passenger while waiting, never below zero.
func (s *State) RemovePassenger() bool {
	if !s.Waiting() || s.Passengers <= 0 {
		return false
	}
	s.Passengers--
	s.emit(EventPassengersChanged)
	return true
}

func (s *State) emit(t EventType) {
	s.Events.Emit(Event{
		Type:       t,
		Station:    s.StationIndex,
		Passengers: s.Passengers,
		Fine:       s.PendingFine,
	})
}
