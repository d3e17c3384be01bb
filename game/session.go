package game

import "sync"

// Session guards a single GameState for hosts where ticks and input arrive
// on different goroutines. Every call holds the lock for the whole
// read-modify-write, so a tick never observes a half-applied command.
type Session struct {
	mu    sync.Mutex
	state *GameState
}

func NewSession(state *GameState) *Session {
	return &Session{state: state}
}

// Tick runs one Update and returns its result with the post-tick snapshot.
func (s *Session) Tick() (TickResult, Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.state.Update()
	return res, s.state.Snapshot()
}

// Steer applies choose to the current snapshot and feeds the returned
// direction in before the next tick. It is used by autopilots.
func (s *Session) Steer(choose func(Snapshot) (Direction, bool)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Status() != Running {
		return false
	}
	d, ok := choose(s.state.Snapshot())
	if !ok {
		return false
	}
	return s.state.SetDirection(d)
}

// Apply runs a command and returns whether it took effect along with the
// resulting snapshot.
func (s *Session) Apply(c Command) (bool, Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := s.state.Apply(c)
	return changed, s.state.Snapshot()
}

func (s *Session) Resize(rows, columns int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Resize(rows, columns)
	return s.state.Snapshot()
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}
