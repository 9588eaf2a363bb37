// Package settings holds the player's preferences that several parts of
// the app read and toggle: voice mute and keypad visibility.
package settings

import "sync"

// State is a snapshot of all settings.
type State struct {
	Muted         bool
	KeypadVisible bool
}

// Default returns the settings of a fresh install.
func Default() State {
	return State{Muted: false, KeypadVisible: true}
}

// Settings is the shared settings object. Any holder may toggle a value;
// subscribers are told about every change.
type Settings struct {
	mu     sync.Mutex
	state  State
	subs   map[int]func(State)
	nextID int
}

// New creates Settings starting from initial.
func New(initial State) *Settings {
	return &Settings{state: initial, subs: make(map[int]func(State))}
}

// State returns the current settings.
func (s *Settings) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Muted reports whether spoken questions are off.
func (s *Settings) Muted() bool {
	return s.State().Muted
}

// KeypadVisible reports whether the on-screen keypad is shown.
func (s *Settings) KeypadVisible() bool {
	return s.State().KeypadVisible
}

// SetMuted sets the mute flag.
func (s *Settings) SetMuted(muted bool) {
	s.update(func(st *State) { st.Muted = muted })
}

// SetKeypadVisible sets keypad visibility.
func (s *Settings) SetKeypadVisible(visible bool) {
	s.update(func(st *State) { st.KeypadVisible = visible })
}

// ToggleMuted flips the mute flag and returns the new value.
func (s *Settings) ToggleMuted() bool {
	return s.update(func(st *State) { st.Muted = !st.Muted }).Muted
}

// ToggleKeypad flips keypad visibility and returns the new value.
func (s *Settings) ToggleKeypad() bool {
	return s.update(func(st *State) { st.KeypadVisible = !st.KeypadVisible }).KeypadVisible
}

// Subscribe registers fn to be called with the new state after every
// change. Callbacks run on the goroutine that made the change. The
// returned function removes the subscription.
func (s *Settings) Subscribe(fn func(State)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *Settings) update(mutate func(*State)) State {
	s.mu.Lock()
	prev := s.state
	mutate(&s.state)
	next := s.state
	var subs []func(State)
	if next != prev {
		for _, fn := range s.subs {
			subs = append(subs, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next
}
