package navigation

import (
	"maps"

	"github.com/stockpulse-app/stockpulse-backend/pkg/enums"
	pkgerrors "github.com/stockpulse-app/stockpulse-backend/pkg/errors"
)

// DefaultScreen is where back-navigation lands once history is exhausted
// and where the stack starts after a reset.
const DefaultScreen = enums.ScreenDashboard

// Entry is one addressable (screen, params) pair.
type Entry struct {
	Screen enums.Screen      `json:"screen"`
	Params map[string]string `json:"params"`
}

func (e Entry) equals(other Entry) bool {
	return e.Screen == other.Screen && maps.Equal(e.Params, other.Params)
}

// Stack is the view-routing state: the current screen plus an ordered
// history of prior entries. The zero value is not usable; construct
// with NewStack.
type Stack struct {
	current Entry
	history []Entry
}

func NewStack() *Stack {
	return &Stack{current: Entry{Screen: DefaultScreen, Params: map[string]string{}}}
}

// Current returns the active (screen, params) pair.
func (s *Stack) Current() Entry {
	return Entry{Screen: s.current.Screen, Params: maps.Clone(s.current.Params)}
}

// History returns a copy of the prior entries, oldest first.
func (s *Stack) History() []Entry {
	out := make([]Entry, len(s.history))
	for i, entry := range s.history {
		out[i] = Entry{Screen: entry.Screen, Params: maps.Clone(entry.Params)}
	}
	return out
}

// Depth returns the number of history entries.
func (s *Stack) Depth() int {
	return len(s.history)
}

// Navigate pushes the current entry onto history and makes the target
// current. Navigating to the current (screen, params) pair is a no-op:
// no state change, no history push. Params equality is structural.
func (s *Stack) Navigate(target enums.Screen, params map[string]string) {
	if params == nil {
		params = map[string]string{}
	}
	next := Entry{Screen: target, Params: maps.Clone(params)}
	if s.current.equals(next) {
		return
	}
	s.history = append(s.history, s.current)
	s.current = next
}

// GoBack pops the most recent history entry and makes it current. With
// empty history it resets to the default screen; it never errors.
func (s *Stack) GoBack() {
	if len(s.history) == 0 {
		s.current = Entry{Screen: DefaultScreen, Params: map[string]string{}}
		return
	}
	last := len(s.history) - 1
	s.current = s.history[last]
	s.history = s.history[:last]
}

// JumpToHistory makes history[i] current and truncates history to its
// first i entries (breadcrumb click). An out-of-range index is a caller
// bug; it is rejected without touching state.
func (s *Stack) JumpToHistory(i int) error {
	if i < 0 || i >= len(s.history) {
		return pkgerrors.New(pkgerrors.CodeValidation, "history index out of range")
	}
	s.current = s.history[i]
	s.history = s.history[:i]
	return nil
}

// Reset drops all history and returns to the default screen. Used on
// role switch.
func (s *Stack) Reset() {
	s.current = Entry{Screen: DefaultScreen, Params: map[string]string{}}
	s.history = nil
}
