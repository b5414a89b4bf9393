package match

// NoPriority marks ActiveResponse.Priority when no player currently holds
// priority (the window is closed).
const NoPriority = -1

// AREntry is one pushed Action card awaiting LIFO resolution.
type AREntry struct {
	PlayerIndex int
	CardID      string
	Timestamp   int64
}

// ActiveResponse is the shared priority-window state machine. Blue mana on both PlayerStates must be zero whenever Active is
// false.
type ActiveResponse struct {
	Active   bool
	Priority int // NoPriority or a player index
	Stack    []AREntry
	TimerMs  int
	Passed   map[int]bool // players who have consecutively passed
}

// DefaultWindowMs is the countdown a freshly opened or extended Active
// Response window resets to.
const DefaultWindowMs = 5000

// Open starts (or the caller is extending) the Active Response window.
func (ar *ActiveResponse) Open(byPlayer int) {
	ar.Active = true
	ar.Priority = Opponent(byPlayer)
	ar.TimerMs = DefaultWindowMs
	ar.Passed = nil
}

// Push adds an entry to the stack and flips priority to the other player,
// resetting the pass set and timer.
func (ar *ActiveResponse) Push(entry AREntry) {
	ar.Stack = append(ar.Stack, entry)
	ar.Priority = Opponent(entry.PlayerIndex)
	ar.TimerMs = DefaultWindowMs
	ar.Passed = nil
}

// RecordPass marks player as having passed without adding to the stack.
// Returns true if both players have now passed consecutively (or the stack
// is empty and the one pass suffices), meaning the window should resolve.
func (ar *ActiveResponse) RecordPass(player int) bool {
	if ar.Passed == nil {
		ar.Passed = make(map[int]bool, 2)
	}
	ar.Passed[player] = true
	if len(ar.Stack) == 0 {
		return true
	}
	return ar.Passed[0] && ar.Passed[1]
}

// FlipPriorityAfterPass hands priority to the other player and clears
// nothing else; used when a single pass has arrived and the window must
// stay open for the other side to respond.
func (ar *ActiveResponse) FlipPriorityAfterPass(passer int) {
	ar.Priority = Opponent(passer)
}

// Close resets the Active Response to its closed, zeroed state.
func (ar *ActiveResponse) Close() {
	ar.Active = false
	ar.Priority = NoPriority
	ar.Stack = nil
	ar.TimerMs = 0
	ar.Passed = nil
}

// NewestEntryFrom returns the index of the most recently pushed entry
// belonging to player with cost <= maxCost (per the card's resolved
// definition, supplied via costOf), or -1 if none qualifies. Used by
// negate_action / negate_and_return.
func (ar *ActiveResponse) NewestEntryFrom(player int, maxCost int, costOf func(cardID string) int) int {
	for i := len(ar.Stack) - 1; i >= 0; i-- {
		e := ar.Stack[i]
		if e.PlayerIndex != player {
			continue
		}
		if maxCost > 0 && costOf(e.CardID) > maxCost {
			continue
		}
		return i
	}
	return -1
}

// RemoveAt removes and returns the entry at idx.
func (ar *ActiveResponse) RemoveAt(idx int) AREntry {
	e := ar.Stack[idx]
	ar.Stack = append(ar.Stack[:idx], ar.Stack[idx+1:]...)
	return e
}
