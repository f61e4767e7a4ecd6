package router

// MaxHistory bounds the stack; the oldest entries are dropped first.
const MaxHistory = 32

// StackEntry is a page that was navigated away from.
type StackEntry struct {
	Key   string
	Index int
}

// Stack manages navigation history for back navigation.
type Stack struct {
	entries []StackEntry
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0),
	}
}

// Push records key as the most recent page left. Pushing the key already on
// top only updates its index.
func (s *Stack) Push(key string, index int) {
	if top := s.Peek(); top != nil && top.Key == key {
		top.Index = index
		return
	}
	if len(s.entries) == MaxHistory {
		s.entries = append(s.entries[:0], s.entries[1:]...)
	}
	s.entries = append(s.entries, StackEntry{Key: key, Index: index})
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}

// retain drops entries for which keep returns false and re-indexes the rest.
func (s *Stack) retain(keep func(e *StackEntry) bool) {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if keep(&e) {
			kept = append(kept, e)
		}
	}
	s.entries = kept
}
