package router

// StackEntry is a screen the user can return to.
type StackEntry struct {
	Screen Screen
	Input  any
	Resume any // Screen state to restore, nil for stateless screens
}

// Stack is the navigation history.
type Stack struct {
	entries []StackEntry
}

func NewStack() *Stack {
	return &Stack{}
}

// Push records a screen before navigating away from it.
func (s *Stack) Push(screen Screen, input any, resume any) {
	s.entries = append(s.entries, StackEntry{Screen: screen, Input: input, Resume: resume})
}

// Pop removes and returns the newest entry, or nil.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the newest entry without removing it, or nil.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// Back pops the newest entry and returns it as a transition target. With
// an empty stack it returns ScreenExit. Screens that need their resume
// state read it from Peek before calling Back, or use Pop directly.
func (s *Stack) Back() (Screen, any) {
	entry := s.Pop()
	if entry == nil {
		return ScreenExit, nil
	}
	return entry.Screen, entry.Input
}

func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s *Stack) Len() int {
	return len(s.entries)
}

func (s *Stack) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}
