package listkit

import (
	"maps"
	"slices"

	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
)

// selection is the current index and selected set under a mode. It holds
// no reference to the items; callers pass the item count where bounds
// matter.
type selection struct {
	mode     constants.SelectionMode
	current  int
	selected map[int]struct{}
}

func newSelection(mode constants.SelectionMode) selection {
	return selection{
		mode:     mode,
		current:  NoIndex,
		selected: make(map[int]struct{}),
	}
}

func (s *selection) isSelected(index int) bool {
	_, ok := s.selected[index]
	return ok
}

func (s *selection) indices() []int {
	return slices.Sorted(maps.Keys(s.selected))
}

func (s *selection) snapshot() map[int]struct{} {
	return maps.Clone(s.selected)
}

func (s *selection) sameAs(before map[int]struct{}) bool {
	return maps.Equal(s.selected, before)
}

func (s *selection) reset() {
	clear(s.selected)
	s.current = NoIndex
}

// collapse makes the selected set {current}, or empty without a current index.
func (s *selection) collapse() {
	clear(s.selected)
	if s.current != NoIndex {
		s.selected[s.current] = struct{}{}
	}
}

// setMode applies the transition rules between selection modes.
func (s *selection) setMode(mode constants.SelectionMode) {
	s.mode = mode
	switch mode {
	case constants.SelectionNone:
		s.reset()
	case constants.SelectionSingle:
		s.collapse()
	case constants.SelectionMulti:
		// Existing selection carries over.
	}
}

func (s *selection) toggle(index int) {
	if s.isSelected(index) {
		delete(s.selected, index)
		return
	}
	s.selected[index] = struct{}{}
}

func (s *selection) only(index int) {
	clear(s.selected)
	s.selected[index] = struct{}{}
}

// extend adds the inclusive range between the current index and index,
// keeping everything already selected.
func (s *selection) extend(index int) {
	if s.current == NoIndex {
		s.only(index)
		return
	}
	lo, hi := min(s.current, index), max(s.current, index)
	for i := lo; i <= hi; i++ {
		s.selected[i] = struct{}{}
	}
}

// applyClick updates the selected set for a Multi mode click. The caller
// moves the current index afterwards.
func (s *selection) applyClick(index int, mods constants.Modifier) {
	switch {
	case mods.Has(constants.ModCtrl):
		s.toggle(index)
	case mods.Has(constants.ModShift):
		s.extend(index)
	default:
		s.only(index)
	}
}

// removed renumbers state after the item at index is gone and count items
// remain. It reports whether the current index was the removed item and
// whether the set of selected items (not just their indices) changed.
func (s *selection) removed(index, count int) (currentHit, selectionHit bool) {
	renumbered := make(map[int]struct{}, len(s.selected))
	for i := range s.selected {
		switch {
		case i == index:
			selectionHit = true
		case i > index:
			renumbered[i-1] = struct{}{}
		default:
			renumbered[i] = struct{}{}
		}
	}
	s.selected = renumbered

	switch {
	case s.current == index:
		currentHit = true
		if count == 0 {
			s.current = NoIndex
		} else if s.current >= count {
			s.current = count - 1
		}
	case s.current > index:
		s.current--
	}

	if s.mode == constants.SelectionSingle {
		before := s.snapshot()
		s.collapse()
		if !s.sameAs(before) {
			selectionHit = true
		}
	}
	return currentHit, selectionHit
}
