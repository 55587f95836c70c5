package flow

import (
	"fmt"
	"slices"

	"github.com/matzehuels/dynhelp/pkg/errors"
)

// Action is a state transition. Actions are applied to a private copy of the
// current snapshot; an action returning an error leaves the store untouched.
type Action interface {
	apply(s *State) error
	fmt.Stringer
}

// EnableHelp toggles the system-wide switch.
type EnableHelp struct{ Enabled bool }

func (a EnableHelp) apply(s *State) error {
	s.systemEnabled = a.Enabled
	return nil
}

func (a EnableHelp) String() string { return fmt.Sprintf("EnableHelp(%t)", a.Enabled) }

// EnableFlow toggles a flow's enabled flag. Disabling is how "skip" and
// "don't show again" are expressed: the flow stays hidden whatever happens
// to its active index afterwards.
type EnableFlow struct {
	Flow    string
	Enabled bool
}

func (a EnableFlow) apply(s *State) error {
	f, err := s.flowOrErr(a.Flow)
	if err != nil {
		return err
	}
	f.Enabled = a.Enabled
	s.flows[f.ID] = f
	return nil
}

func (a EnableFlow) String() string { return fmt.Sprintf("EnableFlow(%s, %t)", a.Flow, a.Enabled) }

// ShowFlow sets a flow's visible flag.
type ShowFlow struct {
	Flow    string
	Visible bool
}

func (a ShowFlow) apply(s *State) error {
	f, err := s.flowOrErr(a.Flow)
	if err != nil {
		return err
	}
	f.Visible = a.Visible
	s.flows[f.ID] = f
	return nil
}

func (a ShowFlow) String() string { return fmt.Sprintf("ShowFlow(%s, %t)", a.Flow, a.Visible) }

// EnableItem toggles an item's enabled flag.
type EnableItem struct {
	Item    string
	Enabled bool
}

func (a EnableItem) apply(s *State) error {
	it, err := s.itemOrErr(a.Item)
	if err != nil {
		return err
	}
	it.Enabled = a.Enabled
	s.items[it.ID] = it
	return nil
}

func (a EnableItem) String() string { return fmt.Sprintf("EnableItem(%s, %t)", a.Item, a.Enabled) }

// ShowItem sets an item's visible flag.
type ShowItem struct {
	Item    string
	Visible bool
}

func (a ShowItem) apply(s *State) error {
	it, err := s.itemOrErr(a.Item)
	if err != nil {
		return err
	}
	it.Visible = a.Visible
	s.items[it.ID] = it
	return nil
}

func (a ShowItem) String() string { return fmt.Sprintf("ShowItem(%s, %t)", a.Item, a.Visible) }

// Advance moves a flow to its next item. Advancing from the last item
// completes the flow (active index NoActive); advancing a complete flow does
// nothing.
type Advance struct{ Flow string }

func (a Advance) apply(s *State) error {
	f, err := s.flowOrErr(a.Flow)
	if err != nil {
		return err
	}
	if f.Active == NoActive {
		return nil
	}
	f.Active++
	if f.Active >= len(f.Items) {
		f.Active = NoActive
	}
	s.flows[f.ID] = f
	return nil
}

func (a Advance) String() string { return fmt.Sprintf("Advance(%s)", a.Flow) }

// Retreat moves a flow back one item. It does nothing on the first item or
// on a complete flow.
type Retreat struct{ Flow string }

func (a Retreat) apply(s *State) error {
	f, err := s.flowOrErr(a.Flow)
	if err != nil {
		return err
	}
	if f.Active > 0 {
		f.Active--
		s.flows[f.ID] = f
	}
	return nil
}

func (a Retreat) String() string { return fmt.Sprintf("Retreat(%s)", a.Flow) }

// SetActive jumps a flow to an index, or to NoActive.
type SetActive struct {
	Flow  string
	Index int
}

func (a SetActive) apply(s *State) error {
	f, err := s.flowOrErr(a.Flow)
	if err != nil {
		return err
	}
	if a.Index != NoActive && (a.Index < 0 || a.Index >= len(f.Items)) {
		return errors.New(errors.ErrCodeInvalidInput, "flow %q has no item at index %d", a.Flow, a.Index)
	}
	f.Active = a.Index
	s.flows[f.ID] = f
	return nil
}

func (a SetActive) String() string { return fmt.Sprintf("SetActive(%s, %d)", a.Flow, a.Index) }

// ActivateItem jumps the owning flow to the given item.
type ActivateItem struct{ Item string }

func (a ActivateItem) apply(s *State) error {
	it, err := s.itemOrErr(a.Item)
	if err != nil {
		return err
	}
	f, err := s.flowOrErr(it.Flow)
	if err != nil {
		return err
	}
	return SetActive{Flow: f.ID, Index: slices.Index(f.Items, it.ID)}.apply(s)
}

func (a ActivateItem) String() string { return fmt.Sprintf("ActivateItem(%s)", a.Item) }

// AddFlow appends a flow definition.
type AddFlow struct{ Definition Definition }

func (a AddFlow) apply(s *State) error {
	return s.add(a.Definition.Flow, a.Definition.Items)
}

func (a AddFlow) String() string { return fmt.Sprintf("AddFlow(%s)", a.Definition.Flow.ID) }

// Load replaces the whole state, e.g. after a tour file was edited.
type Load struct{ State *State }

func (a Load) apply(s *State) error {
	next := a.State.clone()
	*s = *next
	return nil
}

func (a Load) String() string { return "Load" }

// Reset returns the store to its reset point. It is handled by the store
// itself, since the reset point is not part of a snapshot.
type Reset struct{}

func (Reset) apply(*State) error { return nil }

func (Reset) String() string { return "Reset" }
