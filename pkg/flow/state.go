package flow

import (
	"maps"
	"slices"

	"github.com/matzehuels/dynhelp/pkg/errors"
)

// State is an immutable snapshot of every flow and item. The zero value and
// a nil *State are both valid and contain nothing.
type State struct {
	systemEnabled bool
	order         []string
	flows         map[string]Flow
	items         map[string]Item
	itemFlow      map[string]string
}

// NewState returns an empty snapshot.
func NewState(systemEnabled bool) *State {
	return &State{
		systemEnabled: systemEnabled,
		flows:         make(map[string]Flow),
		items:         make(map[string]Item),
		itemFlow:      make(map[string]string),
	}
}

// Build returns a snapshot holding the given flows. Each flow's Items list
// is taken from the order of its items argument, and its active index starts
// at the first item.
func Build(systemEnabled bool, defs ...Definition) (*State, error) {
	s := NewState(systemEnabled)
	var errs []error
	for _, d := range defs {
		if err := s.add(d.Flow, d.Items); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return s, nil
}

// Definition is a flow together with its items, as loaded from a tour file.
type Definition struct {
	Flow  Flow
	Items []Item
}

func (s *State) clone() *State {
	if s == nil {
		return NewState(false)
	}
	return &State{
		systemEnabled: s.systemEnabled,
		order:         slices.Clone(s.order),
		flows:         maps.Clone(s.flows),
		items:         maps.Clone(s.items),
		itemFlow:      maps.Clone(s.itemFlow),
	}
}

func (s *State) add(f Flow, items []Item) error {
	if err := errors.ValidateID("flow", f.ID); err != nil {
		return err
	}
	if _, dup := s.flows[f.ID]; dup {
		return errors.New(errors.ErrCodeDuplicateID, "flow %q defined twice", f.ID)
	}

	ids := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if err := errors.ValidateID("item", it.ID); err != nil {
			return err
		}
		if _, dup := s.items[it.ID]; dup || seen[it.ID] {
			return errors.New(errors.ErrCodeDuplicateID, "item %q defined twice", it.ID)
		}
		seen[it.ID] = true
		ids = append(ids, it.ID)
	}

	f.Items = ids
	f.Active = 0
	if len(ids) == 0 {
		f.Active = NoActive
	}
	s.flows[f.ID] = f
	s.order = append(s.order, f.ID)
	for _, it := range items {
		it.Flow = f.ID
		s.items[it.ID] = it
		s.itemFlow[it.ID] = f.ID
	}
	return nil
}

// SystemEnabled reports the global kill switch.
func (s *State) SystemEnabled() bool {
	return s != nil && s.systemEnabled
}

// Flow returns the flow with the given id.
func (s *State) Flow(id string) (Flow, bool) {
	if s == nil {
		return Flow{}, false
	}
	f, ok := s.flows[id]
	return f, ok
}

// Item returns the item with the given id.
func (s *State) Item(id string) (Item, bool) {
	if s == nil {
		return Item{}, false
	}
	it, ok := s.items[id]
	return it, ok
}

// FlowOf returns the id of the flow owning item, or "".
func (s *State) FlowOf(itemID string) string {
	if s == nil {
		return ""
	}
	return s.itemFlow[itemID]
}

// Lookup returns an item together with its flow. Unknown ids, including
// every id looked up before the state is initialised, yield zero values and
// false: the "no flow, no item" result display code renders as nothing.
func (s *State) Lookup(itemID string) (Flow, Item, bool) {
	it, ok := s.Item(itemID)
	if !ok {
		return Flow{}, Item{}, false
	}
	f, ok := s.Flow(it.Flow)
	if !ok {
		return Flow{}, Item{}, false
	}
	return f, it, true
}

// Flows returns every flow in definition order.
func (s *State) Flows() []Flow {
	if s == nil {
		return nil
	}
	out := make([]Flow, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.flows[id])
	}
	return out
}

// Items returns the items of flow id in flow order.
func (s *State) Items(flowID string) []Item {
	f, ok := s.Flow(flowID)
	if !ok {
		return nil
	}
	out := make([]Item, 0, len(f.Items))
	for _, id := range f.Items {
		out = append(out, s.items[id])
	}
	return out
}

// ActiveItems returns the active item of every flow that has one, in flow
// order. Visibility flags are not consulted.
func (s *State) ActiveItems() []Item {
	var out []Item
	for _, f := range s.Flows() {
		if id := f.ActiveItem(); id != "" {
			out = append(out, s.items[id])
		}
	}
	return out
}

func (s *State) flowOrErr(id string) (Flow, error) {
	f, ok := s.flows[id]
	if !ok {
		return Flow{}, errors.New(errors.ErrCodeFlowNotFound, "no flow %q", id)
	}
	return f, nil
}

func (s *State) itemOrErr(id string) (Item, error) {
	it, ok := s.items[id]
	if !ok {
		return Item{}, errors.New(errors.ErrCodeItemNotFound, "no item %q", id)
	}
	return it, nil
}
