// Package flow models help flows, their items and the rules deciding which
// item is on screen.
//
// A [State] is an immutable snapshot: flows in definition order, items keyed
// by id, and the system-wide enabled switch. A [Store] owns the current
// snapshot and changes it only through [Action] values passed to
// [Store.Dispatch]; each dispatch builds the next snapshot and swaps it in
// under a lock, so a reader never sees a flow with zero or two active items
// mid-transition.
//
// Visibility is a pure derivation over a snapshot and the target registry:
//
//	visible = system enabled
//	      && flow enabled && flow visible
//	      && item enabled && item visible
//	      && item is the flow's active item
//	      && item's target is registered and measurable
//
// [Explain] reports every term separately; [EffectiveVisible] folds them.
package flow
