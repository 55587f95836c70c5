// Package target tracks the host elements help items point at.
//
// The host application owns its elements. It hands them to a [Registry]
// through ref callbacks obtained from [Registry.RegisterTargetItem], calling
// the callback with the element when it is laid out and with nil when it
// goes away:
//
//	ref := registry.RegisterTargetItem("save-button")
//	ref(saveButton) // mounted or moved
//	ref(nil)        // unmounted
//
// Registration never schedules a help render. The help controller reads the
// registry on its own next render, so a target registered during a frame is
// picked up on the frame after it.
//
// The registry also keeps, per target, the set of help items currently
// highlighting it, and applies the [classes.TargetHighlight] class while
// that set is non-empty.
package target
