package target

import (
	"sync"
	"testing"

	"github.com/matzehuels/dynhelp/pkg/classes"
	"github.com/matzehuels/dynhelp/pkg/geometry"
)

var buttonRect = geometry.Rect{Top: 100, Bottom: 120, Left: 50, Right: 150}

func TestRegisterAndUnregister(t *testing.T) {
	r := NewRegistry(nil)
	box := NewBox(buttonRect)

	ref := r.RegisterTargetItem("save")
	ref(box)

	got, ok := r.Lookup("save")
	if !ok {
		t.Fatal("Lookup(save) = false after registration")
	}
	if got.Element != Element(box) {
		t.Error("Lookup returned a different element")
	}
	if !box.HasClass(classes.Target) {
		t.Errorf("registered box classes = %v, want %s", box.Classes(), classes.Target)
	}

	ref(nil)
	if _, ok := r.Lookup("save"); ok {
		t.Error("Lookup(save) = true after unregistration")
	}
	if box.HasClass(classes.Target) {
		t.Error("unregistered box still carries the target class")
	}

	// Unregistering twice is harmless.
	ref(nil)
	r.RegisterTargetItem("never-registered")(nil)
}

func TestRegisterTargetItemReusesCallback(t *testing.T) {
	r := NewRegistry(nil)
	a := r.RegisterTargetItem("save")
	b := r.RegisterTargetItem("save")

	a(NewBox(buttonRect))
	v := r.Version()
	b(nil)
	if r.Version() == v {
		t.Error("second callback did not act on the same target")
	}
}

func TestBounds(t *testing.T) {
	r := NewRegistry(nil)
	box := NewBox(buttonRect)
	r.RegisterTargetItem("save")(box)

	b, ok := r.Bounds("save")
	if !ok || b != buttonRect {
		t.Errorf("Bounds() = %v, %v; want %v, true", b, ok, buttonRect)
	}

	box.Hide()
	if _, ok := r.Bounds("save"); ok {
		t.Error("Bounds() of a hidden box should not be measurable")
	}

	if _, ok := r.Bounds("missing"); ok {
		t.Error("Bounds() of an unknown target should be false")
	}
}

func TestElementFunc(t *testing.T) {
	r := NewRegistry(nil)
	rect := geometry.RectAt(1, 2, 3, 4)
	r.RegisterTargetItem("fn")(ElementFunc(func() geometry.Rect { return rect }))

	// Re-registering a func element must not compare it.
	r.RegisterTargetItem("fn")(ElementFunc(func() geometry.Rect { return rect }))

	if b, ok := r.Bounds("fn"); !ok || b != rect {
		t.Errorf("Bounds() = %v, %v", b, ok)
	}
}

func TestHighlightMarkers(t *testing.T) {
	r := NewRegistry(nil)
	box := NewBox(buttonRect)
	r.RegisterTargetItem("save")(box)

	r.Highlight("save", "intro")
	r.Highlight("save", "tip")
	if !box.HasClass(classes.TargetHighlight) {
		t.Fatal("highlight class missing with two markers")
	}

	r.Unhighlight("save", "intro")
	if !box.HasClass(classes.TargetHighlight) {
		t.Error("highlight class removed while a second item still highlights")
	}
	if !r.Highlighted("save") {
		t.Error("Highlighted() = false with one marker left")
	}

	r.Unhighlight("save", "tip")
	if box.HasClass(classes.TargetHighlight) {
		t.Error("highlight class still present after last marker removed")
	}
	if r.Highlighted("save") {
		t.Error("Highlighted() = true with no markers")
	}

	// Unknown pairs are ignored.
	r.Unhighlight("save", "tip")
	r.Unhighlight("missing", "tip")
}

func TestHighlightSurvivesRemount(t *testing.T) {
	r := NewRegistry(nil)
	ref := r.RegisterTargetItem("save")
	first := NewBox(buttonRect)
	ref(first)
	r.Highlight("save", "intro")

	second := NewBox(buttonRect)
	ref(second)

	if first.HasClass(classes.TargetHighlight) || first.HasClass(classes.Target) {
		t.Errorf("replaced element kept classes %v", first.Classes())
	}
	if !second.HasClass(classes.TargetHighlight) {
		t.Errorf("new element classes = %v, want highlight", second.Classes())
	}

	got, _ := r.Lookup("save")
	if len(got.Highlighters) != 1 || got.Highlighters[0] != "intro" {
		t.Errorf("Highlighters = %v, want [intro]", got.Highlighters)
	}
}

func TestEntryRemovedWhenUnusedAndUnregistered(t *testing.T) {
	r := NewRegistry(nil)
	ref := r.RegisterTargetItem("save")
	ref(NewBox(buttonRect))
	r.Highlight("save", "intro")

	ref(nil)
	if !r.Highlighted("save") {
		t.Error("markers should survive unmount while the item still renders")
	}

	r.Unhighlight("save", "intro")
	r.mu.Lock()
	_, present := r.targets["save"]
	r.mu.Unlock()
	if present {
		t.Error("entry should be removed once unregistered and unhighlighted")
	}
}

func TestIDs(t *testing.T) {
	r := NewRegistry(nil)
	r.RegisterTargetItem("b")(NewBox(buttonRect))
	r.RegisterTargetItem("a")(NewBox(buttonRect))
	r.Highlight("ghost", "x")

	ids := r.IDs()
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("IDs() = %v, want [a b]", ids)
	}
}

func TestConcurrentRegistration(t *testing.T) {
	r := NewRegistry(nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ref := r.RegisterTargetItem("shared")
			for j := 0; j < 100; j++ {
				ref(NewBox(buttonRect))
				r.Highlight("shared", "intro")
				r.Unhighlight("shared", "intro")
				ref(nil)
			}
		}()
	}
	wg.Wait()

	if _, ok := r.Lookup("shared"); ok {
		t.Error("target should be unregistered after all goroutines finish")
	}
}
