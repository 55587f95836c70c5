package bridge

import (
	"sync"
	"testing"
)

func TestChannelZeroValue(t *testing.T) {
	var c Channel[string]
	v, ver := c.Load()
	if v != "" || ver != 0 {
		t.Errorf("Load() = %q, %d; want empty, 0", v, ver)
	}
	if !c.Publish("a") {
		t.Error("first Publish should report a change")
	}
	if v, ver = c.Load(); v != "a" || ver != 1 {
		t.Errorf("Load() = %q, %d; want a, 1", v, ver)
	}
}

func TestChannelSameSuppressesVersion(t *testing.T) {
	c := New(0, func(a, b int) bool { return a == b })

	tests := []struct {
		publish int
		changed bool
		version uint64
	}{
		{1, true, 1},
		{1, false, 1},
		{2, true, 2},
		{2, false, 2},
		{1, true, 3},
	}
	for _, tt := range tests {
		if got := c.Publish(tt.publish); got != tt.changed {
			t.Errorf("Publish(%d) = %t, want %t", tt.publish, got, tt.changed)
		}
		if _, ver := c.Load(); ver != tt.version {
			t.Errorf("after Publish(%d) version = %d, want %d", tt.publish, ver, tt.version)
		}
	}
}

func TestChannelFirstPublishOfInitialCounts(t *testing.T) {
	c := New(5, func(a, b int) bool { return a == b })
	if !c.Publish(5) {
		t.Error("publishing the initial value once should still deliver it")
	}
}

func TestChannelSince(t *testing.T) {
	c := New("", nil)
	_, seen, changed := c.Since(0)
	if changed {
		t.Error("nothing published yet")
	}
	c.Publish("api")
	v, seen, changed := c.Since(seen)
	if !changed || v != "api" {
		t.Errorf("Since() = %q, %t; want api, true", v, changed)
	}
	if _, _, changed = c.Since(seen); changed {
		t.Error("second read of the same version should not report a change")
	}
}

func TestChannelConcurrent(t *testing.T) {
	c := New(0, nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Publish(i)
				c.Load()
			}
		}(i)
	}
	wg.Wait()
	if _, ver := c.Load(); ver != 800 {
		t.Errorf("version = %d, want 800", ver)
	}
}
