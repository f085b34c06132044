// pkg/platform/lifecycle_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"errors"
	"slices"
	"testing"

	"github.com/kjunichi/node-glfw/pkg/event"
)

// fakeWindows stands in for the native window system.
type fakeWindows struct {
	monitors   int
	next       Handle
	live       bool
	w, h       int
	creates    int
	resizes    int
	destroys   int
	failCreate error
}

func (f *fakeWindows) monitorCount() int { return f.monitors }

func (f *fakeWindows) create(width, height int, title string, monitor int) (Handle, error) {
	if f.failCreate != nil {
		return 0, f.failCreate
	}
	f.creates++
	f.next += 0x1000
	f.live, f.w, f.h = true, width, height
	return f.next, nil
}

func (f *fakeWindows) resize(width, height int) {
	f.resizes++
	f.w, f.h = width, height
}

func (f *fakeWindows) size() (int, int) { return f.w, f.h }

func (f *fakeWindows) destroy() {
	f.destroys++
	f.live = false
}

type names []string

func (n *names) Emit(name string, ev event.Event) { *n = append(*n, name) }

type sizeRecorder struct{ w, h int }

func (s *sizeRecorder) SetDisplaySize(w, h int) { s.w, s.h = w, h }

func newFakePlatform() (*Platform, *fakeWindows) {
	fw := &fakeWindows{monitors: 1}
	p := &Platform{}
	p.init(fw)
	return p, fw
}

func TestWindowLifecycle(t *testing.T) {
	p, fw := newFakePlatform()
	sizes := &sizeRecorder{}
	p.SetOverlay(sizes)

	// First create makes the window.
	var first, second names
	h1, err := p.CreateWindow(640, 480, "one", -1, &first)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if h1 == 0 || fw.creates != 1 || !p.Context().State.WindowCreated {
		t.Fatalf("first create: handle %x, creates %d", h1, fw.creates)
	}
	if sizes.w != 640 || sizes.h != 480 {
		t.Errorf("overlay display size %dx%d, expected 640x480", sizes.w, sizes.h)
	}

	// Second create resizes and swaps the receiver.
	h2, err := p.CreateWindow(1024, 768, "two", -1, &second)
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if h2 != h1 || fw.creates != 1 || fw.resizes != 1 {
		t.Errorf("second create: handle %x (was %x), creates %d, resizes %d", h2, h1, fw.creates, fw.resizes)
	}
	if w, h := p.currentSize(); w != 1024 || h != 768 {
		t.Errorf("size after resize %dx%d", w, h)
	}

	p.Context().Encoder.Close()
	p.Dispatch(p.Context().Encoder.Drain())
	if len(first) != 0 {
		t.Errorf("replaced receiver got %v", first)
	}
	if !slices.Equal(second, names{"quit"}) {
		t.Errorf("new receiver got %v", second)
	}

	// A stale handle doesn't destroy anything.
	p.DestroyWindow(h1 + 1)
	if fw.destroys != 0 {
		t.Errorf("stale handle destroyed the window")
	}

	// Destroy clears the created state.
	p.DestroyWindow(h1)
	if fw.destroys != 1 || fw.live || p.Context().State.WindowCreated {
		t.Errorf("destroy: destroys %d, live %v, created %v", fw.destroys, fw.live,
			p.Context().State.WindowCreated)
	}
	p.DestroyWindow(h1)
	if fw.destroys != 1 {
		t.Errorf("second destroy reached the window system")
	}

	// Create after destroy makes a new window.
	h3, err := p.CreateWindow(320, 200, "three", -1, &first)
	if err != nil {
		t.Fatalf("re-create: %v", err)
	}
	if fw.creates != 2 || h3 == h1 || !p.Context().State.WindowCreated {
		t.Errorf("re-create: creates %d, handle %x (old %x)", fw.creates, h3, h1)
	}
}

func TestCreateWindowErrors(t *testing.T) {
	p, fw := newFakePlatform()

	if _, err := p.CreateWindow(640, 480, "x", 1, nil); !errors.Is(err, ErrInvalidMonitor) {
		t.Errorf("monitor 1 of 1: got %v, expected ErrInvalidMonitor", err)
	}

	fw.failCreate = errors.New("no display")
	var r names
	if _, err := p.CreateWindow(640, 480, "x", -1, &r); err == nil {
		t.Errorf("expected create failure")
	}
	if p.Context().State.WindowCreated || p.Context().Dispatcher.Receiver() != nil {
		t.Errorf("failed create left state behind")
	}

	if _, err := (&Platform{}).CreateWindow(1, 1, "x", -1, nil); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("uninitialized platform: got %v", err)
	}
}
