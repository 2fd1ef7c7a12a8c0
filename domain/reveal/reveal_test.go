package reveal

import (
	"fmt"
	"sort"
	"testing"
	"time"
)

// fakeScheduler records callbacks; tests fire them explicitly in offset order.
type fakeScheduler struct {
	next      int
	callbacks map[string]scheduled
	cancelled []string
}

type scheduled struct {
	at time.Duration
	fn func()
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{callbacks: make(map[string]scheduled)}
}

func (s *fakeScheduler) After(d time.Duration, fn func()) string {
	s.next++
	id := fmt.Sprintf("after#%d", s.next)
	s.callbacks[id] = scheduled{at: d, fn: fn}
	return id
}

func (s *fakeScheduler) Cancel(id string) {
	if _, ok := s.callbacks[id]; ok {
		delete(s.callbacks, id)
		s.cancelled = append(s.cancelled, id)
	}
}

// fireUntil runs every callback scheduled at or before limit, in time order.
func (s *fakeScheduler) fireUntil(limit time.Duration) {
	ids := make([]string, 0, len(s.callbacks))
	for id, cb := range s.callbacks {
		if cb.at <= limit {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return s.callbacks[ids[i]].at < s.callbacks[ids[j]].at })
	for _, id := range ids {
		cb, ok := s.callbacks[id]
		if !ok {
			continue
		}
		delete(s.callbacks, id)
		cb.fn()
	}
}

// immediateScheduler fires callbacks synchronously inside After.
type immediateScheduler struct{ n int }

func (s *immediateScheduler) After(d time.Duration, fn func()) string {
	s.n++
	fn()
	return fmt.Sprintf("now#%d", s.n)
}
func (s *immediateScheduler) Cancel(string) {}

func TestFrames_LengthOffsetsAndContent(t *testing.T) {
	const delta = 100 * time.Millisecond
	text := "Optimising\n(1) truck"
	frames := Frames(text, delta)
	if len(frames) != len([]rune(text))+1 {
		t.Fatalf("expected %d frames, got %d", len([]rune(text))+1, len(frames))
	}
	seen := make(map[string]bool)
	for i, f := range frames {
		if f.Offset != time.Duration(i)*delta {
			t.Fatalf("frame %d offset %v, want %v", i, f.Offset, time.Duration(i)*delta)
		}
		if i > 0 && f.Offset <= frames[i-1].Offset {
			t.Fatalf("offsets not strictly increasing at %d", i)
		}
		if seen[f.Text] {
			t.Fatalf("duplicate state %q", f.Text)
		}
		seen[f.Text] = true
	}
	if frames[0].Text != "" {
		t.Fatalf("first frame should be empty, got %q", frames[0].Text)
	}
	if frames[len(frames)-1].Text != text {
		t.Fatalf("last frame should be full text, got %q", frames[len(frames)-1].Text)
	}
}

func TestFrames_MultibyteRunes(t *testing.T) {
	frames := Frames("→ ok", time.Millisecond)
	if len(frames) != 5 {
		t.Fatalf("expected 5 frames for 4 runes, got %d", len(frames))
	}
	if frames[1].Text != "→" {
		t.Fatalf("second frame should hold the whole arrow rune, got %q", frames[1].Text)
	}
}

func TestFrames_EmptyText(t *testing.T) {
	frames := Frames("", time.Second)
	if len(frames) != 1 || frames[0].Text != "" || frames[0].Offset != 0 {
		t.Fatalf("unexpected frames for empty text: %+v", frames)
	}
}

func TestAnimator_RevealsInOrder(t *testing.T) {
	sched := newFakeScheduler()
	a := NewAnimator(sched, 100*time.Millisecond, nil)
	var shown []string
	done := 0
	a.Start("abc", func(s string) { shown = append(shown, s) }, func() { done++ })

	if a.Pending() != 4 || !a.Running() {
		t.Fatalf("expected 4 pending frames while running, got %d running=%v", a.Pending(), a.Running())
	}
	sched.fireUntil(150 * time.Millisecond)
	if len(shown) != 2 || shown[0] != "" || shown[1] != "a" {
		t.Fatalf("unexpected partial reveal %q", shown)
	}
	sched.fireUntil(time.Second)
	want := []string{"", "a", "ab", "abc"}
	if fmt.Sprint(shown) != fmt.Sprint(want) {
		t.Fatalf("expected %q got %q", want, shown)
	}
	if done != 1 || a.Running() || a.Pending() != 0 {
		t.Fatalf("expected finished reveal: done=%d running=%v pending=%d", done, a.Running(), a.Pending())
	}
}

func TestAnimator_StopCancelsPending(t *testing.T) {
	sched := newFakeScheduler()
	a := NewAnimator(sched, 100*time.Millisecond, nil)
	var shown []string
	a.Start("hello", func(s string) { shown = append(shown, s) }, nil)
	sched.fireUntil(100 * time.Millisecond) // "", "h"

	a.Stop()
	if len(sched.cancelled) != 4 {
		t.Fatalf("expected 4 cancelled callbacks, got %d", len(sched.cancelled))
	}
	if len(sched.callbacks) != 0 || a.Pending() != 0 || a.Running() {
		t.Fatalf("callbacks remain after stop: %d pending=%d", len(sched.callbacks), a.Pending())
	}
	sched.fireUntil(time.Hour)
	if len(shown) != 2 {
		t.Fatalf("no frame may be shown after stop, got %q", shown)
	}
	a.Stop() // idempotent
}

func TestAnimator_RestartDropsStaleFrames(t *testing.T) {
	sched := newFakeScheduler()
	a := NewAnimator(sched, 10*time.Millisecond, nil)
	var shown []string
	show := func(s string) { shown = append(shown, s) }
	a.Start("xyz", show, nil)
	a.Start("ab", show, nil)
	sched.fireUntil(time.Second)
	if fmt.Sprint(shown) != fmt.Sprint([]string{"", "a", "ab"}) {
		t.Fatalf("expected only second reveal, got %q", shown)
	}
}

func TestAnimator_SynchronousScheduler(t *testing.T) {
	a := NewAnimator(&immediateScheduler{}, time.Millisecond, nil)
	var last string
	a.Start("go", func(s string) { last = s }, nil)
	if last != "go" || a.Pending() != 0 || a.Running() {
		t.Fatalf("unexpected state: last=%q pending=%d running=%v", last, a.Pending(), a.Running())
	}
}

func TestAnimator_NilSafe(t *testing.T) {
	var a *Animator
	a.Start("x", func(string) {}, nil)
	a.Stop()
	if a.Running() || a.Pending() != 0 {
		t.Fatalf("nil animator should be inert")
	}
}
