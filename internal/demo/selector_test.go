package demo

import (
	"errors"
	"testing"

	"github.com/nao1215/neuroscan/internal/content"
)

func visibleCount(s *Selector) int {
	n := 0
	for _, step := range s.Steps() {
		if s.Visible(step.ID) {
			n++
		}
	}
	return n
}

func TestSelectorDefaults(t *testing.T) {
	t.Parallel()

	s := NewSelector()
	if s.Selected() != DefaultStep {
		t.Errorf("expected step %d selected, got %d", DefaultStep, s.Selected())
	}
	if visibleCount(s) != 1 {
		t.Errorf("expected exactly one visible panel, got %d", visibleCount(s))
	}
	if s.Playing() {
		t.Error("expected play to be off")
	}
}

func TestSelectorSelect(t *testing.T) {
	t.Parallel()

	t.Run("selecting step 2 shows only the processing panel", func(t *testing.T) {
		t.Parallel()
		s := NewSelector()
		if err := s.Select(2); err != nil {
			t.Fatalf("Select(2): %v", err)
		}
		if s.Current().Status != content.StatusProcessing {
			t.Errorf("expected processing step, got %s", s.Current().Status)
		}
		for _, id := range []int{1, 3} {
			if s.Visible(id) {
				t.Errorf("panel %d must be hidden", id)
			}
		}
		if visibleCount(s) != 1 {
			t.Errorf("expected exactly one visible panel, got %d", visibleCount(s))
		}
	})

	t.Run("unknown id is rejected and keeps selection", func(t *testing.T) {
		t.Parallel()
		s := NewSelector()
		_ = s.Select(3)
		err := s.Select(7)
		if !errors.Is(err, ErrUnknownStep) {
			t.Fatalf("expected ErrUnknownStep, got %v", err)
		}
		if s.Selected() != 3 {
			t.Errorf("expected selection to stay at 3, got %d", s.Selected())
		}
	})

	t.Run("next wraps around", func(t *testing.T) {
		t.Parallel()
		s := NewSelector()
		seen := []int{s.Selected()}
		for range 3 {
			s.Next()
			seen = append(seen, s.Selected())
			if visibleCount(s) != 1 {
				t.Fatal("expected exactly one visible panel")
			}
		}
		want := []int{1, 2, 3, 1}
		for i := range want {
			if seen[i] != want[i] {
				t.Fatalf("expected sequence %v, got %v", want, seen)
			}
		}
	})
}

func TestSelectorScansAndPlay(t *testing.T) {
	t.Parallel()

	s := NewSelector()
	if err := s.SelectScan(2); err != nil {
		t.Fatalf("SelectScan(2): %v", err)
	}
	if err := s.SelectScan(3); !errors.Is(err, ErrUnknownScan) {
		t.Errorf("expected ErrUnknownScan, got %v", err)
	}
	if s.Scan() != 2 {
		t.Errorf("expected scan 2, got %d", s.Scan())
	}
	s.NextScan()
	if s.Scan() != 0 {
		t.Errorf("expected scan to wrap to 0, got %d", s.Scan())
	}
	if !s.TogglePlay() || !s.Playing() {
		t.Error("expected play to toggle on")
	}

	_ = s.Select(3)
	s.Reset()
	if s.Selected() != DefaultStep || s.Scan() != 0 || s.Playing() {
		t.Error("expected Reset to restore defaults")
	}
}
