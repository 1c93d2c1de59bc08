// Package demo tracks the state of the interactive three-step walkthrough.
//
// The walkthrough is hand-authored: the only state is which of the preset
// steps is selected, which sample scan is highlighted and whether the
// decorative play button is toggled. Exactly one step panel is visible at a time.
package demo

import (
	"errors"
	"fmt"

	"github.com/nao1215/neuroscan/internal/content"
)

// ErrUnknownStep is returned when selecting a step id that does not exist.
var ErrUnknownStep = errors.New("unknown demo step")

// ErrUnknownScan is returned when selecting a sample scan index out of range.
var ErrUnknownScan = errors.New("unknown sample scan")

// DefaultStep is the step selected when the page loads.
const DefaultStep = 1

// Selector holds the walkthrough state. The zero value is not usable; call NewSelector.
type Selector struct {
	steps    []content.DemoStep
	selected int
	scans    int
	scan     int
	playing  bool
}

// NewSelector returns a selector over the preset steps with DefaultStep selected.
func NewSelector() *Selector {
	return &Selector{
		steps:    content.DemoSteps(),
		selected: DefaultStep,
		scans:    len(content.SampleScans()),
	}
}

// Select makes the step with the given id the visible panel.
// Unknown ids leave the selection unchanged.
func (s *Selector) Select(id int) error {
	for _, step := range s.steps {
		if step.ID == id {
			s.selected = id
			return nil
		}
	}
	return fmt.Errorf("%w: %d", ErrUnknownStep, id)
}

// Selected returns the id of the visible step.
func (s *Selector) Selected() int { return s.selected }

// Current returns the visible step.
func (s *Selector) Current() content.DemoStep {
	for _, step := range s.steps {
		if step.ID == s.selected {
			return step
		}
	}
	return s.steps[0]
}

// Visible reports whether the panel of step id is shown.
func (s *Selector) Visible(id int) bool { return id == s.selected }

// Steps returns the preset steps in display order.
func (s *Selector) Steps() []content.DemoStep {
	out := make([]content.DemoStep, len(s.steps))
	copy(out, s.steps)
	return out
}

// Next selects the following step, wrapping around after the last one.
func (s *Selector) Next() {
	for i, step := range s.steps {
		if step.ID == s.selected {
			s.selected = s.steps[(i+1)%len(s.steps)].ID
			return
		}
	}
}

// SelectScan highlights the sample scan at index.
func (s *Selector) SelectScan(index int) error {
	if index < 0 || index >= s.scans {
		return fmt.Errorf("%w: %d", ErrUnknownScan, index)
	}
	s.scan = index
	return nil
}

// Scan returns the highlighted sample scan index.
func (s *Selector) Scan() int { return s.scan }

// NextScan cycles the highlighted sample scan.
func (s *Selector) NextScan() {
	if s.scans > 0 {
		s.scan = (s.scan + 1) % s.scans
	}
}

// TogglePlay flips the play button and returns the new state.
func (s *Selector) TogglePlay() bool {
	s.playing = !s.playing
	return s.playing
}

// Playing reports whether the play button is toggled on.
func (s *Selector) Playing() bool { return s.playing }

// Reset restores the initial state.
func (s *Selector) Reset() {
	s.selected = DefaultStep
	s.scan = 0
	s.playing = false
}
