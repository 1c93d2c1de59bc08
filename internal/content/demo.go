package content

import "strings"

// StepStatus is the display state of a demo step.
type StepStatus int

const (
	// StatusCompleted marks a step that has already finished.
	StatusCompleted StepStatus = iota
	// StatusProcessing marks the step currently running.
	StatusProcessing
	// StatusPending marks a step that has not started.
	StatusPending
)

// String returns the lowercase status name used in markup and reports.
func (s StepStatus) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusProcessing:
		return "processing"
	case StatusPending:
		return "pending"
	default:
		return "unknown"
	}
}

// Label returns the badge text shown on a step card.
func (s StepStatus) Label() string {
	switch s {
	case StatusCompleted:
		return "Complete"
	case StatusProcessing:
		return "Processing..."
	case StatusPending:
		return "Pending"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the status as its name.
func (s StepStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseStepStatus converts a status name back to a StepStatus.
// The second result is false for unrecognized names.
func ParseStepStatus(name string) (StepStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "completed":
		return StatusCompleted, true
	case "processing":
		return StatusProcessing, true
	case "pending":
		return StatusPending, true
	default:
		return StatusPending, false
	}
}

// DemoStep is one entry of the three-step analysis walkthrough.
type DemoStep struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Status      StepStatus `json:"status"`
	Details     string     `json:"details"`
}

// ChecklistItem is one line of the processing panel.
type ChecklistItem struct {
	Label string `json:"label"`
	// State is "done", "running" or "waiting".
	State string `json:"state"`
}

// Finding is one result tile of the report panel.
type Finding struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Note  string `json:"note"`
	Tone  string `json:"tone"`
}

var demoSteps = []DemoStep{
	{
		ID:          1,
		Title:       "Upload Brain Scan",
		Description: "Drag & drop your NIfTI files (.nii/.nii.gz) or select from our sample scans",
		Icon:        "upload",
		Status:      StatusCompleted,
		Details:     "Supports MRI, CT, PET, and fMRI formats",
	},
	{
		ID:          2,
		Title:       "AI Analysis",
		Description: "Our advanced algorithms process your scan using deep learning models",
		Icon:        "brain",
		Status:      StatusProcessing,
		Details:     "98.7% accuracy with real-time processing",
	},
	{
		ID:          3,
		Title:       "Generate Report",
		Description: "Comprehensive analysis with 3D visualization and detailed findings",
		Icon:        "bar-chart",
		Status:      StatusPending,
		Details:     "Complete neurological assessment",
	},
}

var processingChecklist = []ChecklistItem{
	{Label: "Loading scan data", State: "done"},
	{Label: "Preprocessing images", State: "done"},
	{Label: "Running neural networks", State: "running"},
	{Label: "Generating report", State: "waiting"},
}

// ProcessingProgress is the fixed completion shown by the analysis panel, in percent.
const ProcessingProgress = 68

// BrainVolumeCC is the brain volume displayed by the report panel.
const BrainVolumeCC = 1450

// DemoSteps returns the three demo steps ordered by id.
func DemoSteps() []DemoStep { return clone(demoSteps) }

// ProcessingChecklist returns the lines of the analysis panel.
func ProcessingChecklist() []ChecklistItem { return clone(processingChecklist) }

// ReportFindings returns the result tiles of the report panel.
func ReportFindings() []Finding {
	return []Finding{
		{Title: "Overall Health", Value: "Normal", Note: "95% confidence", Tone: "success"},
		{Title: "Brain Volume", Value: FormatVolume(BrainVolumeCC), Note: "Within normal range", Tone: "medical"},
	}
}

// StepByID returns the demo step with the given id.
func StepByID(id int) (DemoStep, bool) {
	for _, s := range demoSteps {
		if s.ID == id {
			return s, true
		}
	}
	return DemoStep{}, false
}
