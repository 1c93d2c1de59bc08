package model

import (
	"slices"
	"strings"
	"time"
)

// BuildReport collects the outcome of one build. Pipeline steps fill it in
// order; report writers render it.
type BuildReport struct {
	// OutputDir is the directory the site was written to.
	OutputDir string `json:"output_dir"`

	// DateBuilt is when the build started.
	DateBuilt time.Time `json:"date_built"`

	// Duration is the wall-clock time of the build.
	Duration time.Duration `json:"duration"`

	// Seed is the graph seed, 0 when the graph was drawn from a fresh source.
	Seed uint64 `json:"seed"`

	// NodeCount and EdgeCount describe the rendered decorative graph.
	NodeCount int `json:"node_count"`
	EdgeCount int `json:"edge_count"`

	// Sections lists the page section ids in render order.
	Sections []string `json:"sections,omitempty"`

	// Stylesheet and Script are the fingerprinted asset paths relative to
	// OutputDir. They are set by the asset step and linked by the page.
	Stylesheet string `json:"stylesheet,omitempty"`
	Script     string `json:"script,omitempty"`

	// Files lists every written file.
	Files []OutputFile `json:"files,omitempty"`

	// Issues lists verification problems.
	Issues []Issue `json:"issues,omitempty"`

	// ErrorCount, WarningCount and InfoCount count Issues by severity.
	ErrorCount   int `json:"error_count"`
	WarningCount int `json:"warning_count"`
	InfoCount    int `json:"info_count"`

	// PerformedSteps lists the pipeline steps that completed.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// Cancelled is true when the build stopped on a cancelled context.
	Cancelled bool `json:"cancelled"`

	// Error is the first step failure, if any.
	Error error `json:"-"`

	// ErrorMessage is Error as a string for serialization.
	ErrorMessage string `json:"error,omitempty"` //nolint:tagliatelle // error is conventional
}

// OutputFile is a file written by the build.
type OutputFile struct {
	// Path is relative to the output directory, slash separated.
	Path string `json:"path"`

	// Size is the file size in bytes.
	Size int64 `json:"size"`

	// Hash is the hex BLAKE2b-256 digest of the content.
	Hash string `json:"hash"`
}

// Issue is one verification finding.
type Issue struct {
	Code     string   `json:"code"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	// Location is a CSS-like pointer into the page, e.g. "#demo".
	Location string `json:"location,omitempty"`
}

// NewBuildReport creates a report for a build into outputDir.
func NewBuildReport(outputDir string) *BuildReport {
	return &BuildReport{
		OutputDir: outputDir,
		DateBuilt: time.Now(),
	}
}

// AddFile records a written file, replacing an earlier entry with the same path.
func (r *BuildReport) AddFile(f OutputFile) {
	if i := slices.IndexFunc(r.Files, func(e OutputFile) bool { return e.Path == f.Path }); i >= 0 {
		r.Files[i] = f
		return
	}
	r.Files = append(r.Files, f)
	slices.SortFunc(r.Files, func(a, b OutputFile) int { return strings.Compare(a.Path, b.Path) })
}

// AddIssue records an issue with the severity of its code. Duplicates by
// code, message and location are ignored.
func (r *BuildReport) AddIssue(code, message, location string) {
	for _, i := range r.Issues {
		if i.Code == code && i.Message == message && i.Location == location {
			return
		}
	}
	issue := Issue{
		Code:     code,
		Severity: GetSeverity(code),
		Message:  message,
		Location: location,
	}
	r.Issues = append(r.Issues, issue)

	switch issue.Severity {
	case SeverityError:
		r.ErrorCount++
	case SeverityWarning:
		r.WarningCount++
	case SeverityInfo:
		r.InfoCount++
	}
}

// SetError records err as the build failure.
func (r *BuildReport) SetError(err error) {
	r.Error = err
	if err != nil {
		r.ErrorMessage = err.Error()
	}
}

// File returns the entry for path.
func (r *BuildReport) File(path string) (OutputFile, bool) {
	i := slices.IndexFunc(r.Files, func(e OutputFile) bool { return e.Path == path })
	if i < 0 {
		return OutputFile{}, false
	}
	return r.Files[i], true
}

// TotalBytes sums the sizes of all written files.
func (r *BuildReport) TotalBytes() int64 {
	var n int64
	for _, f := range r.Files {
		n += f.Size
	}
	return n
}

// HasErrors reports whether verification found an error-level issue.
func (r *BuildReport) HasErrors() bool {
	return r.ErrorCount > 0
}

// IssuesBySeverity returns the issues of the given severity in insertion order.
func (r *BuildReport) IssuesBySeverity(s Severity) []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Severity == s {
			out = append(out, i)
		}
	}
	return out
}
