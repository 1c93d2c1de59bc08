package model

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewBuildReport(t *testing.T) {
	t.Parallel()

	r := NewBuildReport("dist")
	if r.OutputDir != "dist" {
		t.Errorf("expected OutputDir 'dist', got %q", r.OutputDir)
	}
	if r.DateBuilt.IsZero() {
		t.Error("expected DateBuilt to be set")
	}
	if r.HasErrors() {
		t.Error("new report should have no errors")
	}
}

func TestBuildReportAddFile(t *testing.T) {
	t.Parallel()

	r := NewBuildReport("dist")
	r.AddFile(OutputFile{Path: "index.html", Size: 10, Hash: "aa"})
	r.AddFile(OutputFile{Path: "assets/app.css", Size: 5, Hash: "bb"})
	r.AddFile(OutputFile{Path: "index.html", Size: 12, Hash: "cc"})

	want := []OutputFile{
		{Path: "assets/app.css", Size: 5, Hash: "bb"},
		{Path: "index.html", Size: 12, Hash: "cc"},
	}
	if diff := cmp.Diff(want, r.Files); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
	if r.TotalBytes() != 17 {
		t.Errorf("expected 17 bytes, got %d", r.TotalBytes())
	}
	if f, ok := r.File("index.html"); !ok || f.Hash != "cc" {
		t.Errorf("File(index.html) = %+v, %v", f, ok)
	}
	if _, ok := r.File("missing"); ok {
		t.Error("expected missing file lookup to fail")
	}
}

func TestBuildReportAddIssue(t *testing.T) {
	t.Parallel()

	t.Run("counts by severity", func(t *testing.T) {
		t.Parallel()

		r := NewBuildReport("dist")
		r.AddIssue(IssueMissingSection, "section #stats not found", "#stats")
		r.AddIssue(IssueMissingIcon, "unknown icon \"dna\"", "#features")
		r.AddIssue(IssueDanglingAnchor, "no element with id pricing", "#pricing")

		if r.ErrorCount != 1 || r.WarningCount != 1 || r.InfoCount != 1 {
			t.Errorf("counts = %d/%d/%d, want 1/1/1", r.ErrorCount, r.WarningCount, r.InfoCount)
		}
		if !r.HasErrors() {
			t.Error("expected HasErrors")
		}
		if got := r.IssuesBySeverity(SeverityWarning); len(got) != 1 || got[0].Code != IssueMissingIcon {
			t.Errorf("IssuesBySeverity(warning) = %+v", got)
		}
	})

	t.Run("ignores duplicates", func(t *testing.T) {
		t.Parallel()

		r := NewBuildReport("dist")
		r.AddIssue(IssueMissingIcon, "unknown icon", "#features")
		r.AddIssue(IssueMissingIcon, "unknown icon", "#features")
		if len(r.Issues) != 1 || r.WarningCount != 1 {
			t.Errorf("expected one issue, got %d (warnings %d)", len(r.Issues), r.WarningCount)
		}
	})
}

func TestBuildReportJSON(t *testing.T) {
	t.Parallel()

	r := NewBuildReport("dist")
	r.AddIssue(IssueVisiblePanels, "2 visible panels", "#demo")
	r.SetError(errors.New("boom"))

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(data)
	for _, want := range []string{`"severity":"ERROR"`, `"error":"boom"`, `"output_dir":"dist"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in %s", want, out)
		}
	}
}

func TestBuildReportJSONRoundTrip(t *testing.T) {
	t.Parallel()

	r := NewBuildReport("dist")
	r.AddIssue(IssueVisiblePanels, "2 visible panels", "#demo")
	r.AddIssue(IssueMissingIcon, "ghost", "#features")
	r.AddIssue(IssueDanglingAnchor, "#pricing", "nav")

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got BuildReport
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(r.Issues, got.Issues); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestSeverityUnmarshalText(t *testing.T) {
	t.Parallel()

	for _, want := range []Severity{SeverityInfo, SeverityWarning, SeverityError} {
		text, err := want.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Severity
		if err := got.UnmarshalText(text); err != nil {
			t.Errorf("UnmarshalText(%s): %v", text, err)
		}
		if got != want {
			t.Errorf("UnmarshalText(%s) = %v, want %v", text, got, want)
		}
	}

	t.Run("rejects unknown names", func(t *testing.T) {
		t.Parallel()
		var s Severity
		for _, name := range []string{"UNKNOWN", "warning", ""} {
			if err := s.UnmarshalText([]byte(name)); err == nil {
				t.Errorf("expected error for %q", name)
			}
		}
	})
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s    Severity
		want string
	}{
		{SeverityInfo, "INFO"},
		{SeverityWarning, "WARNING"},
		{SeverityError, "ERROR"},
		{Severity(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := tt.s.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetIssueInfo(t *testing.T) {
	t.Parallel()

	if GetSeverity(IssueSelfLoopEdge) != SeverityError {
		t.Error("self loops must be errors")
	}
	if GetSeverity(IssueMissingIcon) != SeverityWarning {
		t.Error("missing icons must be warnings")
	}
	info := GetIssueInfo("no_such_issue")
	if info.Severity != SeverityInfo || info.Recommendation == "" {
		t.Errorf("unknown code info = %+v", info)
	}
}
