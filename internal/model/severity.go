package model

import "fmt"

// Severity ranks verification issues.
type Severity int

const (
	// SeverityInfo marks observations that need no action.
	SeverityInfo Severity = iota

	// SeverityWarning marks a page that renders but deviates from its contract,
	// for example a missing icon replaced by a placeholder.
	SeverityWarning

	// SeverityError marks a page that is structurally broken, for example a
	// missing section or more than one visible demo panel.
	SeverityError
)

// String returns the upper-case name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a name written by MarshalText, so JSON reports can be
// read back. Unknown names are rejected.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "INFO":
		*s = SeverityInfo
	case "WARNING":
		*s = SeverityWarning
	case "ERROR":
		*s = SeverityError
	default:
		return fmt.Errorf("unknown severity %q", text)
	}
	return nil
}

// Issue codes produced by page verification.
const (
	IssueMissingSection     = "missing_section"
	IssueVisiblePanels      = "visible_panels"
	IssueNodeCountMismatch  = "node_count_mismatch"
	IssueSelfLoopEdge       = "self_loop_edge"
	IssueInvalidCounter     = "invalid_counter"
	IssueMissingIcon        = "missing_icon"
	IssueMissingAsset       = "missing_asset"
	IssueDanglingAnchor     = "dangling_anchor"
	IssueMissingDescription = "missing_description"
)

// IssueInfo describes an issue code.
type IssueInfo struct {
	Severity       Severity
	Impact         string
	Recommendation string
}

var issueInfoMapping = map[string]IssueInfo{
	IssueMissingSection: {
		Severity:       SeverityError,
		Impact:         "A page section is absent, so navigation anchors and scroll reveals point at nothing.",
		Recommendation: "Check that every section component renders its id.",
	},
	IssueVisiblePanels: {
		Severity:       SeverityError,
		Impact:         "The demo must show exactly one panel; the page shows a different number.",
		Recommendation: "Render every panel except the selected one with the hidden attribute.",
	},
	IssueNodeCountMismatch: {
		Severity:       SeverityError,
		Impact:         "The hero renders a different number of decorative nodes than requested.",
		Recommendation: "Check the --nodes value and the hero graph renderer.",
	},
	IssueSelfLoopEdge: {
		Severity:       SeverityError,
		Impact:         "A decorative edge connects a node to itself and renders as a zero-length line.",
		Recommendation: "Discard self-loops when drawing edges.",
	},
	IssueInvalidCounter: {
		Severity:       SeverityError,
		Impact:         "A stats counter has no parseable target and will stay at zero.",
		Recommendation: "Set data-counter-end to a finite number.",
	},
	IssueMissingIcon: {
		Severity:       SeverityWarning,
		Impact:         "An icon tag is unknown and was replaced by a placeholder.",
		Recommendation: "Use one of the registered icon tags.",
	},
	IssueMissingAsset: {
		Severity:       SeverityError,
		Impact:         "The page links a stylesheet or script that was not written.",
		Recommendation: "Rebuild; the asset step may have been interrupted.",
	},
	IssueDanglingAnchor: {
		Severity:       SeverityInfo,
		Impact:         "A navigation link points at an anchor that no element defines.",
		Recommendation: "Add the section or remove the link.",
	},
	IssueMissingDescription: {
		Severity:       SeverityWarning,
		Impact:         "The page has no meta description, so search results show arbitrary text.",
		Recommendation: "Set site.description in the configuration file.",
	},
}

// GetSeverity returns the severity of an issue code. Unknown codes are SeverityInfo.
func GetSeverity(code string) Severity {
	return GetIssueInfo(code).Severity
}

// GetIssueInfo returns the description of an issue code.
func GetIssueInfo(code string) IssueInfo {
	if info, ok := issueInfoMapping[code]; ok {
		return info
	}
	return IssueInfo{
		Severity:       SeverityInfo,
		Impact:         "Unknown issue type. Review manually.",
		Recommendation: "Inspect the generated page.",
	}
}
