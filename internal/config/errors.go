package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrNoOutputDir is returned when the output directory is empty.
	ErrNoOutputDir = errors.New("no output directory specified")

	// ErrInvalidNodeCount is returned when the node count is negative or above MaxNodeCount.
	ErrInvalidNodeCount = errors.New("invalid node count: must be between 0 and 500")

	// ErrInvalidMaxConnections is returned when the fan-out is negative or above MaxConnectionsLimit.
	ErrInvalidMaxConnections = errors.New("invalid max connections: must be between 0 and 10")

	// ErrInvalidCounterDuration is returned when the counter duration is negative.
	ErrInvalidCounterDuration = errors.New("invalid counter duration: must be non-negative")

	// ErrInvalidAssetConcurrency is returned when the asset concurrency is not positive.
	ErrInvalidAssetConcurrency = errors.New("invalid asset concurrency: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidURL is returned when the site URL override is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("invalid site url: must be an absolute http or https URL")
)
