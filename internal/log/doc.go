// Package log builds the slog loggers used by neuroscan.
//
// Every logger wraps its handler in a RedactingHandler that masks values of
// sensitive attributes before they reach the output. Site verification codes,
// tokens and secrets can appear in configuration and would otherwise leak
// into verbose build logs.
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("metadata loaded", "verification", cfg.Site.Verification)
//	// verification=***REDACTED***
//
// Verbose loggers log at Debug level. Otherwise only warnings and errors are
// printed.
package log
