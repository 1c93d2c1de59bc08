// Package pipeline builds the landing page as an ordered list of steps.
//
// Each step receives the BuildReport accumulated by the steps before it and
// may add files, graph statistics or verification issues to it. A build runs
// prepare_output, write_assets, render_page, verify_page and optionally
// write_robots, in that order. Cancellation is checked between steps.
//
// Asset files are written concurrently through a FileWriter, which bounds the
// number of goroutines with errgroup.
package pipeline
