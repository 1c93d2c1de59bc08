// Package model defines the data produced by a neuroscan build.
//
//   - BuildReport: what a build wrote, how long it took and what it found
//   - OutputFile: one written file with its size and content hash
//   - Issue: a problem found while verifying the rendered page
//
// The types live in their own package so that pipeline and report can share
// them without importing each other. They serialize to JSON for --json.
package model
