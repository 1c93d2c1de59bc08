// Package main provides the entry point for the NeuroScan CLI.
//
// NeuroScan generates the static landing page of NeuroScan Pro, an
// AI-assisted neuroimaging platform. The page is written as plain HTML with
// fingerprinted CSS and JavaScript assets, ready for any static host.
//
// Usage:
//
//	neuroscan build -d dist
//	neuroscan preview
//
// See --help for all available options.
package main

// main is the entry point for NeuroScan.
func main() {
	Execute()
}
