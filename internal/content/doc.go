// Package content holds the static copy of the NeuroScan Pro landing page.
//
// Every list in this package is hard-coded configuration: features, statistics,
// demo steps, sample scans, footer links and page metadata. Nothing here has a
// lifecycle. Accessors return fresh copies so that renderers and the terminal
// preview can never alter the canonical data.
package content
