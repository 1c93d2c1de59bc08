package site

import _ "embed"

//go:embed assets/neuroscan.js
var script string

// Script returns the client-side behavior of the page: scroll reveals,
// one-shot stats counters, demo step selection and the mobile menu.
func Script() string {
	return script
}
