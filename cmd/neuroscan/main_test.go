package main

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain checks that build commands leave no goroutines behind: the asset
// fan-out and the signal context must both be torn down when a build returns.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
