// Command lanes reports the compiled vector backend and the host's CPU
// features, and verifies every backend against the reference semantics.
//
// Usage:
//
//	lanes info
//	lanes features
//	lanes verify [--iterations N] [--seed S] [--workers W] [--backends a,b] [--config file.yaml]
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
