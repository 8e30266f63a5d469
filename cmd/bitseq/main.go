// Package main prints a fresh 128-bit pseudo-random binary sequence.
package main

import (
	"os"

	"github.com/louisbranch/bitseq/internal/platform/config"
	"github.com/louisbranch/bitseq/internal/tools/generate"
)

func main() {
	if err := generate.Run(os.Stdout, nil); err != nil {
		config.Exitf("bitseq: %v", err)
	}
}
