// Package generate prints one fresh bit sequence.
package generate

import (
	"errors"
	"fmt"
	"io"

	"github.com/louisbranch/bitseq/internal/bitseq"
)

// Run draws a bitseq.Length-bit sequence and writes it to out as one line.
// A nil entropy reader falls back to crypto/rand.
func Run(out io.Writer, entropy io.Reader) error {
	if out == nil {
		return errors.New("output is required")
	}

	seq, err := bitseq.Draw(entropy, bitseq.Length)
	if err != nil {
		return fmt.Errorf("draw sequence: %w", err)
	}
	if _, err := fmt.Fprintln(out, seq); err != nil {
		return fmt.Errorf("write sequence: %w", err)
	}
	return nil
}
