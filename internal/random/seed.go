// Package random seeds the pseudo-random generators used for bit sequences.
//
// Seeds come from crypto/rand. The generators themselves are math/rand/v2
// PCG streams: fast and uniform, but with no cryptographic strength claim.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand/v2"

	apperrors "github.com/louisbranch/bitseq/internal/platform/errors"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	return ReadSeed(crand.Reader)
}

// ReadSeed reads a seed from the provided entropy reader.
func ReadSeed(reader io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(reader, b[:]); err != nil {
		return 0, apperrors.Wrap(apperrors.CodeEntropyUnavailable, "read random seed", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// NewSource returns a PCG source seeded from reader.
// A nil reader falls back to crypto/rand.
func NewSource(reader io.Reader) (*rand.PCG, error) {
	if reader == nil {
		reader = crand.Reader
	}
	hi, err := ReadSeed(reader)
	if err != nil {
		return nil, err
	}
	lo, err := ReadSeed(reader)
	if err != nil {
		return nil, err
	}
	return rand.NewPCG(hi, lo), nil
}
