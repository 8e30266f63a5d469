// Package bitseq builds sequences of binary digits.
//
// A Sequence is a string over the alphabet {'0','1'}. Each position is an
// independent uniform bit draw taken directly from a 64-bit source word, so
// no floating-point threshold is involved.
package bitseq

import (
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/bitseq/internal/platform/errors"
	"github.com/louisbranch/bitseq/internal/random"
)

// Length is the number of bits emitted by the bitseq command.
const Length = 128

// Sequence is an ordered run of '0' and '1' symbols.
type Sequence string

// Generate draws n independent uniform bits from src.
//
// n = 0 yields an empty sequence. A negative n returns an error.
func Generate(src rand.Source, n int) (Sequence, error) {
	if n < 0 {
		return "", apperrors.WithMetadata(apperrors.CodeSequenceNegativeLen, "sequence length must not be negative",
			map[string]string{"Length": strconv.Itoa(n)})
	}

	var b strings.Builder
	b.Grow(n)
	var word uint64
	for i := 0; i < n; i++ {
		if i%64 == 0 {
			word = src.Uint64()
		}
		if word&1 == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
		word >>= 1
	}
	return Sequence(b.String()), nil
}

// Draw seeds a fresh source from entropy and generates n bits.
// A nil reader falls back to crypto/rand.
func Draw(entropy io.Reader, n int) (Sequence, error) {
	src, err := random.NewSource(entropy)
	if err != nil {
		return "", err
	}
	return Generate(src, n)
}

// Parse validates s as a bit sequence.
func Parse(s string) (Sequence, error) {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return "", apperrors.WithMetadata(apperrors.CodeSequenceInvalid, "sequence contains a symbol other than 0 or 1",
				map[string]string{"Position": strconv.Itoa(i)})
		}
	}
	return Sequence(s), nil
}

// Len returns the number of bits.
func (s Sequence) Len() int {
	return len(s)
}

// Ones counts the '1' symbols.
func (s Sequence) Ones() int {
	return strings.Count(string(s), "1")
}

// Bit reports whether position i holds a '1'.
func (s Sequence) Bit(i int) bool {
	return s[i] == '1'
}

func (s Sequence) String() string {
	return string(s)
}
