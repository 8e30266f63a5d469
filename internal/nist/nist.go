// Package nist implements a subset of the NIST SP 800-22 statistical tests
// for bit sequences.
//
// Each test returns a p-value; a sequence passes when the p-value is at
// least Significance.
package nist

import (
	"math"
	"strconv"

	"github.com/louisbranch/bitseq/internal/bitseq"
	apperrors "github.com/louisbranch/bitseq/internal/platform/errors"
)

// Significance is the decision threshold for every test.
const Significance = 0.01

// Test names as they appear in reports.
const (
	TestFrequency        = "frequency"
	TestRuns             = "runs"
	TestLongestRunOfOnes = "longest_run_of_ones"
)

const (
	// longestRunBlock is the block length M for sequences of 128 to 6271 bits.
	longestRunBlock = 8
	// longestRunMinBits is the shortest sequence the block test accepts.
	longestRunMinBits = 128
)

// longestRunProbabilities are the class probabilities for M = 8 over the
// classes {<=1, 2, 3, >=4}.
var longestRunProbabilities = [4]float64{0.2148, 0.3672, 0.2305, 0.1875}

// Result is the outcome of one test.
type Result struct {
	Name   string
	PValue float64
}

// Passed reports whether the p-value clears Significance.
func (r Result) Passed() bool {
	return r.PValue >= Significance
}

// Frequency runs the frequency (monobit) test.
func Frequency(seq bitseq.Sequence) (Result, error) {
	n := seq.Len()
	if n == 0 {
		return Result{}, tooShort(TestFrequency, 1, n)
	}

	sum := 2*seq.Ones() - n
	sObs := math.Abs(float64(sum)) / math.Sqrt(float64(n))
	return Result{Name: TestFrequency, PValue: math.Erfc(sObs / math.Sqrt2)}, nil
}

// Runs runs the runs test. When the proportion of ones is too far from one
// half the frequency prerequisite fails and the p-value is 0.
func Runs(seq bitseq.Sequence) (Result, error) {
	n := seq.Len()
	if n == 0 {
		return Result{}, tooShort(TestRuns, 1, n)
	}

	fn := float64(n)
	pi := float64(seq.Ones()) / fn
	if math.Abs(pi-0.5) >= 2/math.Sqrt(fn) {
		return Result{Name: TestRuns, PValue: 0}, nil
	}

	runs := 1
	for k := 0; k < n-1; k++ {
		if seq[k] != seq[k+1] {
			runs++
		}
	}

	spread := pi * (1 - pi)
	num := math.Abs(float64(runs) - 2*fn*spread)
	den := 2 * math.Sqrt(2*fn) * spread
	return Result{Name: TestRuns, PValue: math.Erfc(num / den)}, nil
}

// LongestRunOfOnes runs the longest-run-of-ones-in-a-block test with 8-bit
// blocks. Trailing bits that do not fill a block are ignored.
func LongestRunOfOnes(seq bitseq.Sequence) (Result, error) {
	n := seq.Len()
	if n < longestRunMinBits {
		return Result{}, tooShort(TestLongestRunOfOnes, longestRunMinBits, n)
	}

	blocks := n / longestRunBlock
	var classes [4]int
	for b := 0; b < blocks; b++ {
		longest, current := 0, 0
		for _, bit := range seq[b*longestRunBlock : (b+1)*longestRunBlock] {
			if bit == '1' {
				current++
				longest = max(longest, current)
			} else {
				current = 0
			}
		}
		classes[longestRunClass(longest)]++
	}

	chiSquare := 0.0
	for i, count := range classes {
		expected := float64(blocks) * longestRunProbabilities[i]
		diff := float64(count) - expected
		chiSquare += diff * diff / expected
	}
	return Result{Name: TestLongestRunOfOnes, PValue: igamcThreeHalves(chiSquare / 2)}, nil
}

// Run executes every test in report order.
func Run(seq bitseq.Sequence) ([]Result, error) {
	tests := []func(bitseq.Sequence) (Result, error){Frequency, Runs, LongestRunOfOnes}
	results := make([]Result, 0, len(tests))
	for _, test := range tests {
		result, err := test(seq)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func longestRunClass(longest int) int {
	switch {
	case longest <= 1:
		return 0
	case longest >= 4:
		return 3
	default:
		return longest - 1
	}
}

// igamcThreeHalves is the regularized upper incomplete gamma function
// Q(3/2, x), which has the closed form erfc(sqrt(x)) + 2*sqrt(x/pi)*exp(-x).
func igamcThreeHalves(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return math.Erfc(math.Sqrt(x)) + 2*math.Sqrt(x/math.Pi)*math.Exp(-x)
}

func tooShort(test string, want, got int) error {
	return apperrors.WithMetadata(apperrors.CodeSequenceTooShort, test+" test needs at least "+strconv.Itoa(want)+" bits",
		map[string]string{"Test": test, "Length": strconv.Itoa(got)})
}
