package nist

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/louisbranch/bitseq/internal/bitseq"
	apperrors "github.com/louisbranch/bitseq/internal/platform/errors"
)

func assertPValue(t *testing.T, got Result, want, tolerance float64) {
	t.Helper()
	if math.Abs(got.PValue-want) > tolerance {
		t.Fatalf("%s: expected p-value %f, got %f", got.Name, want, got.PValue)
	}
}

func TestFrequencyWorkedExample(t *testing.T) {
	result, err := Frequency("1011010101")
	if err != nil {
		t.Fatalf("frequency: %v", err)
	}
	if result.Name != TestFrequency {
		t.Fatalf("expected name %q, got %q", TestFrequency, result.Name)
	}
	assertPValue(t, result, 0.527089, 1e-6)
	if !result.Passed() {
		t.Fatal("expected pass")
	}
}

func TestFrequencyAllOnesFails(t *testing.T) {
	result, err := Frequency(bitseq.Sequence(strings.Repeat("1", bitseq.Length)))
	if err != nil {
		t.Fatalf("frequency: %v", err)
	}
	if result.Passed() {
		t.Fatalf("expected failure, got p-value %f", result.PValue)
	}
}

func TestRunsWorkedExample(t *testing.T) {
	result, err := Runs("1001101011")
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	assertPValue(t, result, 0.147232, 1e-6)
}

func TestRunsPrerequisiteFails(t *testing.T) {
	result, err := Runs(bitseq.Sequence(strings.Repeat("1", 100) + strings.Repeat("0", 28)))
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if result.PValue != 0 {
		t.Fatalf("expected p-value 0 when frequency prerequisite fails, got %f", result.PValue)
	}
}

func TestRunsAlternatingFails(t *testing.T) {
	result, err := Runs(bitseq.Sequence(strings.Repeat("01", 64)))
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if result.Passed() {
		t.Fatalf("expected strictly alternating bits to fail, got p-value %f", result.PValue)
	}
}

func TestLongestRunOfOnesKnownCounts(t *testing.T) {
	// Class counts {4, 9, 3, 0} over 16 blocks give chi-square 4.882604.
	blocks := append(append(
		repeatBlock("10101010", 4),
		repeatBlock("11001100", 9)...),
		repeatBlock("11100000", 3)...)
	seq := bitseq.Sequence(strings.Join(blocks, ""))

	result, err := LongestRunOfOnes(seq)
	if err != nil {
		t.Fatalf("longest run: %v", err)
	}
	assertPValue(t, result, 0.1806, 1e-3)
}

func TestLongestRunOfOnesAllZerosFails(t *testing.T) {
	result, err := LongestRunOfOnes(bitseq.Sequence(strings.Repeat("0", bitseq.Length)))
	if err != nil {
		t.Fatalf("longest run: %v", err)
	}
	if result.Passed() {
		t.Fatalf("expected failure, got p-value %f", result.PValue)
	}
}

func TestLongestRunOfOnesIgnoresPartialBlock(t *testing.T) {
	base := bitseq.Sequence(strings.Repeat("11001100", 16))
	a, err := LongestRunOfOnes(base)
	if err != nil {
		t.Fatalf("longest run: %v", err)
	}
	b, err := LongestRunOfOnes(base + "1111")
	if err != nil {
		t.Fatalf("longest run: %v", err)
	}
	if a.PValue != b.PValue {
		t.Fatalf("expected trailing bits to be ignored, got %f and %f", a.PValue, b.PValue)
	}
}

func TestTooShort(t *testing.T) {
	tests := []struct {
		name string
		run  func(bitseq.Sequence) (Result, error)
		seq  bitseq.Sequence
	}{
		{name: "frequency empty", run: Frequency, seq: ""},
		{name: "runs empty", run: Runs, seq: ""},
		{name: "longest run 127 bits", run: LongestRunOfOnes, seq: bitseq.Sequence(strings.Repeat("1", 127))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.run(tt.seq)
			if apperrors.GetCode(err) != apperrors.CodeSequenceTooShort {
				t.Fatalf("expected too short error, got %v", err)
			}
		})
	}
}

func TestRunReportsAllTests(t *testing.T) {
	seq, err := bitseq.Generate(rand.NewPCG(3, 5), bitseq.Length)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	results, err := Run(seq)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []string{TestFrequency, TestRuns, TestLongestRunOfOnes}
	if len(results) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(results))
	}
	for i, name := range want {
		if results[i].Name != name {
			t.Fatalf("result %d: expected %q, got %q", i, name, results[i].Name)
		}
		if results[i].PValue < 0 || results[i].PValue > 1 {
			t.Fatalf("%s: p-value out of range: %f", name, results[i].PValue)
		}
	}
}

func TestRunPropagatesTooShort(t *testing.T) {
	if _, err := Run("0110"); err == nil {
		t.Fatal("expected error for sequence shorter than the block test allows")
	}
}

func TestIgamcThreeHalves(t *testing.T) {
	if got := igamcThreeHalves(0); got != 1 {
		t.Fatalf("expected Q(3/2, 0) = 1, got %f", got)
	}
	// Q(3/2, 1) = erfc(1) + 2/sqrt(pi)/e.
	assertPValue(t, Result{Name: "igamc", PValue: igamcThreeHalves(1)}, 0.5724067, 1e-6)
}

func repeatBlock(block string, count int) []string {
	out := make([]string, count)
	for i := range out {
		out[i] = block
	}
	return out
}
