package nist

import "github.com/louisbranch/bitseq/internal/bitseq"

// Report holds every test result for one labeled sequence.
type Report struct {
	Label    string
	Sequence bitseq.Sequence
	Results  []Result
}

// Passed reports whether every test passed.
func (r Report) Passed() bool {
	for _, result := range r.Results {
		if !result.Passed() {
			return false
		}
	}
	return true
}

// Evaluate runs every test against seq and labels the outcome.
func Evaluate(label string, seq bitseq.Sequence) (Report, error) {
	results, err := Run(seq)
	if err != nil {
		return Report{}, err
	}
	return Report{Label: label, Sequence: seq, Results: results}, nil
}
