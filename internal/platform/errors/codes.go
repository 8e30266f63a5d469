// Package errors provides structured error handling for bit sequences and
// the statistical checks run against them.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Sequence errors
	CodeSequenceInvalid     Code = "SEQUENCE_INVALID"
	CodeSequenceTooShort    Code = "SEQUENCE_TOO_SHORT"
	CodeSequenceNegativeLen Code = "SEQUENCE_NEGATIVE_LENGTH"

	// Random/seed errors
	CodeEntropyUnavailable Code = "ENTROPY_UNAVAILABLE"

	// Report errors
	CodeReportInputInvalid Code = "REPORT_INPUT_INVALID"
)
