package scytl

import (
	"errors"
	"fmt"
)

// Validation and structure errors. Every reader returns the first failure it
// encounters wrapped around one of these sentinels; none is recoverable for
// the current input.
var (
	// ErrStructure indicates a required node (root, table, cell) is absent.
	ErrStructure = errors.New("scytl: required node missing")

	// ErrWorksheetNotFound indicates a named worksheet was not found by the
	// sequential scan.
	ErrWorksheetNotFound = errors.New("scytl: worksheet not found")

	// ErrMissingField indicates a required scalar field has no text.
	ErrMissingField = errors.New("scytl: required field missing")

	// ErrTypeMismatch indicates a cell's declared data type or style does
	// not match what its position requires.
	ErrTypeMismatch = errors.New("scytl: cell type or style mismatch")

	// ErrCoercion indicates text that does not parse completely as the
	// required integer or float. Partial parses are rejected, never
	// truncated.
	ErrCoercion = errors.New("scytl: value does not parse")

	// ErrColumnCount indicates a row's cell count does not match the
	// governing header or schema.
	ErrColumnCount = errors.New("scytl: column count mismatch")

	// ErrSchemaLength indicates merge-span accounting in a contest's header
	// rows does not add up to the declared schema length.
	ErrSchemaLength = errors.New("scytl: schema length mismatch")

	// ErrUnrecognizedColumn indicates a header label that is not one of the
	// known column names.
	ErrUnrecognizedColumn = errors.New("scytl: unrecognized column")
)

// Reading phases reported by [PhaseError].
const (
	PhaseProperties = "document properties"
	PhaseTOC        = "table of contents"
	PhaseVoters     = "registered voters"
	PhaseResults    = "election results"
)

// PhaseError tags a read failure with the phase it occurred in, so callers
// can report which part of the document was being read without inspecting
// the cause chain.
type PhaseError struct {
	Phase string
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error { return e.Err }
