// Package scytl reads Scytl election-results exports in the SpreadsheetML
// 2003 dialect into the election domain model.
//
// The export layout is rigid and the readers enforce it: every cell's data
// type, style marker, and merge span is cross-checked against the position
// it occupies, and the first deviation aborts the whole read. The one
// designed tolerance is the table-of-contents reader, which skips rows that
// do not match its two-cell pattern instead of failing, because those
// worksheets carry decorative rows.
//
// # Reading a document
//
//	r, err := scytl.Open("export.xml")
//	if err != nil {
//	    // handle error
//	}
//	ballot, err := r.Read()
//
// Read either returns a fully populated [election.Ballot] or an error; no
// partial model is ever produced. Orchestrator failures are wrapped in a
// [PhaseError] naming the phase that failed (document properties, table of
// contents, registered voters, election results).
//
// # Worksheet order
//
// The document must contain, in order: a "Table of Contents" worksheet, a
// "Registered Voters" worksheet, and then one worksheet per contest through
// the end of the document. The scan for each named worksheet resumes from
// the previous match and never wraps around.
//
// # Validation errors
//
// Failures carry one of the package's sentinel errors ([ErrTypeMismatch],
// [ErrColumnCount], and so on) and respond to errors.Is. See errors.go for
// the full taxonomy.
package scytl
