package scytl

import (
	"fmt"

	"github.com/ulti/read-election-data/election"
	"github.com/ulti/read-election-data/spreadml"
)

// Reader reads one export document into the election domain model.
type Reader struct {
	root   spreadml.Element
	layout Layout
}

// Open loads the document at path with the default layout.
func Open(path string) (*Reader, error) {
	return OpenLayout(path, DefaultLayout())
}

// OpenLayout loads the document at path with a custom layout.
func OpenLayout(path string, layout Layout) (*Reader, error) {
	root, err := spreadml.Load(path)
	if err != nil {
		return nil, err
	}
	return New(root, layout), nil
}

// New wraps an already-parsed tree. The root must be the Workbook element.
func New(root spreadml.Element, layout Layout) *Reader {
	return &Reader{root: root, layout: layout}
}

// Read builds the Ballot aggregate in one pass over the tree: document
// properties, then the table of contents, then the registered-voters table,
// then every remaining worksheet as a contest. Any failure aborts the whole
// read with a phase-tagged error; no partial Ballot is returned.
func (r *Reader) Read() (*election.Ballot, error) {
	if r.root == nil || r.root.Name() != elemWorkbook {
		return nil, fmt.Errorf("%w: root %s element", ErrStructure, elemWorkbook)
	}

	dp, ok := r.root.FirstChild(elemProperties)
	if !ok {
		return nil, &PhaseError{PhaseProperties, fmt.Errorf("%w: %s", ErrStructure, elemProperties)}
	}
	props, err := readDocumentProperties(dp)
	if err != nil {
		return nil, &PhaseError{PhaseProperties, err}
	}

	worksheets := childrenNamed(r.root, elemWorksheet)

	cursor, ws, err := findWorksheet(worksheets, r.layout.TOCSheet, 0)
	if err != nil {
		return nil, &PhaseError{PhaseTOC, err}
	}
	toc, err := readTableOfContents(ws)
	if err != nil {
		return nil, &PhaseError{PhaseTOC, err}
	}

	// The voters sheet follows the TOC sheet; resume the scan from the
	// current position rather than restarting.
	cursor, ws, err = findWorksheet(worksheets, r.layout.VotersSheet, cursor)
	if err != nil {
		return nil, &PhaseError{PhaseVoters, err}
	}
	regions, err := r.readRegisteredVoters(ws)
	if err != nil {
		return nil, &PhaseError{PhaseVoters, err}
	}

	// Every worksheet after the voters sheet is a contest, through the end
	// of the document.
	var contests []election.Contest
	for _, ws := range worksheets[cursor+1:] {
		contest, err := r.readElectionResults(ws)
		if err != nil {
			return nil, &PhaseError{PhaseResults, err}
		}
		contests = append(contests, contest)
	}

	return &election.Ballot{
		Properties: props,
		TOC:        toc,
		Regions:    regions,
		Contests:   contests,
	}, nil
}
