// Package readelection parses Scytl election-results exports (SpreadsheetML
// 2003 XML) into a typed ballot model.
//
// Basic usage:
//
//	ballot, err := readelection.ReadFile("export.xml")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Print(report.Render(ballot))
//
// The lower-level scytl and spreadml packages are available for custom
// layouts or alternate markup parsers.
package readelection

import (
	"github.com/ulti/read-election-data/election"
	"github.com/ulti/read-election-data/scytl"
)

// ReadFile parses the export at path with the default layout and returns the
// fully populated ballot, or the first validation error encountered.
func ReadFile(path string) (*election.Ballot, error) {
	r, err := scytl.Open(path)
	if err != nil {
		return nil, err
	}
	return r.Read()
}
