package scytl

import (
	"fmt"

	"github.com/ulti/read-election-data/spreadml"
)

// findWorksheet scans worksheets for the first one whose Name attribute
// equals title, starting at start so sequential lookups resume from the
// previous match instead of restarting. The scan never wraps around.
func findWorksheet(worksheets []spreadml.Element, title string, start int) (int, spreadml.Element, error) {
	for i := start; i < len(worksheets); i++ {
		if name, ok := worksheets[i].Attr(attrName); ok && name == title {
			return i, worksheets[i], nil
		}
	}
	return 0, nil, fmt.Errorf("%w: %q", ErrWorksheetNotFound, title)
}
