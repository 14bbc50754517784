package scytl

import (
	"github.com/ulti/read-election-data/election"
	"github.com/ulti/read-election-data/spreadml"
)

// readTableOfContents collects (page, title) pairs from the TOC worksheet.
//
// Only rows with exactly two cells are considered: the first styled Page
// with Number data, the second holding String data with text. Anything else
// on the worksheet is decorative and skipped without error; this is the one
// tolerant reader in the package.
func readTableOfContents(ws spreadml.Element) ([]election.TocEntry, error) {
	rows, err := rowsOf(ws)
	if err != nil {
		return nil, err
	}

	var toc []election.TocEntry
	for _, row := range rows {
		cells := cellsOf(row)
		if len(cells) != 2 {
			continue
		}
		if styleOf(cells[0]) != stylePage {
			continue
		}

		pageData, ok := dataOf(cells[0])
		if !ok || typeOf(pageData) != typeNumber {
			continue
		}
		titleData, ok := dataOf(cells[1])
		if !ok || typeOf(titleData) != typeString || titleData.Text() == "" {
			continue
		}

		page, err := intText(pageData)
		if err != nil {
			continue
		}

		toc = append(toc, election.TocEntry{Page: page, Title: titleData.Text()})
	}
	return toc, nil
}
