package scytl

import (
	"fmt"

	"github.com/ulti/read-election-data/election"
	"github.com/ulti/read-election-data/spreadml"
)

// readDocumentProperties extracts the three required metadata fields from
// the DocumentProperties node. All fields must be present with non-empty
// text; the result is all-or-nothing.
func readDocumentProperties(dp spreadml.Element) (election.DocumentProperties, error) {
	var props election.DocumentProperties
	for _, field := range []struct {
		name string
		dst  *string
	}{
		{elemTitle, &props.Title},
		{elemAuthor, &props.Author},
		{elemCreated, &props.Created},
	} {
		child, ok := dp.FirstChild(field.name)
		if !ok || child.Text() == "" {
			return election.DocumentProperties{}, fmt.Errorf("%w: %s", ErrMissingField, field.name)
		}
		*field.dst = child.Text()
	}
	return props, nil
}
