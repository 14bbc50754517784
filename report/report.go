// Package report renders a parsed ballot as semicolon-delimited text, the
// format downstream tooling consumes. It is a pure consumer of the election
// model and performs no validation of its own.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ulti/read-election-data/election"
)

// votersHeader is the canonical header line for the voter table, regardless
// of what the source file's first header column was called.
const votersHeader = "County;Registered Voters;Ballots Cast;Voter Turnout"

// Write renders the ballot to w: properties as name;value lines, TOC as
// page;title lines, the voter table as a header line plus one indented line
// per region, and each contest as a name line, a schema line, and one
// label;v1;v2;... line per result row.
func Write(w io.Writer, b *election.Ballot) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Title;%s\n", b.Properties.Title)
	fmt.Fprintf(bw, "Author;%s\n", b.Properties.Author)
	fmt.Fprintf(bw, "Created;%s\n", b.Properties.Created)

	for _, entry := range b.TOC {
		fmt.Fprintf(bw, "%d;%s\n", entry.Page, entry.Title)
	}

	fmt.Fprintln(bw, votersHeader)
	for _, region := range b.Regions {
		// Turnout prints with the two implied fractional digits the source
		// format carries.
		fmt.Fprintf(bw, "  %s;%d;%d;%.2f\n",
			region.RegionName, region.RegisteredVoters, region.BallotsCast, region.VoterTurnout)
	}

	for _, contest := range b.Contests {
		fmt.Fprintln(bw, contest.Name)

		headings := make([]string, len(contest.Schema))
		for i, col := range contest.Schema {
			headings[i] = col.Heading()
		}
		fmt.Fprintln(bw, strings.Join(headings, ";"))

		for _, row := range contest.Rows {
			fmt.Fprint(bw, row.Label)
			for _, v := range row.Values {
				fmt.Fprintf(bw, ";%d", v)
			}
			fmt.Fprintln(bw)
		}
	}

	return bw.Flush()
}

// Render returns the ballot's report as a string. Write only fails when the
// destination does, and a strings.Builder never does.
func Render(b *election.Ballot) string {
	var sb strings.Builder
	if err := Write(&sb, b); err != nil {
		panic(err)
	}
	return sb.String()
}
