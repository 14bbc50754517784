package scytl

import (
	"fmt"
	"strconv"

	"github.com/ulti/read-election-data/election"
	"github.com/ulti/read-election-data/spreadml"
)

// turnoutSuffixLen is the byte length of the suffix the export appends to
// turnout strings (" %"). The strip is always exactly this many bytes.
const turnoutSuffixLen = 2

// readRegisteredVoters reads the voter-registration worksheet: a header row
// naming the columns, then one region per row.
func (r *Reader) readRegisteredVoters(ws spreadml.Element) ([]election.RegionProfile, error) {
	rows, err := rowsOf(ws)
	if err != nil {
		return nil, err
	}

	// The header row defines the semantics of every column after the
	// region-name column. Only String data contributes a header entry.
	var header []string
	if len(rows) > 0 {
		for _, cell := range cellsOf(rows[0]) {
			if data, ok := dataOf(cell); ok && typeOf(data) == typeString {
				header = append(header, data.Text())
			}
		}
		rows = rows[1:]
	}

	var regions []election.RegionProfile
	for _, row := range rows {
		profile, err := r.readRegionRow(row, header)
		if err != nil {
			return nil, err
		}
		regions = append(regions, profile)
	}
	return regions, nil
}

// readRegionRow reads one region's row, validating each cell against the
// header entry governing its position.
func (r *Reader) readRegionRow(row spreadml.Element, header []string) (election.RegionProfile, error) {
	var profile election.RegionProfile

	cells := cellsOf(row)
	if len(cells) > 0 {
		// Region name. No style check, and a non-String first cell leaves
		// the name empty rather than failing.
		if data, ok := dataOf(cells[0]); ok && typeOf(data) == typeString {
			profile.RegionName = data.Text()
		}
		cells = cells[1:]
	}

	// The first header entry labels the region column and is deliberately
	// never validated: county-level exports say "County" where
	// precinct-level ones say "Precinct".
	rest := header
	if len(rest) > 0 {
		rest = rest[1:]
	}
	if len(cells) != len(rest) {
		return election.RegionProfile{}, fmt.Errorf("%w: row %q has %d value cells, header has %d",
			ErrColumnCount, profile.RegionName, len(cells), len(rest))
	}

	for i, cell := range cells {
		label := rest[i]
		style := styleOf(cell)
		data, ok := dataOf(cell)
		dtype := ""
		if ok {
			dtype = typeOf(data)
		}

		switch label {
		case r.layout.RegisteredVotersLabel:
			if style != styleVoteCount || dtype != typeNumber {
				return election.RegionProfile{}, columnMismatch(label, style, dtype)
			}
			n, err := intText(data)
			if err != nil {
				return election.RegionProfile{}, err
			}
			profile.RegisteredVoters = n

		case r.layout.BallotsCastLabel:
			if style != styleVoteCount || dtype != typeNumber {
				return election.RegionProfile{}, columnMismatch(label, style, dtype)
			}
			n, err := intText(data)
			if err != nil {
				return election.RegionProfile{}, err
			}
			profile.BallotsCast = n

		case r.layout.VoterTurnoutLabel:
			if style != styleVoteCount || dtype != typeString {
				return election.RegionProfile{}, columnMismatch(label, style, dtype)
			}
			pct, err := parseTurnout(data.Text())
			if err != nil {
				return election.RegionProfile{}, err
			}
			profile.VoterTurnout = pct

		default:
			return election.RegionProfile{}, fmt.Errorf("%w: header says %q", ErrUnrecognizedColumn, label)
		}
	}

	return profile, nil
}

func columnMismatch(label, style, dtype string) error {
	return fmt.Errorf("%w: column %q has style %q, type %q", ErrTypeMismatch, label, style, dtype)
}

// parseTurnout converts a turnout string such as "20.87 %" to its numeric
// value. Exactly turnoutSuffixLen trailing bytes are stripped and the whole
// remainder must parse as a float; trailing garbage fails rather than
// truncating.
func parseTurnout(s string) (float64, error) {
	if len(s) < turnoutSuffixLen {
		return 0, fmt.Errorf("%w: turnout %q too short", ErrCoercion, s)
	}
	num := s[:len(s)-turnoutSuffixLen]
	pct, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: turnout %q does not parse as a percentage", ErrCoercion, s)
	}
	return pct, nil
}
