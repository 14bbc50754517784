package scytl

import (
	"fmt"

	"github.com/ulti/read-election-data/election"
	"github.com/ulti/read-election-data/spreadml"
)

// readElectionResults reads one contest worksheet: three header rows (title,
// candidates, column names) that establish the column schema, then one
// labeled tuple of vote counts per row. The first failure aborts the
// contest; no partial contest is retained.
func (r *Reader) readElectionResults(ws spreadml.Element) (election.Contest, error) {
	var contest election.Contest

	rows, err := rowsOf(ws)
	if err != nil {
		return contest, err
	}
	if len(rows) == 0 {
		return contest, fmt.Errorf("%w: contest worksheet has no rows", ErrStructure)
	}

	schema, name, err := readContestTitle(rows[0])
	if err != nil {
		return contest, err
	}
	contest.Name = name

	var candidateCells, columnCells []spreadml.Element
	if len(rows) > 1 {
		candidateCells = cellsOf(rows[1])
	}
	if len(rows) > 2 {
		columnCells = cellsOf(rows[2])
	}

	if err := fillCandidates(schema, candidateCells); err != nil {
		return contest, err
	}
	if err := fillColumnNames(schema, columnCells); err != nil {
		return contest, err
	}
	contest.Schema = schema

	for _, row := range rows[3:] {
		tuple, err := readResultRow(row)
		if err != nil {
			return contest, err
		}
		if len(tuple.Values)+1 != len(schema) {
			return contest, fmt.Errorf("%w: row %q has %d values for %d columns",
				ErrColumnCount, tuple.Label, len(tuple.Values), len(schema))
		}
		contest.Rows = append(contest.Rows, tuple)
	}

	return contest, nil
}

// readContestTitle reads the single headerLbl cell of the title row. Its
// merge span plus one fixes the schema length for the whole contest.
func readContestTitle(row spreadml.Element) (election.ColumnSchema, string, error) {
	cells := cellsOf(row)
	if len(cells) == 0 {
		return nil, "", fmt.Errorf("%w: contest title row has no cell", ErrStructure)
	}

	cell := cells[0]
	data, ok := dataOf(cell)
	if styleOf(cell) != styleHeaderLabel || !ok || typeOf(data) != typeString {
		return nil, "", fmt.Errorf("%w: contest title cell", ErrTypeMismatch)
	}

	span, err := intAttr(cell, attrMergeAcross)
	if err != nil {
		return nil, "", err
	}
	return make(election.ColumnSchema, span+1), data.Text(), nil
}

// fillCandidates walks the candidate row, replicating each cell's text
// across the merge-span+1 schema slots it occupies. Empty text marks a
// non-candidate spacer column. The spans must consume the schema exactly:
// leftover cells and leftover slots are both failures.
func fillCandidates(schema election.ColumnSchema, cells []spreadml.Element) error {
	slot := 0
	for _, cell := range cells {
		span, err := intAttr(cell, attrMergeAcross)
		if err != nil {
			return err
		}
		if slot+span+1 > len(schema) {
			return fmt.Errorf("%w: candidate cells span %d columns, schema has %d",
				ErrSchemaLength, slot+span+1, len(schema))
		}

		name := ""
		if data, ok := dataOf(cell); ok {
			name = data.Text()
		}
		for i := 0; i <= span; i++ {
			schema[slot].Candidate = name
			slot++
		}
	}
	if slot != len(schema) {
		return fmt.Errorf("%w: candidate cells fill %d of %d columns", ErrSchemaLength, slot, len(schema))
	}
	return nil
}

// fillColumnNames assigns the column-name row's cells to schema slots 1:1,
// with no merge handling. Every cell must hold String data with text.
func fillColumnNames(schema election.ColumnSchema, cells []spreadml.Element) error {
	if len(cells) != len(schema) {
		return fmt.Errorf("%w: %d column-name cells for %d columns", ErrColumnCount, len(cells), len(schema))
	}
	for i, cell := range cells {
		data, ok := dataOf(cell)
		if !ok || typeOf(data) != typeString || data.Text() == "" {
			return fmt.Errorf("%w: column name in slot %d", ErrTypeMismatch, i)
		}
		schema[i].Name = data.Text()
	}
	return nil
}

// readResultRow reads one data row: a required String label followed by
// VoteCount-styled Number cells.
func readResultRow(row spreadml.Element) (election.ResultRow, error) {
	var tuple election.ResultRow

	cells := cellsOf(row)
	if len(cells) == 0 {
		return tuple, fmt.Errorf("%w: result row has no cells", ErrStructure)
	}

	data, ok := dataOf(cells[0])
	if !ok || typeOf(data) != typeString {
		return tuple, fmt.Errorf("%w: result row label", ErrTypeMismatch)
	}
	tuple.Label = data.Text()

	for _, cell := range cells[1:] {
		data, ok := dataOf(cell)
		if styleOf(cell) != styleVoteCount || !ok || typeOf(data) != typeNumber {
			return tuple, fmt.Errorf("%w: vote cell in row %q", ErrTypeMismatch, tuple.Label)
		}
		v, err := intText(data)
		if err != nil {
			return tuple, err
		}
		tuple.Values = append(tuple.Values, v)
	}

	return tuple, nil
}
