package scytl

import (
	"errors"
	"testing"
)

func testResultsReader() *Reader {
	return &Reader{layout: DefaultLayout()}
}

// contestSheet builds a contest worksheet from row fragments.
func contestSheet(rows ...string) string {
	sheet := `<s:Worksheet s:Name="Contest"><s:Table>`
	for _, row := range rows {
		sheet += row
	}
	return sheet + `</s:Table></s:Worksheet>`
}

func titleRow(span, name string) string {
	merge := ""
	if span != "" {
		merge = ` s:MergeAcross="` + span + `"`
	}
	return `<s:Row><s:Cell` + merge + ` s:StyleID="headerLbl"><s:Data s:Type="String">` + name + `</s:Data></s:Cell></s:Row>`
}

func TestReadElectionResults(t *testing.T) {
	ws := parseWorksheet(t, contestSheetXML)

	contest, err := testResultsReader().readElectionResults(ws)
	if err != nil {
		t.Fatalf("readElectionResults() failed: %v", err)
	}

	if contest.Name != "U.S. President - DEM" {
		t.Errorf("Name = %q", contest.Name)
	}

	wantSchema := []struct{ candidate, name string }{
		{"", "County"},
		{"", "Registered Voters"},
		{"John Wolfe", "Election Day"},
		{"John Wolfe", "Total Votes"},
		{"Barack Obama", "Election Day"},
		{"Barack Obama", "Total Votes"},
		{"", "Total"},
	}
	if len(contest.Schema) != len(wantSchema) {
		t.Fatalf("schema length = %d, want %d", len(contest.Schema), len(wantSchema))
	}
	for i, w := range wantSchema {
		if contest.Schema[i].Candidate != w.candidate || contest.Schema[i].Name != w.name {
			t.Errorf("schema[%d] = %+v, want {%q %q}", i, contest.Schema[i], w.candidate, w.name)
		}
	}

	if len(contest.Rows) != 1 {
		t.Fatalf("%d rows, want 1", len(contest.Rows))
	}
	row := contest.Rows[0]
	if row.Label != "Arkansas" {
		t.Errorf("row label = %q", row.Label)
	}
	want := []int{0, 508, 508, 599, 599, 1107}
	if len(row.Values) != len(want) {
		t.Fatalf("row has %d values, want %d", len(row.Values), len(want))
	}
	for i, v := range want {
		if row.Values[i] != v {
			t.Errorf("values[%d] = %d, want %d", i, row.Values[i], v)
		}
	}
}

func TestReadElectionResults_CandidateSpanReplication(t *testing.T) {
	// A title span of 1 gives two columns; one candidate cell spanning both
	// replicates the name into each slot.
	ws := parseWorksheet(t, contestSheet(
		titleRow("1", "School Board"),
		`<s:Row><s:Cell s:MergeAcross="1"><s:Data s:Type="String">Jane Doe</s:Data></s:Cell></s:Row>`,
		`<s:Row>
  <s:Cell><s:Data s:Type="String">Election Day</s:Data></s:Cell>
  <s:Cell><s:Data s:Type="String">Total Votes</s:Data></s:Cell>
</s:Row>`,
	))

	contest, err := testResultsReader().readElectionResults(ws)
	if err != nil {
		t.Fatalf("readElectionResults() failed: %v", err)
	}
	if len(contest.Schema) != 2 {
		t.Fatalf("schema length = %d, want 2", len(contest.Schema))
	}
	for i, col := range contest.Schema {
		if col.Candidate != "Jane Doe" {
			t.Errorf("schema[%d].Candidate = %q, want Jane Doe", i, col.Candidate)
		}
	}
}

func TestReadElectionResults_TitleRowRejections(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want error
	}{
		{
			"wrong style",
			`<s:Row><s:Cell s:StyleID="Page"><s:Data s:Type="String">Contest</s:Data></s:Cell></s:Row>`,
			ErrTypeMismatch,
		},
		{
			"wrong data type",
			`<s:Row><s:Cell s:StyleID="headerLbl"><s:Data s:Type="Number">7</s:Data></s:Cell></s:Row>`,
			ErrTypeMismatch,
		},
		{
			"no cell",
			`<s:Row/>`,
			ErrStructure,
		},
		{
			"unparsable merge span",
			`<s:Row><s:Cell s:MergeAcross="six" s:StyleID="headerLbl"><s:Data s:Type="String">Contest</s:Data></s:Cell></s:Row>`,
			ErrCoercion,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ws := parseWorksheet(t, contestSheet(tc.row))
			_, err := testResultsReader().readElectionResults(ws)
			if !errors.Is(err, tc.want) {
				t.Errorf("readElectionResults() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestReadElectionResults_CandidateRowArity(t *testing.T) {
	columnRow := `<s:Row>
  <s:Cell><s:Data s:Type="String">County</s:Data></s:Cell>
  <s:Cell><s:Data s:Type="String">Total</s:Data></s:Cell>
</s:Row>`

	tests := []struct {
		name string
		row  string
	}{
		{
			"too few slots",
			`<s:Row><s:Cell><s:Data s:Type="String">Lone</s:Data></s:Cell></s:Row>`,
		},
		{
			"too many cells",
			`<s:Row>
  <s:Cell><s:Data s:Type="String">A</s:Data></s:Cell>
  <s:Cell><s:Data s:Type="String">B</s:Data></s:Cell>
  <s:Cell><s:Data s:Type="String">C</s:Data></s:Cell>
</s:Row>`,
		},
		{
			"span overflows schema",
			`<s:Row><s:Cell s:MergeAcross="5"><s:Data s:Type="String">Wide</s:Data></s:Cell></s:Row>`,
		},
		{
			"missing row",
			"",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rows := []string{titleRow("1", "Contest")}
			if tc.row != "" {
				rows = append(rows, tc.row, columnRow)
			}
			ws := parseWorksheet(t, contestSheet(rows...))
			_, err := testResultsReader().readElectionResults(ws)
			if !errors.Is(err, ErrSchemaLength) {
				t.Errorf("readElectionResults() = %v, want ErrSchemaLength", err)
			}
		})
	}
}

func TestReadElectionResults_ColumnNameRowRejections(t *testing.T) {
	header := []string{
		titleRow("1", "Contest"),
		`<s:Row><s:Cell s:MergeAcross="1"><s:Data s:Type="String">Jane Doe</s:Data></s:Cell></s:Row>`,
	}

	t.Run("count mismatch", func(t *testing.T) {
		ws := parseWorksheet(t, contestSheet(append(header,
			`<s:Row><s:Cell><s:Data s:Type="String">Only one</s:Data></s:Cell></s:Row>`)...))
		_, err := testResultsReader().readElectionResults(ws)
		if !errors.Is(err, ErrColumnCount) {
			t.Errorf("readElectionResults() = %v, want ErrColumnCount", err)
		}
	})

	t.Run("empty column name", func(t *testing.T) {
		ws := parseWorksheet(t, contestSheet(append(header,
			`<s:Row>
  <s:Cell><s:Data s:Type="String">County</s:Data></s:Cell>
  <s:Cell><s:Data s:Type="String"/></s:Cell>
</s:Row>`)...))
		_, err := testResultsReader().readElectionResults(ws)
		if !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("readElectionResults() = %v, want ErrTypeMismatch", err)
		}
	})
}

func TestReadElectionResults_DataRowRejections(t *testing.T) {
	header := []string{
		titleRow("1", "Contest"),
		`<s:Row><s:Cell s:MergeAcross="1"><s:Data s:Type="String">Jane Doe</s:Data></s:Cell></s:Row>`,
		`<s:Row>
  <s:Cell><s:Data s:Type="String">County</s:Data></s:Cell>
  <s:Cell><s:Data s:Type="String">Total</s:Data></s:Cell>
</s:Row>`,
	}

	tests := []struct {
		name string
		row  string
		want error
	}{
		{
			"short row",
			`<s:Row><s:Cell><s:Data s:Type="String">Arkansas</s:Data></s:Cell></s:Row>`,
			ErrColumnCount,
		},
		{
			"long row",
			`<s:Row>
  <s:Cell><s:Data s:Type="String">Arkansas</s:Data></s:Cell>
  <s:Cell s:StyleID="VoteCount"><s:Data s:Type="Number">1</s:Data></s:Cell>
  <s:Cell s:StyleID="VoteCount"><s:Data s:Type="Number">2</s:Data></s:Cell>
</s:Row>`,
			ErrColumnCount,
		},
		{
			"non-string label",
			`<s:Row>
  <s:Cell><s:Data s:Type="Number">7</s:Data></s:Cell>
  <s:Cell s:StyleID="VoteCount"><s:Data s:Type="Number">1</s:Data></s:Cell>
</s:Row>`,
			ErrTypeMismatch,
		},
		{
			"vote cell without style",
			`<s:Row>
  <s:Cell><s:Data s:Type="String">Arkansas</s:Data></s:Cell>
  <s:Cell><s:Data s:Type="Number">1</s:Data></s:Cell>
</s:Row>`,
			ErrTypeMismatch,
		},
		{
			"unparsable count",
			`<s:Row>
  <s:Cell><s:Data s:Type="String">Arkansas</s:Data></s:Cell>
  <s:Cell s:StyleID="VoteCount"><s:Data s:Type="Number">1x</s:Data></s:Cell>
</s:Row>`,
			ErrCoercion,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ws := parseWorksheet(t, contestSheet(append(header, tc.row)...))
			_, err := testResultsReader().readElectionResults(ws)
			if !errors.Is(err, tc.want) {
				t.Errorf("readElectionResults() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestReadElectionResults_NoPartialContest(t *testing.T) {
	// A failure in the last data row must not surface any rows at all.
	ws := parseWorksheet(t, contestSheet(
		titleRow("1", "Contest"),
		`<s:Row><s:Cell s:MergeAcross="1"><s:Data s:Type="String">Jane Doe</s:Data></s:Cell></s:Row>`,
		`<s:Row>
  <s:Cell><s:Data s:Type="String">County</s:Data></s:Cell>
  <s:Cell><s:Data s:Type="String">Total</s:Data></s:Cell>
</s:Row>`,
		`<s:Row>
  <s:Cell><s:Data s:Type="String">Arkansas</s:Data></s:Cell>
  <s:Cell s:StyleID="VoteCount"><s:Data s:Type="Number">10</s:Data></s:Cell>
</s:Row>`,
		`<s:Row>
  <s:Cell><s:Data s:Type="String">Ashley</s:Data></s:Cell>
  <s:Cell><s:Data s:Type="Number">20</s:Data></s:Cell>
</s:Row>`,
	))

	_, err := testResultsReader().readElectionResults(ws)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("readElectionResults() = %v, want ErrTypeMismatch", err)
	}
}
