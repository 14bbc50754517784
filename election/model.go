package election

// DocumentProperties holds the export's document metadata. All three fields
// are required by the format.
type DocumentProperties struct {
	Title   string
	Author  string
	Created string
}

// TocEntry is one table-of-contents line: the page a contest starts on and
// its title. Entries keep document order.
type TocEntry struct {
	Page  int
	Title string
}

// RegionProfile holds registration and turnout figures for one voting
// region (a county or precinct, depending on the export's level).
// VoterTurnout is a percentage: 20.87 means "20.87 %".
type RegionProfile struct {
	RegionName       string
	RegisteredVoters int
	BallotsCast      int
	VoterTurnout     float64
}

// Column is one slot of a contest's column schema. Candidate is empty for
// non-candidate columns such as "Total" or the leading region column.
type Column struct {
	Candidate string
	Name      string
}

// Heading renders the column as it appears in reports: "Candidate - Name",
// or just the name when no candidate is attached.
func (c Column) Heading() string {
	if c.Candidate == "" {
		return c.Name
	}
	return c.Candidate + " - " + c.Name
}

// ColumnSchema is the ordered column schema of a contest, derived from its
// three header rows. Its length is fixed once read and gives positional
// meaning to every data row.
type ColumnSchema []Column

// ResultRow is one labeled tuple of vote counts. The label occupies the
// schema's first column, so len(Values)+1 equals the schema length.
type ResultRow struct {
	Label  string
	Values []int
}

// Contest is one election contest: its name, column schema, and result rows
// in document order.
type Contest struct {
	Name   string
	Schema ColumnSchema
	Rows   []ResultRow
}

// Ballot is the top-level aggregate for one parsed export.
type Ballot struct {
	Properties DocumentProperties
	TOC        []TocEntry
	Regions    []RegionProfile
	Contests   []Contest
}
