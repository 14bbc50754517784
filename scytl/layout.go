package scytl

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Element, attribute, style, and type names of the dialect. These are the
// format itself, not localization, so they are not configurable.
const (
	elemWorkbook   = "Workbook"
	elemProperties = "DocumentProperties"
	elemTitle      = "Title"
	elemAuthor     = "Author"
	elemCreated    = "Created"
	elemWorksheet  = "Worksheet"
	elemTable      = "Table"
	elemRow        = "Row"
	elemCell       = "Cell"
	elemData       = "Data"

	attrName        = "Name"
	attrType        = "Type"
	attrStyleID     = "StyleID"
	attrMergeAcross = "MergeAcross"

	typeNumber = "Number"
	typeString = "String"

	stylePage        = "Page"
	styleVoteCount   = "VoteCount"
	styleHeaderLabel = "headerLbl"
)

// Layout names the worksheet titles and voter-table column labels the reader
// matches against. Exports localize these strings; nothing else about the
// format may vary, so the layout only renames markers and never relaxes a
// structural rule.
type Layout struct {
	TOCSheet    string `yaml:"toc_sheet"`
	VotersSheet string `yaml:"voters_sheet"`

	RegisteredVotersLabel string `yaml:"registered_voters_label"`
	BallotsCastLabel      string `yaml:"ballots_cast_label"`
	VoterTurnoutLabel     string `yaml:"voter_turnout_label"`
}

// DefaultLayout returns the canonical Scytl layout.
func DefaultLayout() Layout {
	return Layout{
		TOCSheet:              "Table of Contents",
		VotersSheet:           "Registered Voters",
		RegisteredVotersLabel: "Registered Voters",
		BallotsCastLabel:      "Ballots Cast",
		VoterTurnoutLabel:     "Voter Turnout",
	}
}

// LoadLayout reads a YAML layout override from path. Fields absent from the
// file keep their default values.
func LoadLayout(path string) (Layout, error) {
	layout := DefaultLayout()

	data, err := os.ReadFile(path)
	if err != nil {
		return layout, fmt.Errorf("reading layout: %w", err)
	}
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return layout, fmt.Errorf("parsing layout: %w", err)
	}
	return layout, nil
}
