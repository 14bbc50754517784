package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ulti/read-election-data/report"
	"github.com/ulti/read-election-data/scytl"
)

var version = "0.1.0"

func main() {
	var layoutPath, outputPath string

	rootCmd := &cobra.Command{
		Use:   "read-election-data <file>",
		Short: "Parse a Scytl election-results export",
		Long: `read-election-data parses an election-results export in the
SpreadsheetML 2003 XML dialect and prints a semicolon-delimited report:
document properties, the table of contents, the per-region registration
table, and every contest's result table.

The format is validated strictly; any deviation from the known layout
aborts the read and names the failing phase.`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], layoutPath, outputPath)
		},
	}

	rootCmd.Flags().StringVar(&layoutPath, "layout", "", "YAML file overriding worksheet titles and column labels")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the report to a file instead of stdout")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(inputPath, layoutPath, outputPath string) error {
	layout := scytl.DefaultLayout()
	if layoutPath != "" {
		var err error
		if layout, err = scytl.LoadLayout(layoutPath); err != nil {
			return err
		}
	}

	r, err := scytl.OpenLayout(inputPath, layout)
	if err != nil {
		return fmt.Errorf("loading %s: %w", inputPath, err)
	}

	// Read failures arrive phase-tagged, so the diagnostic names the part
	// of the document that was being read.
	ballot, err := r.Read()
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		if err := report.Write(f, ballot); err != nil {
			f.Close()
			return err
		}
		// The report is only on disk once the close succeeds.
		return f.Close()
	}
	return report.Write(os.Stdout, ballot)
}
