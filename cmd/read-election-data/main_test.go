package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `<?xml version="1.0"?>
<s:Workbook xmlns:s="urn:schemas-microsoft-com:office:spreadsheet" xmlns:o="urn:schemas-microsoft-com:office:office">
  <o:DocumentProperties>
    <o:Title>2012 General Election</o:Title>
    <o:Author>Election Night Reporting</o:Author>
    <o:Created>2012-11-19T16:34:47Z</o:Created>
  </o:DocumentProperties>
  <s:Worksheet s:Name="Table of Contents">
    <s:Table>
      <s:Row>
        <s:Cell s:StyleID="Page"><s:Data s:Type="Number">1</s:Data></s:Cell>
        <s:Cell><s:Data s:Type="String">Registered Voters</s:Data></s:Cell>
      </s:Row>
    </s:Table>
  </s:Worksheet>
  <s:Worksheet s:Name="Registered Voters">
    <s:Table>
      <s:Row>
        <s:Cell><s:Data s:Type="String">County</s:Data></s:Cell>
        <s:Cell><s:Data s:Type="String">Registered Voters</s:Data></s:Cell>
        <s:Cell><s:Data s:Type="String">Ballots Cast</s:Data></s:Cell>
        <s:Cell><s:Data s:Type="String">Voter Turnout</s:Data></s:Cell>
      </s:Row>
      <s:Row>
        <s:Cell><s:Data s:Type="String">Arkansas</s:Data></s:Cell>
        <s:Cell s:StyleID="VoteCount"><s:Data s:Type="Number">9095</s:Data></s:Cell>
        <s:Cell s:StyleID="VoteCount"><s:Data s:Type="Number">1898</s:Data></s:Cell>
        <s:Cell s:StyleID="VoteCount"><s:Data s:Type="String">20.87 %</s:Data></s:Cell>
      </s:Row>
    </s:Table>
  </s:Worksheet>
</s:Workbook>`

func writeExport(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.xml")
	require.NoError(t, os.WriteFile(path, []byte(sampleExport), 0o644))
	return path
}

func TestRun_WritesOutputFile(t *testing.T) {
	in := writeExport(t)
	out := filepath.Join(t.TempDir(), "report.txt")

	require.NoError(t, run(in, "", out))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(got), "Title;2012 General Election\n")
	assert.Contains(t, string(got), "  Arkansas;9095;1898;20.87\n")
}

func TestRun_OutputPathNotWritable(t *testing.T) {
	in := writeExport(t)
	out := filepath.Join(t.TempDir(), "no-such-dir", "report.txt")
	assert.Error(t, run(in, "", out))
}

func TestRun_MissingInput(t *testing.T) {
	assert.Error(t, run(filepath.Join(t.TempDir(), "absent.xml"), "", ""))
}
