package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/deanrtaylor1/tagextractor/config"
	"github.com/deanrtaylor1/tagextractor/frequency"
	"github.com/deanrtaylor1/tagextractor/pipeline"
	"github.com/deanrtaylor1/tagextractor/util"
)

func renderEntries(entries []frequency.Entry) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Word", "Count"})
	for _, e := range entries {
		tw.AppendRow(table.Row{e.Word, strconv.Itoa(e.Count)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// The report as a table, in the same alphabetical order as the line report
func renderReportTable(t *frequency.Table) string {
	return renderEntries(t.Entries())
}

// Utility function to show the user a summary of the run
func renderSummary(res *pipeline.Result, top int, color bool) string {
	var b strings.Builder

	status := fmt.Sprintf("%d distinct words | %d words counted | %d stop words", res.Table.Len(), res.Table.Total(), res.StopWords.Len())
	b.WriteString(util.Colorize(status, util.TerminalGreen, color))
	b.WriteString("\n")

	b.WriteString(util.Colorize(fmt.Sprintf("Top %d:", top), util.TerminalCyan, color))
	b.WriteString("\n")
	b.WriteString(renderEntries(res.Table.Top(top)))
	b.WriteString("\n")
	return b.String()
}

func useColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := out.(*os.File)
	return ok && util.IsTerminal(f)
}
