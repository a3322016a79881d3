package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/xlab/treeprint"
)

// Styles for the run summary
var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")) // Cyan
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))            // Yellow
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))            // Red
)

// Renderer writes the end-of-run summary.
type Renderer struct {
	w      io.Writer
	dryRun bool
}

// NewRenderer creates a Renderer writing to w.
func NewRenderer(w io.Writer, dryRun bool) *Renderer {
	return &Renderer{w: w, dryRun: dryRun}
}

// Render writes the summary table, the destination layout tree, and any
// closing notices.
func (r *Renderer) Render(stats *Stats, targetRoot string) {
	title := "Organization summary"
	if r.dryRun {
		title = "Organization summary (dry run)"
	}
	fmt.Fprintf(r.w, "\n%s\n", headerStyle.Render(title))

	if stats.Total() == 0 && stats.Failures() == 0 {
		fmt.Fprintln(r.w, "no files to organize")
		return
	}

	fmt.Fprintln(r.w, summaryTable(stats))
	fmt.Fprint(r.w, layoutTree(stats, targetRoot))

	if n := stats.Failures(); n > 0 {
		fmt.Fprintln(r.w, failStyle.Render(fmt.Sprintf("%d file(s) could not be organized", n)))
	}
	if r.dryRun {
		fmt.Fprintln(r.w, noticeStyle.Render("dry run: nothing was changed, pass --execute to apply"))
	}
}

func summaryTable(stats *Stats) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Folder", "Files", "Size"})
	for _, folder := range stats.Folders() {
		files, bytes := stats.Tally(folder)
		tw.AppendRow(table.Row{folder, files, humanize.Bytes(uint64(bytes))})
	}
	tw.AppendFooter(table.Row{"Total", stats.Total(), humanize.Bytes(uint64(stats.TotalBytes()))})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// layoutTree shows where files end up beneath the target root.
func layoutTree(stats *Stats, targetRoot string) string {
	if stats.Total() == 0 {
		return ""
	}
	root := treeprint.NewWithRoot(targetRoot)
	for _, folder := range stats.Folders() {
		files, _ := stats.Tally(folder)
		root.AddNode(fmt.Sprintf("%s (%d files)", folder, files))
	}
	return root.String()
}
