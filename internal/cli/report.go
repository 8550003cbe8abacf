package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rynaret/Orang/internal/result"
	"github.com/Rynaret/Orang/internal/telemetry"
)

// consoleReporter renders ADD/UPD/DEL/REN/ERR lines to a writer (normally
// stdout), styled with lipgloss -- plain ANSI text coloring rather than an
// interactive TUI.
type consoleReporter struct {
	w io.Writer

	added   lipgloss.Style
	updated lipgloss.Style
	deleted lipgloss.Style
	renamed lipgloss.Style
	failed  lipgloss.Style
}

func newConsoleReporter(w io.Writer) *consoleReporter {
	return &consoleReporter{
		w:       w,
		added:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		updated: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		deleted: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		renamed: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		failed:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

func (r *consoleReporter) Add(path string) {
	fmt.Fprintf(r.w, "%s %s\n", r.added.Render("ADD"), path)
}

func (r *consoleReporter) Update(path string) {
	fmt.Fprintf(r.w, "%s %s\n", r.updated.Render("UPD"), path)
}

func (r *consoleReporter) Delete(path string) {
	fmt.Fprintf(r.w, "%s %s\n", r.deleted.Render("DEL"), path)
}

func (r *consoleReporter) Rename(from, to string) {
	fmt.Fprintf(r.w, "%s %s -> %s\n", r.renamed.Render("REN"), from, to)
}

func (r *consoleReporter) Error(path string, err error) {
	fmt.Fprintf(r.w, "%s %s: %v\n", r.failed.Render("ERR"), path, err)
}

// AddColumns renders a result-pipeline match aligned to widths, right-padding
// the path and left-padding the formatted size so a run of these lines forms
// a table.
func (r *consoleReporter) AddColumns(path string, size int64, widths result.ColumnWidths) {
	sizeStr := strconv.FormatInt(size, 10)
	fmt.Fprintf(r.w, "%s %-*s  %*s\n", r.added.Render("ADD"), widths.Path, path, widths.Size, sizeStr)
}

// progressPrinter rewrites a single status line on stderr as directories
// complete.
type progressPrinter struct {
	w io.Writer
}

func (p progressPrinter) Report(c *telemetry.Counters) {
	fmt.Fprintf(p.w, "\rsearched %d directories, %d files", c.SearchedDirectories, c.Files)
}

func (r *consoleReporter) Copied(path string)      { r.Add(path) }
func (r *consoleReporter) Updated(path string)     { r.Update(path) }
func (r *consoleReporter) Deleted(path string)     { r.Delete(path) }
func (r *consoleReporter) Renamed(from, to string) { r.Rename(from, to) }
func (r *consoleReporter) Skipped(path string)     {}
