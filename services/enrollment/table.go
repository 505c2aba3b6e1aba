package enrollment

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Table is the ordered concatenation of merged rows across every
// collected term. Rows only ever get appended.
type Table struct {
	PrimarySubject   string
	SecondarySubject string
	Rows             []Row
}

func NewTable(primarySubject, secondarySubject string) *Table {
	return &Table{
		PrimarySubject:   primarySubject,
		SecondarySubject: secondarySubject,
	}
}

func (t *Table) Append(rows ...Row) {
	t.Rows = append(t.Rows, rows...)
}

func (t *Table) header() table.Row {
	return table.Row{
		"year", "semester", "cat_no", "session", "title",
		"enrolled_" + strings.ToLower(t.PrimarySubject),
		"enrolled_" + strings.ToLower(t.SecondarySubject),
		"enrolled_all",
	}
}

func (t *Table) writer(out io.Writer) table.Writer {
	w := table.NewWriter()
	w.SetOutputMirror(out)
	w.AppendHeader(t.header())
	for _, r := range t.Rows {
		w.AppendRow(table.Row{
			r.Year, r.Semester, r.CatalogNumber, r.Session, r.Title,
			r.EnrolledPrimary, r.EnrolledSecondary, r.EnrolledAll,
		})
	}
	return w
}

// Render prints the table to stdout in the rounded style the other
// tools in this repo use.
func (t *Table) Render() {
	w := t.writer(os.Stdout)
	w.SetStyle(table.StyleRounded)
	w.Render()
}

// WriteCSV overwrites path with the table in CSV form, header row
// first.
func (t *Table) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write enrollment table: %w", err)
	}
	t.writer(f).RenderCSV()
	return f.Close()
}
