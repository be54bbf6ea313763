package engine

import (
	"encoding/csv"
	"io"
	"strings"
)

// ExportHeader is the first row of every export flavor.
var ExportHeader = []string{"Name", "Registration ID", "Role", "Status", "Notes"}

// ExportRows renders the currently filtered view as rows, one per visible
// record. Requires a scoped event; exporting without one is meaningless.
func (e *Engine) ExportRows(searchTerm, role, status string) ([][]string, error) {
	if e.event == nil {
		return nil, ErrNoEventSelected
	}

	filtered := e.Filter(searchTerm, role, status)
	rows := make([][]string, 0, len(filtered))
	for _, r := range filtered {
		rows = append(rows, []string{
			r.Member.Surname + " " + r.Member.FirstName,
			r.Member.RegistrationNumber,
			r.Member.Role,
			string(r.Status),
			r.Notes,
		})
	}
	return rows, nil
}

// WriteCSV writes the header plus the filtered rows to w.
func (e *Engine) WriteCSV(w io.Writer, searchTerm, role, status string) error {
	rows, err := e.ExportRows(searchTerm, role, status)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFilename derives the download name from the scoped event, e.g.
// "attendance_Rehearsal_Sep_01_2026.csv".
func (e *Engine) ExportFilename(ext string) string {
	name := "rehearsal"
	if e.event != nil && e.event.DisplayName != "" {
		name = strings.NewReplacer(" ", "_", ",", "").Replace(e.event.DisplayName)
	}
	return "attendance_" + name + "." + ext
}
