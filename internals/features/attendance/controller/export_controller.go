package controller

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	helper "womim_backend/internals/helpers"

	"womim_backend/internals/features/attendance/engine"
)

// GET /api/a/attendance/export.csv?event_id=E&q=&role=&status=
// Delimited rendering of the currently filtered sheet, header row included.
func (ctl *AttendanceController) ExportCSV(c *fiber.Ctx) error {
	eng, err := ctl.buildSheet(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := eng.WriteCSV(&buf, c.Query("q"), c.Query("role", engine.FilterAll), c.Query("status", engine.FilterAll)); err != nil {
		log.Printf("[ERROR] export csv: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error exporting attendance data. Please try again.")
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+eng.ExportFilename("csv"))
	return c.Send(buf.Bytes())
}

// GET /api/a/attendance/export.xlsx?event_id=E&q=&role=&status=
// Same filtered sheet as a spreadsheet.
func (ctl *AttendanceController) ExportXLSX(c *fiber.Ctx) error {
	eng, err := ctl.buildSheet(c)
	if err != nil {
		return err
	}

	rows, err := eng.ExportRows(c.Query("q"), c.Query("role", engine.FilterAll), c.Query("status", engine.FilterAll))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Please select a rehearsal first to export attendance data.")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Attendance"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error exporting attendance data. Please try again.")
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	for col, h := range engine.ExportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for i, row := range rows {
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		log.Printf("[ERROR] export xlsx: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error exporting attendance data. Please try again.")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+eng.ExportFilename("xlsx"))
	return c.Send(buf.Bytes())
}

func timeParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}
