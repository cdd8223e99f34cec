package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// CSVExporter renders a schedule as CSV rows.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

var csvHeaders = []string{"Date", "Day", "Start", "End", "Title", "Duration", "Status"}

// Render produces CSV encoded bytes for the schedule.
func (e *CSVExporter) Render(schedule Schedule) ([]byte, error) {
	if len(schedule.Events) == 0 {
		return nil, fmt.Errorf("csv requires at least one event")
	}
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(csvHeaders); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, ev := range schedule.Events {
		record := []string{ev.Date, ev.Day, ev.Start, ev.End, ev.Title, strconv.Itoa(ev.Duration), ev.Status}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
