package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSchedule() Schedule {
	return Schedule{
		Title: "Week of March 10",
		Events: []Event{
			{Title: "Calculus HW", Day: "Monday", Date: "03/10/2025", Start: "09:00", End: "10:00", Duration: 60, Status: "scheduled"},
			{Title: "Essay Draft", Day: "Monday", Date: "03/10/2025", Start: "14:00", End: "15:30", Duration: 90, Status: "scheduled"},
			{Title: "Chem Review", Day: "Tuesday", Date: "03/11/2025", Start: "10:00", End: "11:00", Duration: 60, Status: "incomplete"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	data, err := NewCSVExporter().Render(sampleSchedule())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Date,Day,Start,End,Title,Duration,Status", lines[0])
	assert.Equal(t, "03/10/2025,Monday,09:00,10:00,Calculus HW,60,scheduled", lines[1])
	assert.Contains(t, lines[3], "incomplete")
}

func TestCSVExporterRejectsEmptySchedule(t *testing.T) {
	_, err := NewCSVExporter().Render(Schedule{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	data, err := NewPDFExporter().Render(sampleSchedule())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
	assert.Greater(t, len(data), 1000)
}

func TestPDFExporterRejectsEmptySchedule(t *testing.T) {
	_, err := NewPDFExporter().Render(Schedule{})
	assert.Error(t, err)
}

func TestScheduleDaysGroupsByDate(t *testing.T) {
	groups := sampleSchedule().days()
	require.Len(t, groups, 2)
	assert.Equal(t, "03/10/2025", groups[0].Date)
	assert.Len(t, groups[0].Events, 2)
	assert.Equal(t, "Tuesday", groups[1].Day)
}
