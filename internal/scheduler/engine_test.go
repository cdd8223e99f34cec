package scheduler

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionInterval(t *testing.T, s Session) (time.Time, time.Time) {
	t.Helper()
	start, err := time.Parse("01/02/2006 15:04", s.Date+" "+s.Start)
	require.NoError(t, err)
	end, err := time.Parse("01/02/2006 15:04", s.Date+" "+s.End)
	require.NoError(t, err)
	return start, end
}

func TestGenerateEmptyTaskList(t *testing.T) {
	engine := NewEngine(nil)

	result := engine.Generate(Payload{Preferences: testPrefs()}, testNow)
	assert.Empty(t, result.Events)
	assert.Equal(t, Summary{}, result.Summary)
}

// Scenario A: a short easy task due tomorrow on an empty calendar lands in
// one session today, starting at the clamped current time.
func TestGenerateSingleTaskFitsToday(t *testing.T) {
	engine := NewEngine(nil)
	payload := Payload{
		Tasks:       []Task{{Name: "Read chapter 4", Duration: 40, Due: "2025-03-11T23:59:00", Difficulty: DifficultyEasy}},
		Preferences: testPrefs(),
	}

	result := engine.Generate(payload, testNow)
	require.Len(t, result.Events, 1)

	session := result.Events[0]
	assert.Equal(t, StatusScheduled, session.Status)
	assert.Equal(t, "03/10/2025", session.Date)
	assert.Equal(t, "09:20", session.Start)
	assert.Equal(t, 40, session.Duration)
	assert.Equal(t, Summary{TotalTasks: 1, Scheduled: 1}, result.Summary)
}

// Consecutive chunks carved from the same gap are separated by the
// configured break, and the leftover the buffer eats is reported as missing.
func TestGenerateInsertsBreakBetweenSplitChunks(t *testing.T) {
	engine := NewEngine(nil)
	prefs := testPrefs()
	prefs.SessionLength = 45
	prefs.BreakDuration = 15
	payload := Payload{
		Jobs:        []JobBlock{{Name: "Shift", Days: allWeekdays(), Start: "11:00", End: "23:00"}},
		Tasks:       []Task{{Name: "History reading", Duration: 120, Due: "2025-03-10T11:00:00", Difficulty: DifficultyMedium}},
		Preferences: prefs,
	}

	result := engine.Generate(payload, testNow)

	var chunks []Session
	var marker *Session
	for i, s := range result.Events {
		switch s.Status {
		case StatusScheduled:
			chunks = append(chunks, s)
		case StatusIncomplete:
			marker = &result.Events[i]
		}
	}
	require.Len(t, chunks, 2)
	assert.Equal(t, "09:20", chunks[0].Start)
	assert.Equal(t, "10:05", chunks[0].End)
	assert.Equal(t, "10:20", chunks[1].Start, "second chunk must start a full break after the first ends")
	assert.Equal(t, "11:00", chunks[1].End)

	_, firstEnd := sessionInterval(t, chunks[0])
	secondStart, _ := sessionInterval(t, chunks[1])
	assert.Equal(t, 15*time.Minute, secondStart.Sub(firstEnd))

	require.NotNil(t, marker)
	assert.Equal(t, 120, chunks[0].Duration+chunks[1].Duration+marker.Missing)
}

// With splitting disabled, a task that fits no single gap becomes one
// incomplete marker carrying the full duration.
func TestGenerateAutoSplitDisabledYieldsMarker(t *testing.T) {
	engine := NewEngine(nil)
	prefs := testPrefs()
	prefs.AutoSplit = false
	payload := Payload{
		Jobs:        []JobBlock{{Name: "Shift", Days: allWeekdays(), Start: "11:00", End: "23:00"}},
		Tasks:       []Task{{Name: "Lab report", Duration: 200, Due: "2025-03-10T12:00:00", Difficulty: DifficultyHard}},
		Preferences: prefs,
	}

	result := engine.Generate(payload, testNow)

	require.Len(t, result.Events, 1)
	marker := result.Events[0]
	assert.Equal(t, StatusIncomplete, marker.Status)
	assert.Equal(t, 0, marker.Duration)
	assert.Equal(t, 200, marker.Missing)
	assert.Equal(t, Summary{TotalTasks: 1, Incomplete: 1}, result.Summary)
}

// Scenario B: a 200 minute task with only 90 usable minutes before its
// deadline yields partial sessions plus an incomplete marker for the rest.
func TestGenerateReportsShortfall(t *testing.T) {
	engine := NewEngine(nil)
	payload := Payload{
		Jobs:        []JobBlock{{Name: "Shift", Days: allWeekdays(), Start: "10:50", End: "23:00"}},
		Tasks:       []Task{{Name: "Lab report", Duration: 200, Due: "2025-03-10T12:00:00", Difficulty: DifficultyHard}},
		Preferences: testPrefs(),
	}

	result := engine.Generate(payload, testNow)

	var scheduled, missing int
	var marker *Session
	for i, s := range result.Events {
		switch s.Status {
		case StatusScheduled:
			scheduled += s.Duration
		case StatusIncomplete:
			marker = &result.Events[i]
			missing = s.Missing
		}
	}
	require.NotNil(t, marker, "shortfall must surface as an incomplete marker")
	assert.LessOrEqual(t, scheduled, 90)
	assert.Equal(t, 200, scheduled+missing)
	assert.GreaterOrEqual(t, missing, 110)
	assert.Equal(t, 0, marker.Duration)
	assert.Equal(t, "12:00", marker.Start)
	assert.Equal(t, result.Summary.Incomplete, 1)
}

// Scenario C: an exam named after a course is pinned to the course slot and
// never consumes study gaps.
func TestGenerateExamPinnedToCourseSlot(t *testing.T) {
	engine := NewEngine(nil)
	payload := Payload{
		Courses: []CourseBlock{{Name: "MATH 101", Days: []string{"Monday"}, Start: "09:00", End: "10:30"}},
		Tasks: []Task{
			{Name: "MATH 101 Midterm", Duration: 60, Due: "2025-03-17T09:00:00", IsExam: true},
			{Name: "Essay draft", Duration: 60, Due: "2025-03-18T23:59:00", Difficulty: DifficultyMedium},
		},
		Preferences: testPrefs(),
	}

	result := engine.Generate(payload, testNow)
	require.Equal(t, 1, result.Summary.Exams)

	var exam *Session
	for i, s := range result.Events {
		if s.Status == StatusExam {
			exam = &result.Events[i]
		}
	}
	require.NotNil(t, exam)
	assert.Equal(t, "03/17/2025", exam.Date)
	assert.Equal(t, "09:00", exam.Start)
	assert.Equal(t, "10:30", exam.End)
	assert.Equal(t, 90, exam.Duration)

	// The study task must still be scheduled from the regular gap pool.
	assert.Equal(t, 1, result.Summary.Scheduled)
}

func TestGenerateExamWithoutCourseMatch(t *testing.T) {
	engine := NewEngine(nil)
	payload := Payload{
		Tasks:       []Task{{Name: "Driving theory test", Duration: 45, Due: "2025-03-14T14:30:00", IsExam: true}},
		Preferences: testPrefs(),
	}

	result := engine.Generate(payload, testNow)
	require.Len(t, result.Events, 1)
	exam := result.Events[0]
	assert.Equal(t, StatusExam, exam.Status)
	assert.Equal(t, "14:30", exam.Start)
	assert.Equal(t, "15:30", exam.End)
	assert.Equal(t, 60, exam.Duration)
}

// Scenario D: once the urgent task exhausts today's study cap, the distant
// task is pushed to later days even though today still has free gaps.
func TestGenerateDailyCapPushesDistantWork(t *testing.T) {
	engine := NewEngine(nil)
	prefs := testPrefs()
	prefs.MaxStudyHours = 2
	prefs.SessionLength = 120
	payload := Payload{
		Courses: []CourseBlock{{Name: "Seminar", Days: []string{"Monday"}, Start: "12:00", End: "18:00"}},
		Tasks: []Task{
			{Name: "Due today", Duration: 120, Due: "2025-03-10T23:00:00", Difficulty: DifficultyMedium},
			{Name: "Due next week", Duration: 120, Due: "2025-03-20T23:59:00", Difficulty: DifficultyMedium},
		},
		Preferences: prefs,
	}

	result := engine.Generate(payload, testNow)

	for _, s := range result.Events {
		if s.Status != StatusScheduled {
			continue
		}
		if strings.HasPrefix(s.Title, "Due today") {
			assert.Equal(t, "03/10/2025", s.Date)
		}
		if strings.HasPrefix(s.Title, "Due next week") {
			assert.NotEqual(t, "03/10/2025", s.Date, "cap reached: distant task must not use today")
		}
	}
	assert.Zero(t, result.Summary.Incomplete)
}

func TestGenerateDeterministic(t *testing.T) {
	engine := NewEngine(nil)
	payload := Payload{
		Courses: []CourseBlock{{Name: "Calc", Days: []string{"Monday", "Wednesday"}, Start: "10:00", End: "12:00"}},
		Jobs:    []JobBlock{{Name: "Cafe", Days: []string{"Tuesday"}, Start: "16:00", End: "21:00"}},
		Tasks: []Task{
			{Name: "Problem set", Duration: 180, Due: "2025-03-13T23:59:00", Difficulty: DifficultyHard},
			{Name: "Reading", Duration: 60, Due: "2025-03-11T12:00:00", Difficulty: DifficultyEasy},
			{Name: "Group project", Duration: 240, Due: "2025-03-19T23:59:00", Difficulty: DifficultyMedium},
		},
		Preferences: testPrefs(),
	}

	first := engine.Generate(payload, testNow)
	second := engine.Generate(payload, testNow)
	assert.True(t, reflect.DeepEqual(first, second), "same inputs and clock must produce identical output")
}

func TestGenerateSessionsNeverOverlap(t *testing.T) {
	engine := NewEngine(nil)
	payload := Payload{
		Courses: []CourseBlock{{Name: "Calc", Days: allWeekdays(), Start: "10:00", End: "12:00"}},
		Tasks: []Task{
			{Name: "Alpha", Duration: 150, Due: "2025-03-12T23:59:00", Difficulty: DifficultyMedium},
			{Name: "Beta", Duration: 120, Due: "2025-03-13T23:59:00", Difficulty: DifficultyEasy},
			{Name: "Gamma", Duration: 200, Due: "2025-03-14T23:59:00", Difficulty: DifficultyHard},
		},
		Preferences: testPrefs(),
	}

	result := engine.Generate(payload, testNow)

	type interval struct{ start, end time.Time }
	var intervals []interval
	for _, s := range result.Events {
		if s.Status != StatusScheduled {
			continue
		}
		start, end := sessionInterval(t, s)
		intervals = append(intervals, interval{start, end})
	}
	require.NotEmpty(t, intervals)
	for i := range intervals {
		for j := i + 1; j < len(intervals); j++ {
			a, b := intervals[i], intervals[j]
			disjoint := !a.start.Before(b.end) || !b.start.Before(a.end)
			assert.True(t, disjoint, "sessions %d and %d overlap", i, j)
		}
	}
}

func TestGenerateConservesTaskMinutes(t *testing.T) {
	engine := NewEngine(nil)
	tasks := []Task{
		{Name: "Alpha", Duration: 90, Due: "2025-03-11T23:59:00", Difficulty: DifficultyMedium},
		{Name: "Beta", Duration: 400, Due: "2025-03-10T13:00:00", Difficulty: DifficultyHard},
	}
	payload := Payload{Tasks: tasks, Preferences: testPrefs()}

	result := engine.Generate(payload, testNow)

	for _, task := range tasks {
		total := 0
		for _, s := range result.Events {
			if strings.HasPrefix(s.Title, task.Name) || strings.Contains(s.Title, task.Name) {
				total += s.Duration + s.Missing
			}
		}
		assert.Equal(t, task.Duration, total, "scheduled minutes plus shortfall must equal task duration for %s", task.Name)
	}
}

func TestGenerateRespectsDeadlineAndClock(t *testing.T) {
	engine := NewEngine(nil)
	due := "2025-03-12T15:00:00"
	payload := Payload{
		Tasks:       []Task{{Name: "Quiz prep", Duration: 300, Due: due, Difficulty: DifficultyMedium}},
		Preferences: testPrefs(),
	}

	result := engine.Generate(payload, testNow)
	deadline, _ := parseDue(due, testNow)

	for _, s := range result.Events {
		if s.Status != StatusScheduled {
			continue
		}
		start, _ := sessionInterval(t, s)
		assert.False(t, start.Before(time.Date(2025, time.March, 10, 9, 2, 0, 0, time.UTC)), "session must not start in the past")
		assert.True(t, start.Before(deadline), "session must start before the deadline")
	}
}
