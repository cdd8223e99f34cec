package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeUrgencyLevels(t *testing.T) {
	prefs := testPrefs()

	cases := []struct {
		name  string
		due   string
		level string
	}{
		{"overdue", "2025-03-09T12:00:00", UrgencyOverdue},
		{"due today", "2025-03-10T21:00:00", UrgencyToday},
		{"due tomorrow", "2025-03-11T09:00:00", UrgencyTomorrow},
		{"due next week", "2025-03-17T09:00:00", UrgencyNormal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := computeUrgency(Task{Name: "t", Duration: 60, Due: tc.due, Difficulty: DifficultyMedium}, testNow, prefs)
			assert.Equal(t, tc.level, u.Level)
		})
	}
}

func TestComputeUrgencyDeadlineBuffer(t *testing.T) {
	prefs := testPrefs()
	prefs.DeadlineBuffer = 12

	// Literally due tomorrow 10:00, but the 12h buffer pulls the working
	// deadline back to tonight.
	u := computeUrgency(Task{Due: "2025-03-11T10:00:00", Difficulty: DifficultyMedium}, testNow, prefs)
	assert.True(t, u.DueToday)
	assert.Equal(t, "2025-03-10", u.Deadline.Format("2006-01-02"))
}

func TestComputeUrgencyPriorityOrdering(t *testing.T) {
	prefs := testPrefs()

	today := computeUrgency(Task{Due: "2025-03-10T20:00:00", Difficulty: DifficultyMedium}, testNow, prefs)
	tomorrow := computeUrgency(Task{Due: "2025-03-11T20:00:00", Difficulty: DifficultyMedium}, testNow, prefs)
	normal := computeUrgency(Task{Due: "2025-03-18T20:00:00", Difficulty: DifficultyMedium}, testNow, prefs)
	overdue := computeUrgency(Task{Due: "2025-03-09T08:00:00", Difficulty: DifficultyMedium}, testNow, prefs)

	assert.Less(t, overdue.Priority, today.Priority)
	assert.Less(t, today.Priority, tomorrow.Priority)
	assert.Less(t, tomorrow.Priority, normal.Priority)
}

func TestComputeUrgencyPrioritizeHard(t *testing.T) {
	prefs := testPrefs()
	prefs.PrioritizeHard = true

	hard := computeUrgency(Task{Due: "2025-03-18T20:00:00", Difficulty: DifficultyHard}, testNow, prefs)
	medium := computeUrgency(Task{Due: "2025-03-18T20:00:00", Difficulty: DifficultyMedium}, testNow, prefs)
	assert.Less(t, hard.Priority, medium.Priority, "hard tasks get a slight precedence boost")
}

func TestComputeUrgencyModeMultiplier(t *testing.T) {
	relaxed := testPrefs()
	relaxed.UrgencyMode = "relaxed"
	urgent := testPrefs()
	urgent.UrgencyMode = "urgent"

	task := Task{Due: "2025-03-10T21:00:00", Difficulty: DifficultyMedium}
	ur := computeUrgency(task, testNow, relaxed)
	uu := computeUrgency(task, testNow, urgent)
	assert.Greater(t, uu.Priority, ur.Priority, "urgent mode weights remaining hours more heavily")
}

func TestUsableGap(t *testing.T) {
	u := urgencyInfo{Deadline: time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)}
	mk := func(start, end string) *Gap {
		s, _ := parseClock(testNow, start)
		e, _ := parseClock(testNow, end)
		return &Gap{Start: s, End: e, Duration: minutesBetween(s, e)}
	}

	assert.True(t, usableGap(mk("10:00", "11:00"), u))
	assert.True(t, usableGap(mk("11:30", "14:00"), u), "30 min overlap with the deadline is enough")
	assert.False(t, usableGap(mk("12:00", "13:00"), u), "gap starting at the deadline is unusable")
	assert.False(t, usableGap(mk("11:45", "14:00"), u), "overlap below the minimum usable block")
}

func TestClassifyTask(t *testing.T) {
	assert.Equal(t, prefBetweenClasses, classifyTask(Task{Duration: 45, Difficulty: DifficultyEasy}))
	assert.Equal(t, prefAfterSchool, classifyTask(Task{Duration: 150, Difficulty: DifficultyMedium}))
	assert.Equal(t, prefAfterSchool, classifyTask(Task{Duration: 100, Difficulty: DifficultyHard}))
	assert.Equal(t, prefFlexible, classifyTask(Task{Duration: 80, Difficulty: DifficultyMedium}))
}
