package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 2025-03-10 09:02 UTC is the reference instant for most tests.
var testNow = time.Date(2025, time.March, 10, 9, 2, 0, 0, time.UTC)

func testPrefs() Preferences {
	return Preferences{
		Wake:          "08:00",
		Sleep:         "23:00",
		MaxStudyHours: 6,
		AutoSplit:     true,
		WeekendStudy:  true,
		UrgencyMode:   "balanced",
		StudyTime:     "any",
	}
}

func allWeekdays() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
}

func TestFindGapsEmptyDay(t *testing.T) {
	engine := NewEngine(nil)
	date := testNow.AddDate(0, 0, 2)

	gaps := engine.findGaps(date, Payload{}, testPrefs(), testNow)
	require.Len(t, gaps, 1)
	assert.Equal(t, "08:00", gaps[0].Start.Format("15:04"))
	assert.Equal(t, "23:00", gaps[0].End.Format("15:04"))
	assert.Equal(t, 900, gaps[0].Duration)
	assert.Equal(t, "wake up", gaps[0].Before)
	assert.Equal(t, "sleep", gaps[0].After)
	assert.False(t, gaps[0].Today)
}

func TestFindGapsNeverInPast(t *testing.T) {
	engine := NewEngine(nil)
	yesterday := testNow.AddDate(0, 0, -1)

	assert.Empty(t, engine.findGaps(yesterday, Payload{}, testPrefs(), testNow))
}

func TestFindGapsTodayClampsStart(t *testing.T) {
	engine := NewEngine(nil)

	gaps := engine.findGaps(testNow, Payload{}, testPrefs(), testNow)
	require.Len(t, gaps, 1)
	// 09:02 rounds up to 09:05, plus the 15 minute transition buffer.
	assert.Equal(t, "09:20", gaps[0].Start.Format("15:04"))
	assert.True(t, gaps[0].Today)
}

func TestFindGapsDayAlreadyOver(t *testing.T) {
	engine := NewEngine(nil)
	lateNow := time.Date(2025, time.March, 10, 22, 55, 0, 0, time.UTC)

	assert.Empty(t, engine.findGaps(lateNow, Payload{}, testPrefs(), lateNow))
}

func TestFindGapsWeekendExcluded(t *testing.T) {
	engine := NewEngine(nil)
	prefs := testPrefs()
	prefs.WeekendStudy = false
	saturday := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, engine.findGaps(saturday, Payload{}, prefs, testNow))

	prefs.WeekendStudy = true
	assert.NotEmpty(t, engine.findGaps(saturday, Payload{}, prefs, testNow))
}

func TestFindGapsTagsContext(t *testing.T) {
	engine := NewEngine(nil)
	payload := Payload{
		Courses: []CourseBlock{
			{Name: "Calc", Days: []string{"Monday"}, Start: "09:00", End: "10:00"},
			{Name: "Physics", Days: []string{"Monday"}, Start: "11:00", End: "12:00"},
		},
	}
	nextMonday := time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC)

	gaps := engine.findGaps(nextMonday, payload, testPrefs(), testNow)
	require.Len(t, gaps, 3)

	assert.Equal(t, "wake up", gaps[0].Before)
	assert.False(t, gaps[0].BetweenClasses)

	assert.True(t, gaps[1].BetweenClasses, "gap flanked by two classes")
	assert.Equal(t, 60, gaps[1].Duration)

	assert.True(t, gaps[2].AfterSchool, "trailing gap follows the last class")
	assert.Equal(t, "sleep", gaps[2].After)
}

func TestFindGapsDropsSlivers(t *testing.T) {
	engine := NewEngine(nil)
	payload := Payload{
		Courses: []CourseBlock{
			{Name: "A", Days: []string{"Tuesday"}, Start: "08:00", End: "08:50"},
			{Name: "B", Days: []string{"Tuesday"}, Start: "09:00", End: "23:00"},
		},
	}
	tuesday := time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)

	gaps := engine.findGaps(tuesday, payload, testPrefs(), testNow)
	assert.Empty(t, gaps, "10 minute sliver is below the minimum usable block")
}

func TestDayBlocksAutoMeals(t *testing.T) {
	engine := NewEngine(nil)
	prefs := testPrefs()
	prefs.AutoMeals = true
	prefs.LunchStart, prefs.LunchEnd = "12:00", "12:45"
	date := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)

	blocks := engine.dayBlocks(date, Payload{}, prefs)
	require.Len(t, blocks, 2)
	assert.Equal(t, "Meal: Lunch", blocks[0].Label)
	assert.Equal(t, "12:45", blocks[0].End.Format("15:04"))
	assert.Equal(t, "Meal: Dinner", blocks[1].Label)
}

func TestDayBlocksSorted(t *testing.T) {
	engine := NewEngine(nil)
	payload := Payload{
		Jobs:     []JobBlock{{Name: "Cafe", Days: allWeekdays(), Start: "18:00", End: "21:00"}},
		Courses:  []CourseBlock{{Name: "Calc", Days: allWeekdays(), Start: "09:00", End: "10:00"}},
		Commutes: []CommuteBlock{{Name: "Bus", Days: allWeekdays(), Start: "08:15", End: "08:45"}},
		Breaks:   []BreakBlock{{Name: "Gym", Day: "Wednesday", Start: "16:00", End: "17:00"}},
	}
	wednesday := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)

	blocks := engine.dayBlocks(wednesday, payload, testPrefs())
	require.Len(t, blocks, 4)
	for i := 1; i < len(blocks); i++ {
		assert.False(t, blocks[i].Start.Before(blocks[i-1].Start), "blocks must be sorted ascending")
	}
	assert.Equal(t, "Commute: Bus", blocks[0].Label)
}

func TestBuildInventorySortedAndDisjoint(t *testing.T) {
	engine := NewEngine(nil)
	payload := Payload{
		Courses: []CourseBlock{{Name: "Calc", Days: []string{"Monday", "Wednesday"}, Start: "10:00", End: "12:00"}},
	}
	horizon := testNow.AddDate(0, 0, 6)

	gaps := engine.buildInventory(testNow, horizon, payload, testPrefs())
	require.NotEmpty(t, gaps)
	for i := 1; i < len(gaps); i++ {
		assert.True(t, gaps[i].Start.After(gaps[i-1].Start) || gaps[i].Start.Equal(gaps[i-1].Start))
		if sameDate(gaps[i].Date, gaps[i-1].Date) {
			assert.False(t, gaps[i].Start.Before(gaps[i-1].End), "same-day gaps must not overlap")
		}
	}
}

func TestParseClockFallback(t *testing.T) {
	date := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)

	parsed, ok := parseClock(date, "07:45")
	assert.True(t, ok)
	assert.Equal(t, "07:45", parsed.Format("15:04"))

	fallback, ok := parseClock(date, "not-a-time")
	assert.False(t, ok)
	assert.Equal(t, "08:00", fallback.Format("15:04"))
}

func TestParseDueFallback(t *testing.T) {
	due, ok := parseDue("2025-03-14T18:30:00", testNow)
	assert.True(t, ok)
	assert.Equal(t, 18, due.Hour())

	due, ok = parseDue("garbage", testNow)
	assert.False(t, ok)
	assert.Equal(t, testNow.Add(7*24*time.Hour), due)
}
