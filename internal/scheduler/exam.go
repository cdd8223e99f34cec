package scheduler

import (
	"strings"
	"time"
)

// placeExam pins an exam task to its course's weekly slot on the due date.
// Exams never split and never touch the gap pool; with no matching course
// the exam becomes a default one-hour block at the due instant.
func (e *Engine) placeExam(task Task, payload Payload, now time.Time) Session {
	examDate, _ := parseDue(task.Due, now)
	taskName := strings.ToUpper(task.Name)

	var matched *CourseBlock
	for i := range payload.Courses {
		courseName := strings.ToUpper(payload.Courses[i].Name)
		if courseName == "" {
			continue
		}
		prefix := courseName
		if len(prefix) > 3 {
			prefix = prefix[:3]
		}
		if strings.Contains(taskName, courseName) || strings.HasPrefix(taskName, prefix) {
			matched = &payload.Courses[i]
			break
		}
	}

	title := "EXAM: " + task.Name
	if matched != nil {
		start, _ := parseClock(examDate, matched.Start)
		end, _ := parseClock(examDate, matched.End)
		return Session{
			TaskID:   task.ID,
			Title:    title,
			Day:      weekdayName(examDate),
			Date:     examDate.Format("01/02/2006"),
			Start:    start.Format("15:04"),
			End:      end.Format("15:04"),
			Duration: minutesBetween(start, end),
			Color:    colorExam,
			Status:   StatusExam,
		}
	}

	return Session{
		TaskID:   task.ID,
		Title:    title,
		Day:      weekdayName(examDate),
		Date:     examDate.Format("01/02/2006"),
		Start:    examDate.Format("15:04"),
		End:      examDate.Add(time.Hour).Format("15:04"),
		Duration: 60,
		Color:    colorExam,
		Status:   StatusExam,
	}
}
