package export

// Event is one scheduled row to render.
type Event struct {
	Title    string
	Day      string
	Date     string
	Start    string
	End      string
	Duration int
	Status   string
}

// Schedule is the document content shared by all renderers.
type Schedule struct {
	Title  string
	Events []Event
}

// days groups events by date preserving first-seen order. Events arrive
// sorted chronologically, so groups come out in calendar order.
func (s Schedule) days() []dayGroup {
	var groups []dayGroup
	index := map[string]int{}
	for _, ev := range s.Events {
		i, ok := index[ev.Date]
		if !ok {
			i = len(groups)
			index[ev.Date] = i
			groups = append(groups, dayGroup{Date: ev.Date, Day: ev.Day})
		}
		groups[i].Events = append(groups[i].Events, ev)
	}
	return groups
}

type dayGroup struct {
	Date   string
	Day    string
	Events []Event
}
