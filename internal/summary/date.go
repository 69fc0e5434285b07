package summary

import "time"

// RelativeDate formats t relative to now: "Today", "Yesterday",
// "2 Jan" for dates in the current year and "2 Jan 2023" otherwise.
//
// Both times are compared in the location of now.
func RelativeDate(t, now time.Time) string {
	t = t.In(now.Location())

	if sameDay(t, now) {
		return "Today"
	}

	if sameDay(t, now.AddDate(0, 0, -1)) {
		return "Yesterday"
	}

	if t.Year() == now.Year() {
		return t.Format("2 Jan")
	}

	return t.Format("2 Jan 2006")
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}
