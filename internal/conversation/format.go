package conversation

import "time"

// FormatTimestamp renders a message timestamp the way the viewer shows it:
// relative day labels for the current and previous day in the viewer's
// timezone, a full date otherwise. now supplies the reference instant so the
// label is stable within one page render (and testable).
func FormatTimestamp(t time.Time, loc *time.Location, now time.Time) string {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	ref := now.In(loc)

	clock := local.Format("3:04 PM")
	switch {
	case sameDay(local, ref):
		return "Today " + clock
	case sameDay(local, ref.AddDate(0, 0, -1)):
		return "Yesterday " + clock
	default:
		return local.Format("Jan 2, 2006 3:04 PM")
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
