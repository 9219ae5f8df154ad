package domain

import "time"

// BusinessHours returns the number of hours between start and end that fall
// on weekdays. Partial days count fractionally; Saturdays and Sundays
// contribute nothing. Returns 0 when start is not before end.
func BusinessHours(start, end time.Time) float64 {
	if !start.Before(end) {
		return 0
	}
	var total float64
	cur := start
	for cur.Before(end) {
		next := time.Date(cur.Year(), cur.Month(), cur.Day(), 0, 0, 0, 0, cur.Location()).AddDate(0, 0, 1)
		segEnd := next
		if end.Before(next) {
			segEnd = end
		}
		if wd := cur.Weekday(); wd != time.Saturday && wd != time.Sunday {
			total += segEnd.Sub(cur).Hours()
		}
		cur = next
	}
	return total
}
