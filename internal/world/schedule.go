package world

// Weekday numbering follows the clock: 0 = Sunday.
const (
	weekdayMonday = 1
	weekdayFriday = 5
)

// ClassAt returns the schedule entry whose window contains minuteOfDay on a
// school day (Monday through Friday). Windows are [start, end). When entries
// overlap the first declared entry wins.
func (c *Campus) ClassAt(weekday, minuteOfDay int) (ScheduleEntry, bool) {
	if weekday < weekdayMonday || weekday > weekdayFriday {
		return ScheduleEntry{}, false
	}
	for _, entry := range c.schedule {
		if minuteOfDay >= entry.Start && minuteOfDay < entry.End {
			return entry, true
		}
	}
	return ScheduleEntry{}, false
}

// Schedule returns the raw timetable in declaration order.
func (c *Campus) Schedule() []ScheduleEntry {
	return c.schedule
}
