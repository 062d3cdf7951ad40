// Package engine contains the simulation core of PrivateDerby: the game
// clock, the action catalog, and the dispatch state machine.
//
// ARCHITECTURAL RULE: the Engine is the single writer of GameState. Callers
// read snapshots and dispatch actions; they never mutate state directly.
package engine

import "fmt"

// MinutesPerDay is the length of one in-game day.
const MinutesPerDay = 24 * 60

// TimeState is the normalized in-game clock.
// Weekday is 0-6 with 0 = Sunday.
type TimeState struct {
	Day     int `json:"day"`
	Hour    int `json:"hour"`
	Minute  int `json:"minute"`
	Weekday int `json:"weekday"`
}

// Advance returns the clock moved forward by the given number of minutes.
// Minutes must be non-negative; zero is a valid no-op. Overnight jumps of
// several hundred minutes resolve in constant time, without per-minute
// stepping.
func (t TimeState) Advance(minutes int) TimeState {
	total := t.Hour*60 + t.Minute + minutes
	days := total / MinutesPerDay
	rem := total % MinutesPerDay

	t.Minute = rem % 60
	t.Hour = rem / 60
	t.Day += days
	t.Weekday = (t.Weekday + days) % 7
	return t
}

// MinuteOfDay returns minutes elapsed since midnight.
func (t TimeState) MinuteOfDay() int {
	return t.Hour*60 + t.Minute
}

var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// ClockString renders the wall clock as "HH:MM". Journal timestamps use this.
func (t TimeState) ClockString() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// String renders the clock with its weekday, e.g. "Mon 06:30".
func (t TimeState) String() string {
	return weekdayNames[t.Weekday%7] + " " + t.ClockString()
}

// The academy year starts on April 1st. Month lengths run April through
// March; February is never in a leap year.
var monthLengths = [12]int{30, 31, 30, 31, 31, 30, 31, 30, 31, 31, 28, 31}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// CalendarDate maps the running day counter to a display date, e.g.
// day 1 -> "Year 1, April 1".
func CalendarDate(day int) string {
	year := 1 + (day-1)/365
	remaining := (day - 1) % 365

	idx := 0
	for remaining >= monthLengths[idx] {
		remaining -= monthLengths[idx]
		idx++
	}
	month := idx + 4
	if month > 12 {
		month -= 12
	}
	return fmt.Sprintf("Year %d, %s %d", year, monthNames[month-1], remaining+1)
}
