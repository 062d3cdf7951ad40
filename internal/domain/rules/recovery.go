package rules

// MoodDriftThreshold is the minimum action duration (minutes) that nudges
// mood toward its resting point.
const MoodDriftThreshold = 30

// MoodRestingPoint is the value mood drifts toward over time.
const MoodRestingPoint = 50

// DriftMood nudges mood exactly one point toward the resting point when the
// elapsed duration is long enough. The nudge is a fixed step, not
// proportional to the duration.
func DriftMood(mood, elapsedMinutes int) int {
	if elapsedMinutes < MoodDriftThreshold {
		return mood
	}
	switch {
	case mood > MoodRestingPoint:
		return mood - 1
	case mood < MoodRestingPoint:
		return mood + 1
	default:
		return mood
	}
}

// WakeUpHour is when a full night's sleep ends.
const WakeUpHour = 6

// SleepDuration computes how many minutes the dorm sleep action spans,
// given the current clock. Sleep always ends at 06:00, crossing midnight
// when started in the evening.
func SleepDuration(hour, minute int) int {
	if hour >= 20 {
		return (24-hour)*60 - minute + WakeUpHour*60
	}
	return WakeUpHour*60 - (hour*60 + minute)
}
