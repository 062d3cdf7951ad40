package engine

import (
	"strings"
	"testing"

	"github.com/Future-R/PrivateDerby/internal/domain/student"
	"github.com/Future-R/PrivateDerby/internal/journal"
	"github.com/Future-R/PrivateDerby/internal/platform/logger"
	"github.com/Future-R/PrivateDerby/internal/world"
)

func newTestEngine() *Engine {
	e := NewEngine(world.Default(), logger.NewLogger())
	e.Reseed(1)
	return e
}

func TestInitialState(t *testing.T) {
	e := newTestEngine()
	snap := e.Snapshot()

	if snap.Time.Day != 1 || snap.Time.Hour != 6 || snap.Time.Minute != 30 || snap.Time.Weekday != 1 {
		t.Errorf("Expected Monday 06:30 day 1, got %+v", snap.Time)
	}
	if snap.Location != "dorm" {
		t.Errorf("Expected start location dorm, got %s", snap.Location)
	}
	if snap.Mode != ModeFreeRoam {
		t.Errorf("Expected free roam mode, got %s", snap.Mode)
	}
	if snap.Money != 1000 {
		t.Errorf("Expected 1000 starting money, got %d", snap.Money)
	}
	for _, report := range snap.Academics {
		if report.Exp != 0 || report.Grade != "G" {
			t.Errorf("Expected %s to start at 0 exp grade G, got %v/%s", report.Subject, report.Exp, report.Grade)
		}
	}
}

func TestDispatchUnknownActionRejected(t *testing.T) {
	e := newTestEngine()
	if _, err := e.Dispatch("rob_the_cafeteria"); err == nil {
		t.Errorf("Expected an error for an action outside the catalog")
	}
}

func TestDispatchAppendsNarration(t *testing.T) {
	e := newTestEngine()

	snap, err := e.Dispatch("move_to_bathroom")
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if len(snap.Logs) == 0 {
		t.Fatalf("Expected at least one journal entry after dispatch")
	}
	last := snap.Logs[len(snap.Logs)-1]
	if last.Type != journal.TypeInfo {
		t.Errorf("Expected info entry for travel, got %s", last.Type)
	}
	if last.Timestamp != "06:30" {
		t.Errorf("Expected narration stamped with pre-advance clock 06:30, got %s", last.Timestamp)
	}
	if snap.Location != "bathroom" {
		t.Errorf("Expected location bathroom, got %s", snap.Location)
	}
	if snap.Time.Minute != 31 {
		t.Errorf("Expected 1 minute travel cost, got minute %d", snap.Time.Minute)
	}
}

func TestSleepEndsAtSixInTheMorning(t *testing.T) {
	e := newTestEngine()
	e.state.Time = TimeState{Day: 1, Hour: 21, Minute: 30, Weekday: 1}
	e.state.Attributes.Energy = 20
	e.state.Attributes.Spirit = 10
	e.state.Attributes.Health = 80

	snap, err := e.Dispatch("sleep")
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	if snap.Time.Day != 2 || snap.Time.Hour != 6 || snap.Time.Minute != 0 {
		t.Errorf("Expected day 2 06:00, got day %d %02d:%02d", snap.Time.Day, snap.Time.Hour, snap.Time.Minute)
	}
	if snap.Time.Weekday != 2 {
		t.Errorf("Expected Tuesday after sleeping, got weekday %d", snap.Time.Weekday)
	}
	if snap.Attributes.Energy != snap.Attributes.MaxEnergy {
		t.Errorf("Expected full energy after sleep, got %d", snap.Attributes.Energy)
	}
	if snap.Attributes.Spirit != snap.Attributes.MaxSpirit {
		t.Errorf("Expected full spirit after sleep, got %d", snap.Attributes.Spirit)
	}
	if snap.Attributes.Health != 90 {
		t.Errorf("Expected health 80+10, got %d", snap.Attributes.Health)
	}
}

func TestSleepHealthCappedAtMax(t *testing.T) {
	e := newTestEngine()
	e.state.Time = TimeState{Day: 1, Hour: 22, Minute: 0, Weekday: 1}
	e.state.Attributes.Health = 95

	snap, err := e.Dispatch("sleep")
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if snap.Attributes.Health != snap.Attributes.MaxHealth {
		t.Errorf("Expected health clamped to max, got %d", snap.Attributes.Health)
	}
}

func TestSleepBeforeDawn(t *testing.T) {
	e := newTestEngine()
	e.state.Time = TimeState{Day: 4, Hour: 2, Minute: 15, Weekday: 4}

	snap, err := e.Dispatch("sleep")
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if snap.Time.Day != 4 || snap.Time.Hour != 6 || snap.Time.Minute != 0 {
		t.Errorf("Expected same day 06:00, got day %d %02d:%02d", snap.Time.Day, snap.Time.Hour, snap.Time.Minute)
	}
}

func TestMealWithInsufficientFunds(t *testing.T) {
	e := newTestEngine()
	e.state.Location = "cafeteria"
	e.state.Money = 30
	e.state.Attributes.Energy = 50

	snap, err := e.Dispatch("eat_meal")
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	if snap.Money != 30 {
		t.Errorf("Expected money untouched at 30, got %d", snap.Money)
	}
	if snap.Attributes.Energy != 50 {
		t.Errorf("Expected energy untouched at 50, got %d", snap.Attributes.Energy)
	}
	last := snap.Logs[len(snap.Logs)-1]
	if last.Type != journal.TypeError {
		t.Errorf("Expected error-typed entry, got %s", last.Type)
	}
	// Intentional friction: the failed order still consumes the 20 minutes.
	if snap.Time.Hour != 6 || snap.Time.Minute != 50 {
		t.Errorf("Expected clock advanced to 06:50, got %02d:%02d", snap.Time.Hour, snap.Time.Minute)
	}
}

func TestMealDeductsMoneyAndRestoresEnergy(t *testing.T) {
	e := newTestEngine()
	e.state.Location = "cafeteria"
	e.state.Attributes.Energy = 85

	snap, err := e.Dispatch("eat_meal")
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if snap.Money != 950 {
		t.Errorf("Expected money 950 after a 50 meal, got %d", snap.Money)
	}
	if snap.Attributes.Energy != snap.Attributes.MaxEnergy {
		t.Errorf("Expected energy capped at max, got %d", snap.Attributes.Energy)
	}
}

func TestMoodDriftsTowardFiftyOnLongActions(t *testing.T) {
	e := newTestEngine()
	if e.state.Attributes.Mood != 80 {
		t.Fatalf("Expected starting mood 80, got %d", e.state.Attributes.Mood)
	}

	// A 5 minute move is too short to drift.
	if _, err := e.Dispatch("move_to_school_gate"); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if e.state.Attributes.Mood != 80 {
		t.Errorf("Expected no drift on a short action, got %d", e.state.Attributes.Mood)
	}

	// A 30 minute study session drifts exactly one point.
	e.state.Location = "library"
	if _, err := e.Dispatch("lib_study_math"); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if e.state.Attributes.Mood != 79 {
		t.Errorf("Expected mood 79 after one long action, got %d", e.state.Attributes.Mood)
	}
}

func TestMoodDriftIsFixedStepNotProportional(t *testing.T) {
	e := newTestEngine()
	e.state.Time = TimeState{Day: 1, Hour: 21, Minute: 0, Weekday: 1}
	e.state.Attributes.Mood = 80

	// Sleep spans 540 minutes but still drifts mood by exactly one point.
	if _, err := e.Dispatch("sleep"); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if e.state.Attributes.Mood != 79 {
		t.Errorf("Expected mood 79 after overnight sleep, got %d", e.state.Attributes.Mood)
	}
}

func TestClassStartsWhenEnteringClassroomDuringSlot(t *testing.T) {
	e := newTestEngine()
	// Monday 08:58 at the school gate; the 5 minute walk lands at 09:03,
	// inside the Math slot.
	e.state.Time = TimeState{Day: 1, Hour: 8, Minute: 58, Weekday: 1}
	e.state.Location = "school_gate"

	snap, err := e.Dispatch("move_to_classroom")
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	if snap.Mode != ModeClass {
		t.Fatalf("Expected class mode, got %s", snap.Mode)
	}
	if snap.CurrentClassSubject != student.SubjectMath {
		t.Errorf("Expected Math class, got %s", snap.CurrentClassSubject)
	}
	if snap.ClassTurn != 1 {
		t.Errorf("Expected class turn 1, got %d", snap.ClassTurn)
	}
}

func TestClassEndsAfterFiveTurns(t *testing.T) {
	e := newTestEngine()
	e.state.Time = TimeState{Day: 1, Hour: 8, Minute: 58, Weekday: 1}
	e.state.Location = "school_gate"
	if _, err := e.Dispatch("move_to_classroom"); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	for turn := 1; turn <= 4; turn++ {
		snap, err := e.Dispatch("class_listen")
		if err != nil {
			t.Fatalf("Dispatch %d failed: %v", turn, err)
		}
		if snap.Mode != ModeClass {
			t.Fatalf("Expected class to continue on turn %d, got %s", turn, snap.Mode)
		}
		if snap.ClassTurn != turn+1 {
			t.Errorf("Expected class turn %d, got %d", turn+1, snap.ClassTurn)
		}
	}

	snap, err := e.Dispatch("class_sleep")
	if err != nil {
		t.Fatalf("Final class dispatch failed: %v", err)
	}
	if snap.Mode != ModeFreeRoam {
		t.Errorf("Expected free roam after five turns, got %s", snap.Mode)
	}
	if snap.ClassTurn != 1 {
		t.Errorf("Expected class turn reset to 1, got %d", snap.ClassTurn)
	}
	if snap.CurrentClassSubject != "" {
		t.Errorf("Expected class subject cleared, got %s", snap.CurrentClassSubject)
	}
}

func TestListenGainsExperienceAndCostsEnergy(t *testing.T) {
	e := newTestEngine()
	e.state.Time = TimeState{Day: 1, Hour: 8, Minute: 58, Weekday: 1}
	e.state.Location = "school_gate"
	if _, err := e.Dispatch("move_to_classroom"); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	before := e.state.Academics.Exp(student.SubjectMath)
	snap, err := e.Dispatch("class_listen")
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	gain := snap.Academics[indexOf(snap, student.SubjectMath)].Exp - before
	if gain != 2 && gain != 5 {
		t.Errorf("Expected +2 or +5 exp from listening, got %v", gain)
	}
	if snap.Attributes.Energy != 95 {
		t.Errorf("Expected energy 95 after listening, got %d", snap.Attributes.Energy)
	}
}

func TestListenIsDeterministicForASeed(t *testing.T) {
	run := func() float64 {
		e := newTestEngine()
		e.state.Time = TimeState{Day: 1, Hour: 8, Minute: 58, Weekday: 1}
		e.state.Location = "school_gate"
		if _, err := e.Dispatch("move_to_classroom"); err != nil {
			t.Fatalf("Dispatch failed: %v", err)
		}
		for i := 0; i < 3; i++ {
			if _, err := e.Dispatch("class_listen"); err != nil {
				t.Fatalf("Dispatch failed: %v", err)
			}
		}
		return e.state.Academics.Exp(student.SubjectMath)
	}

	if first, second := run(), run(); first != second {
		t.Errorf("Expected identical outcomes for the same seed, got %v and %v", first, second)
	}
}

func TestTardinessWarningFiresExactlyOnce(t *testing.T) {
	e := newTestEngine()
	// Monday 09:00 at the school gate. Walking home takes 5 minutes and
	// lands exactly on slot start + 5.
	e.state.Time = TimeState{Day: 1, Hour: 9, Minute: 0, Weekday: 1}
	e.state.Location = "school_gate"

	snap, err := e.Dispatch("move_to_dorm")
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if countWarnings(snap.Logs, "late") != 1 {
		t.Errorf("Expected exactly one tardiness warning, got %d", countWarnings(snap.Logs, "late"))
	}

	// Further actions inside the slot do not repeat the warning.
	snap, err = e.Dispatch("move_to_bathroom")
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if countWarnings(snap.Logs, "late") != 1 {
		t.Errorf("Expected the warning not to repeat, got %d", countWarnings(snap.Logs, "late"))
	}
}

func TestNoClassOnWeekends(t *testing.T) {
	e := newTestEngine()
	// Sunday 09:03 in the classroom; no class should start.
	e.state.Time = TimeState{Day: 7, Hour: 9, Minute: 0, Weekday: 0}
	e.state.Location = "classroom"
	e.checkSchedule()

	if e.state.Mode != ModeFreeRoam {
		t.Errorf("Expected free roam on Sunday, got %s", e.state.Mode)
	}
}

func TestCurfewNotice(t *testing.T) {
	e := newTestEngine()
	e.state.Time = TimeState{Day: 1, Hour: 21, Minute: 30, Weekday: 1}
	e.state.Location = "library"

	// 30 minutes of study lands exactly on 22:00.
	snap, err := e.Dispatch("lib_study_art")
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if countWarnings(snap.Logs, "Curfew") != 1 {
		t.Errorf("Expected one curfew notice at 22:00, got %d", countWarnings(snap.Logs, "Curfew"))
	}
}

func TestLogsAreAppendOnly(t *testing.T) {
	e := newTestEngine()

	var previous []journal.Entry
	for _, id := range []string{"move_to_bathroom", "shower", "move_to_dorm"} {
		snap, err := e.Dispatch(id)
		if err != nil {
			t.Fatalf("Dispatch %s failed: %v", id, err)
		}
		if len(snap.Logs) <= len(previous) {
			t.Fatalf("Expected logs to grow on %s", id)
		}
		for i, entry := range previous {
			if snap.Logs[i] != entry {
				t.Fatalf("Expected existing entries untouched, entry %d changed", i)
			}
		}
		previous = snap.Logs
	}
}

type recordingPersister struct {
	entries []journal.Entry
}

func (r *recordingPersister) Append(entry journal.Entry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func TestPersisterReceivesEveryEntry(t *testing.T) {
	e := newTestEngine()
	rec := &recordingPersister{}
	e.SetPersister(rec)

	snap, err := e.Dispatch("move_to_school_gate")
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if len(rec.entries) != len(snap.Logs) {
		t.Errorf("Expected %d persisted entries, got %d", len(snap.Logs), len(rec.entries))
	}
}

func indexOf(snap Snapshot, subject student.Subject) int {
	for i, r := range snap.Academics {
		if r.Subject == subject {
			return i
		}
	}
	return -1
}

func countWarnings(logs []journal.Entry, substr string) int {
	count := 0
	for _, entry := range logs {
		if entry.Type == journal.TypeWarning && strings.Contains(entry.Text, substr) {
			count++
		}
	}
	return count
}
