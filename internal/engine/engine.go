package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Future-R/PrivateDerby/internal/domain/rules"
	"github.com/Future-R/PrivateDerby/internal/journal"
	"github.com/Future-R/PrivateDerby/internal/platform/logger"
	"github.com/Future-R/PrivateDerby/internal/world"
)

// Engine is the orchestrator. It owns the canonical GameState and is the
// only code allowed to mutate it. Dispatches are strictly sequential; there
// is no concurrency inside the simulation.
type Engine struct {
	campus    *world.Campus
	catalog   *Catalog
	logger    *logger.Logger
	rng       *rand.Rand
	persister journal.Persister

	state GameState
}

// NewEngine wires the simulation core over a campus configuration.
func NewEngine(campus *world.Campus, log *logger.Logger) *Engine {
	return &Engine{
		campus:  campus,
		catalog: NewCatalog(campus),
		logger:  log,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		state:   NewGameState(),
	}
}

// Reseed replaces the random source. Tests use this to pin the two random
// hooks (the listen roll and the eye-contact event).
func (e *Engine) Reseed(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
}

// SetPersister attaches a write-through store for journal entries.
// Persistence failures are logged server-side and never interrupt play.
func (e *Engine) SetPersister(p journal.Persister) {
	e.persister = p
}

// Actions returns the ordered list of currently legal actions.
// Querying is read-only and produces no journal entries.
func (e *Engine) Actions() []Action {
	return e.catalog.Available(&e.state)
}

// Snapshot returns an independent copy of the full game state for rendering.
func (e *Engine) Snapshot() Snapshot {
	return e.state.snapshot()
}

// Dispatch executes the action with the given id and returns the resulting
// snapshot. The id must come from the current Actions() list; anything else
// is rejected. This is the single mutating entry point.
func (e *Engine) Dispatch(actionID string) (Snapshot, error) {
	action, ok := findAction(e.catalog.Available(&e.state), actionID)
	if !ok {
		return e.state.snapshot(), fmt.Errorf("action %q is not available", actionID)
	}

	preMode := e.state.Mode
	preTime := e.state.Time

	// 1. Interpret the action's effects against the current state.
	notes := execute(e.campus, e.rng, &e.state, action)

	// 2. Resolve the real time cost. The dorm sleep jump is computed from
	// the pre-dispatch clock so it always lands on 06:00.
	cost := action.CostMinutes
	if action.Kind == KindSleep {
		cost = rules.SleepDuration(preTime.Hour, preTime.Minute)
	}

	// 3. Narration carries the clock as it read when the action started.
	e.append(preTime, notes...)

	// 4. Advance the clock, with its bundled mood drift.
	e.state.Time = e.state.Time.Advance(cost)
	e.state.Attributes.Mood = rules.DriftMood(e.state.Attributes.Mood, cost)

	// 5. Class blocks run a fixed number of turns.
	if preMode == ModeClass {
		e.advanceClassTurn()
	}

	// 6. The timetable may force a mode transition at the new time/place.
	e.checkSchedule()

	e.logger.Event("DISPATCH", action.ID, e.state.Time.String())
	return e.state.snapshot(), nil
}

func findAction(actions []Action, id string) (Action, bool) {
	for _, a := range actions {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}

// advanceClassTurn moves the 5-turn class block forward, ending it when the
// last turn has been spent.
func (e *Engine) advanceClassTurn() {
	if e.state.ClassTurn >= classTurns {
		e.append(e.state.Time, journal.Event("The bell rings. Class is over."))
		e.state.Mode = ModeFreeRoam
		e.state.ClassTurn = 1
		e.state.CurrentClassSubject = ""
		return
	}
	e.state.ClassTurn++
}

// checkSchedule runs after every time advance or location change. It starts
// a class when the student is in the classroom during a scheduled slot,
// warns stragglers exactly five minutes past the bell, and posts the 22:00
// curfew notice.
func (e *Engine) checkSchedule() {
	t := e.state.Time
	minuteOfDay := t.MinuteOfDay()

	if entry, ok := e.campus.ClassAt(t.Weekday, minuteOfDay); ok && e.state.Mode != ModeClass {
		if e.state.Location == "classroom" {
			e.append(t, journal.Event("Class is starting: "+entry.Subject.Name()))
			e.state.Mode = ModeClass
			e.state.CurrentClassSubject = entry.Subject
			e.state.ClassTurn = 1
		} else if minuteOfDay == entry.Start+5 {
			e.append(t, journal.Warning("You're late! Get to the classroom!"))
		}
	}

	if t.Hour == 22 && t.Minute == 0 {
		e.append(t, journal.Warning("Curfew. The dorm and the main gate are about to close."))
	}
}

// append stamps notes into full entries, adds them to the session log, and
// writes them through to the persister when one is attached.
func (e *Engine) append(at TimeState, notes ...journal.Note) {
	for _, n := range notes {
		entry := journal.Stamp(n, at.ClockString())
		e.state.Logs = append(e.state.Logs, entry)
		if e.persister != nil {
			if err := e.persister.Append(entry); err != nil {
				e.logger.Error("failed to persist journal entry: " + err.Error())
			}
		}
	}
}
