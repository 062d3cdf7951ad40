package engine

import (
	"github.com/Future-R/PrivateDerby/internal/domain/student"
	"github.com/Future-R/PrivateDerby/internal/world"
)

// Tuning constants for the action catalog.
const (
	mealPrice        = 50
	groupTrainStart  = 840  // 14:00
	groupTrainEnd    = 1020 // 17:00
	morningClasses   = 540  // 09:00; classroom self-study is blocked from here
	classroomFreedAt = 1020 // 17:00; and allowed again from here
)

// Catalog produces the set of currently legal actions for a state. It holds
// only static configuration; the result order is stable for a given state.
type Catalog struct {
	campus *world.Campus
}

// NewCatalog creates an action catalog over a campus configuration.
func NewCatalog(campus *world.Campus) *Catalog {
	return &Catalog{campus: campus}
}

// Available returns the ordered action list for the given state.
// Actions whose conditions fail are silently omitted, never errored.
func (c *Catalog) Available(s *GameState) []Action {
	if s.Mode == ModeClass {
		return classActions()
	}
	return c.freeRoamActions(s)
}

// classActions is the fixed three-action block of Class mode. These are
// unconditional regardless of location or attributes.
func classActions() []Action {
	return []Action{
		{ID: "class_listen", Kind: KindListen, Label: "Pay attention", CostMinutes: 10, Variant: "primary"},
		{ID: "class_talk", Kind: KindChat, Label: "Whisper with your deskmate", CostMinutes: 10, Variant: "secondary"},
		{ID: "class_sleep", Kind: KindSleepInClass, Label: "Doze off", CostMinutes: 10, Variant: "neutral"},
	}
}

func (c *Catalog) freeRoamActions(s *GameState) []Action {
	var actions []Action
	attrs := s.Attributes
	minuteOfDay := s.Time.MinuteOfDay()

	// Movement, one action per outgoing edge. Dangling edge targets are
	// configuration bugs; they are skipped, not surfaced.
	for _, conn := range c.campus.ConnectionsFrom(s.Location) {
		target, ok := c.campus.Lookup(conn.To)
		if !ok {
			continue
		}
		actions = append(actions, Action{
			ID:          "move_to_" + conn.To,
			Kind:        KindMove,
			Label:       "Go to " + target.Name,
			CostMinutes: conn.Minutes,
			Dest:        conn.To,
		})
	}

	switch s.Location {
	case "dorm":
		if s.Time.Hour >= 20 || s.Time.Hour < 5 {
			// The real cost is computed from the clock at dispatch; see exec.go.
			actions = append(actions, Action{
				ID: "sleep", Kind: KindSleep, Label: "Sleep until morning", Variant: "primary",
			})
		}
		if !s.WearingUniform {
			actions = append(actions, Action{
				ID: "wear_uniform", Kind: KindWearUniform, Label: "Change into uniform", CostMinutes: 5,
			})
		}
		if attrs.Spirit >= 15 {
			for _, subj := range student.AllSubjects {
				actions = append(actions, Action{
					ID:          "dorm_study_" + string(subj),
					Kind:        KindDormStudy,
					Label:       "Self-study: " + subj.Name(),
					CostMinutes: 30,
					Subject:     subj,
				})
			}
		}

	case "bathroom":
		if attrs.Energy >= 5 {
			actions = append(actions, Action{
				ID: "shower", Kind: KindShower, Label: "Take a shower", CostMinutes: 30, Variant: "primary",
			})
		}

	case "cafeteria":
		// Visible even when money is short: the order still gets placed,
		// the wallet check happens at the counter.
		if attrs.Energy < attrs.MaxEnergy {
			actions = append(actions, Action{
				ID: "eat_meal", Kind: KindEatMeal, Label: "Order a carrot burger", CostMinutes: 20, Variant: "primary",
			})
		}

	case "training_field":
		if minuteOfDay >= groupTrainStart && minuteOfDay < groupTrainEnd && attrs.Energy >= 30 {
			actions = append(actions, Action{
				ID: "train_group", Kind: KindGroupTraining, Label: "Join group training", CostMinutes: 60, Variant: "primary",
			})
		}
		if attrs.Energy >= 15 {
			actions = append(actions, Action{
				ID: "train_speed", Kind: KindSpeedTraining, Label: "Solo speed training", CostMinutes: 30, Variant: "secondary",
			})
		}

	case "library":
		if attrs.Spirit >= 10 {
			for _, subj := range student.AllSubjects {
				actions = append(actions, Action{
					ID:          "lib_study_" + string(subj),
					Kind:        KindLibraryStudy,
					Label:       "Study: " + subj.Name(),
					CostMinutes: 30,
					Subject:     subj,
					Variant:     "secondary",
				})
			}
		}

	case "classroom":
		// Desks are free outside teaching hours only.
		if (minuteOfDay < morningClasses || minuteOfDay >= classroomFreedAt) && attrs.Spirit >= 10 {
			for _, subj := range student.AllSubjects {
				actions = append(actions, Action{
					ID:          "class_study_" + string(subj),
					Kind:        KindClassroomStudy,
					Label:       "Self-study: " + subj.Name(),
					CostMinutes: 30,
					Subject:     subj,
				})
			}
		}
	}

	return actions
}
