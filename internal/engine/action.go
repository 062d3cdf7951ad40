package engine

import "github.com/Future-R/PrivateDerby/internal/domain/student"

// Kind enumerates every action the catalog can produce. Actions are tagged
// variants: the interpreter in exec.go switches on Kind, so no behavior
// hides inside the action value itself.
type Kind string

const (
	KindMove           Kind = "move"
	KindSleep          Kind = "sleep"
	KindWearUniform    Kind = "wear_uniform"
	KindDormStudy      Kind = "dorm_study"
	KindShower         Kind = "shower"
	KindEatMeal        Kind = "eat_meal"
	KindGroupTraining  Kind = "train_group"
	KindSpeedTraining  Kind = "train_speed"
	KindLibraryStudy   Kind = "library_study"
	KindClassroomStudy Kind = "classroom_study"
	KindListen         Kind = "class_listen"
	KindChat           Kind = "class_talk"
	KindSleepInClass   Kind = "class_sleep"
)

// Action is a transient, regenerated-per-query description of one legal
// move. It carries parameters, never closures, and is not part of state.
type Action struct {
	ID          string `json:"id"`
	Kind        Kind   `json:"kind"`
	Label       string `json:"label"`
	CostMinutes int    `json:"cost_minutes"`
	Variant     string `json:"variant,omitempty"` // display hint only

	// Kind-specific parameters.
	Subject student.Subject `json:"subject,omitempty"` // study actions
	Dest    string          `json:"dest,omitempty"`    // movement actions
}
