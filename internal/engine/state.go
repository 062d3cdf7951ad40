package engine

import (
	"github.com/Future-R/PrivateDerby/internal/domain/rules"
	"github.com/Future-R/PrivateDerby/internal/domain/student"
	"github.com/Future-R/PrivateDerby/internal/journal"
)

// Mode is the top-level state of the simulation.
type Mode string

const (
	ModeFreeRoam Mode = "FREE_ROAM"
	ModeClass    Mode = "CLASS"
	ModeEvent    Mode = "EVENT" // reserved, never entered yet
)

// classTurns is the fixed length of a class block.
const classTurns = 5

// GameState is the aggregate root. The Engine exclusively owns and mutates
// it; every other package sees it only through snapshots.
type GameState struct {
	Time           TimeState
	Location       string
	Mode           Mode
	Attributes     student.Attributes
	Academics      student.AcademicStats
	Money          int
	WearingUniform bool
	Logs           []journal.Entry

	// Class block state. CurrentClassSubject is set iff Mode == ModeClass.
	CurrentClassSubject student.Subject
	ClassTurn           int // 1..classTurns
}

// NewGameState returns the opening state: Monday 06:30 of day one, in the
// dorm, with the standard allowance.
func NewGameState() GameState {
	return GameState{
		Time:       TimeState{Day: 1, Hour: 6, Minute: 30, Weekday: 1},
		Location:   "dorm",
		Mode:       ModeFreeRoam,
		Attributes: student.NewAttributes(),
		Academics:  student.NewAcademicStats(),
		Money:      1000,
		ClassTurn:  1,
	}
}

// SubjectReport is the rendered academic standing for one subject.
type SubjectReport struct {
	Subject student.Subject `json:"subject"`
	Name    string          `json:"name"`
	Exp     float64         `json:"exp"`
	Grade   string          `json:"grade"`
}

// Snapshot is the read-only view handed to presentation collaborators.
type Snapshot struct {
	Time           TimeState          `json:"time"`
	Date           string             `json:"date"`
	Location       string             `json:"location"`
	Mode           Mode               `json:"mode"`
	Attributes     student.Attributes `json:"attributes"`
	Academics      []SubjectReport    `json:"academics"`
	Money          int                `json:"money"`
	WearingUniform bool               `json:"wearing_uniform"`
	Logs           []journal.Entry    `json:"logs"`

	CurrentClassSubject student.Subject `json:"current_class_subject,omitempty"`
	ClassTurn           int             `json:"class_turn"`
}

// snapshot copies the state into an independent view. Academic grades are
// derived here, never stored, so they cannot desync from experience.
func (s *GameState) snapshot() Snapshot {
	reports := make([]SubjectReport, 0, len(student.AllSubjects))
	for _, subj := range student.AllSubjects {
		exp := s.Academics.Exp(subj)
		reports = append(reports, SubjectReport{
			Subject: subj,
			Name:    subj.Name(),
			Exp:     exp,
			Grade:   rules.CalculateGrade(exp),
		})
	}

	logs := make([]journal.Entry, len(s.Logs))
	copy(logs, s.Logs)

	snap := Snapshot{
		Time:           s.Time,
		Date:           CalendarDate(s.Time.Day),
		Location:       s.Location,
		Mode:           s.Mode,
		Attributes:     s.Attributes,
		Academics:      reports,
		Money:          s.Money,
		WearingUniform: s.WearingUniform,
		Logs:           logs,
		ClassTurn:      s.ClassTurn,
	}
	if s.Mode == ModeClass {
		snap.CurrentClassSubject = s.CurrentClassSubject
	}
	return snap
}
