// Package student defines the core domain entities for the player character.
// This package is PURE and must NOT import any infrastructure packages (network, journal, platform).
package student

// Subject identifies one of the eight academic subjects taught at the academy.
type Subject string

const (
	SubjectChinese     Subject = "chinese"
	SubjectHistory     Subject = "history"
	SubjectMath        Subject = "math"
	SubjectBiology     Subject = "biology"
	SubjectMusic       Subject = "music"
	SubjectArt         Subject = "art"
	SubjectMaintenance Subject = "maintenance"
	SubjectHomeEc      Subject = "home_ec"
)

// AllSubjects lists every subject in catalog order. Action generation and
// snapshot rendering both iterate this slice, never the academics map.
var AllSubjects = []Subject{
	SubjectChinese,
	SubjectHistory,
	SubjectMath,
	SubjectBiology,
	SubjectMusic,
	SubjectArt,
	SubjectMaintenance,
	SubjectHomeEc,
}

var subjectNames = map[Subject]string{
	SubjectChinese:     "Chinese",
	SubjectHistory:     "History",
	SubjectMath:        "Math",
	SubjectBiology:     "Biology",
	SubjectMusic:       "Music",
	SubjectArt:         "Art",
	SubjectMaintenance: "Maintenance",
	SubjectHomeEc:      "Home Economics",
}

// Name returns the display name of the subject.
func (s Subject) Name() string {
	if n, ok := subjectNames[s]; ok {
		return n
	}
	return string(s)
}

// Attributes holds the survival and competition stats of the student.
type Attributes struct {
	// Survival
	Energy    int `json:"energy"`
	MaxEnergy int `json:"max_energy"`
	Spirit    int `json:"spirit"`
	MaxSpirit int `json:"max_spirit"`
	Health    int `json:"health"`
	MaxHealth int `json:"max_health"`
	Mood      int `json:"mood"` // 0-100, drifts toward 50 over time

	// Competition (hidden in the main UI)
	Speed        float64 `json:"speed"`
	Stamina      float64 `json:"stamina"`
	Power        float64 `json:"power"`
	Guts         float64 `json:"guts"`
	Intelligence float64 `json:"intelligence"`
}

// NewAttributes returns the starting attribute block: survival stats at
// their caps, mood at 80, competition stats at 100.
func NewAttributes() Attributes {
	return Attributes{
		Energy:       100,
		MaxEnergy:    100,
		Spirit:       100,
		MaxSpirit:    100,
		Health:       100,
		MaxHealth:    100,
		Mood:         80,
		Speed:        100,
		Stamina:      100,
		Power:        100,
		Guts:         100,
		Intelligence: 100,
	}
}

// AddEnergy applies a delta and clamps to [0, MaxEnergy].
func (a *Attributes) AddEnergy(delta int) {
	a.Energy = clampInt(a.Energy+delta, 0, a.MaxEnergy)
}

// AddSpirit applies a delta and clamps to [0, MaxSpirit].
func (a *Attributes) AddSpirit(delta int) {
	a.Spirit = clampInt(a.Spirit+delta, 0, a.MaxSpirit)
}

// AddHealth applies a delta and clamps to [0, MaxHealth].
func (a *Attributes) AddHealth(delta int) {
	a.Health = clampInt(a.Health+delta, 0, a.MaxHealth)
}

// AddMood applies a delta and clamps to [0, 100].
func (a *Attributes) AddMood(delta int) {
	a.Mood = clampInt(a.Mood+delta, 0, 100)
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// SubjectProgress tracks accumulated experience in one subject.
// The letter grade is always derived from Exp, never stored.
type SubjectProgress struct {
	Exp float64 `json:"exp"`
}

// AcademicStats maps every subject to its progress record.
type AcademicStats map[Subject]SubjectProgress

// NewAcademicStats returns a fresh record with zero experience everywhere.
func NewAcademicStats() AcademicStats {
	stats := make(AcademicStats, len(AllSubjects))
	for _, s := range AllSubjects {
		stats[s] = SubjectProgress{}
	}
	return stats
}

// AddExp accumulates experience for a subject. Amounts may be fractional.
func (as AcademicStats) AddExp(subject Subject, amount float64) {
	p := as[subject]
	p.Exp += amount
	as[subject] = p
}

// Exp returns the accumulated experience for a subject.
func (as AcademicStats) Exp(subject Subject) float64 {
	return as[subject].Exp
}

// Clone returns an independent copy of the academic record.
func (as AcademicStats) Clone() AcademicStats {
	out := make(AcademicStats, len(as))
	for k, v := range as {
		out[k] = v
	}
	return out
}
