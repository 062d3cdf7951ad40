// Package rules contains the pure calculation logic for game mechanics.
// This package is PURE and must NOT import any infrastructure packages.
package rules

// GradeThreshold pairs a letter grade with the minimum experience it requires.
type GradeThreshold struct {
	Grade string
	Exp   float64
}

// gradeThresholds is scanned highest-to-lowest; the first threshold the
// experience meets or exceeds wins.
var gradeThresholds = []GradeThreshold{
	{"S", 320},
	{"A", 160},
	{"B", 80},
	{"C", 60},
	{"D", 40},
	{"E", 20},
	{"F", 10},
	{"G", 0},
}

// CalculateGrade derives the letter grade for an experience total.
// Negative totals (which the engine never produces) fall through to "G".
func CalculateGrade(exp float64) string {
	for _, t := range gradeThresholds {
		if exp >= t.Exp {
			return t.Grade
		}
	}
	return "G"
}
