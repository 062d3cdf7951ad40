package engine

import (
	"math/rand"

	"github.com/Future-R/PrivateDerby/internal/journal"
	"github.com/Future-R/PrivateDerby/internal/world"
)

// execute interprets one action against the state and returns the narration
// it produced. All state mutation for an action happens here, before the
// clock advances; time cost and mode transitions are the engine's job.
//
// Log output is an explicit return value, never a side channel.
func execute(campus *world.Campus, rng *rand.Rand, s *GameState, a Action) []journal.Note {
	switch a.Kind {
	case KindMove:
		target, ok := campus.Lookup(a.Dest)
		if !ok {
			// Dangling edge slipped past the catalog; degrade to a no-op.
			return []journal.Note{journal.Warning("The way is blocked.")}
		}
		s.Location = a.Dest
		return []journal.Note{journal.Info("You head to the " + target.Name + ".")}

	case KindSleep:
		s.Attributes.Energy = s.Attributes.MaxEnergy
		s.Attributes.Spirit = s.Attributes.MaxSpirit
		s.Attributes.AddHealth(10)
		return []journal.Note{
			journal.Success("You crawl into bed and end the day."),
			journal.Event("---- Next day ----"),
		}

	case KindWearUniform:
		s.WearingUniform = true
		return []journal.Note{journal.Success("You change into the academy uniform.")}

	case KindDormStudy:
		s.Academics.AddExp(a.Subject, 2)
		s.Attributes.AddSpirit(-10)
		return []journal.Note{journal.Info("You skim through " + a.Subject.Name() + " notes in your dorm. Efficiency is middling.")}

	case KindShower:
		s.Attributes.AddMood(15)
		s.Attributes.AddHealth(5)
		s.Attributes.AddEnergy(-5)
		return []journal.Note{journal.Success("A hot shower! You feel refreshed.")}

	case KindEatMeal:
		if s.Money < mealPrice {
			// Narrated no-op: the order placed, the wallet empty. Time is
			// still spent; the engine charges the listed cost regardless.
			return []journal.Note{journal.Error("Not enough money...")}
		}
		s.Money -= mealPrice
		s.Attributes.AddEnergy(30)
		return []journal.Note{journal.Success("A delicious carrot burger! Energy restored.")}

	case KindGroupTraining:
		s.Attributes.Speed += 2
		s.Attributes.Stamina += 2
		s.Attributes.Power += 2
		s.Attributes.Guts += 2
		s.Attributes.Intelligence += 1
		s.Attributes.AddEnergy(-30)
		return []journal.Note{journal.Success("You follow the coach through a grueling group session. Everything improved!")}

	case KindSpeedTraining:
		s.Attributes.Speed += 2
		s.Attributes.AddEnergy(-15)
		return []journal.Note{journal.Success("You sweat it out on the track. Speed +2.")}

	case KindLibraryStudy:
		s.Academics.AddExp(a.Subject, 5)
		s.Attributes.Intelligence += 1
		s.Attributes.AddSpirit(-10)
		return []journal.Note{journal.Info("You pore over " + a.Subject.Name() + " in the library.")}

	case KindClassroomStudy:
		s.Academics.AddExp(a.Subject, 4)
		s.Attributes.Intelligence += 0.5
		s.Attributes.AddSpirit(-10)
		return []journal.Note{journal.Info("You review " + a.Subject.Name() + " at your desk.")}

	case KindListen:
		subject := s.CurrentClassSubject
		notes := []journal.Note{journal.Info("You pay close attention to the " + subject.Name() + " lecture.")}

		gain := 2.0
		if rng.Float64() > 0.1 { // 90% chance of the full takeaway
			gain = 5
		}
		s.Academics.AddExp(subject, gain)
		s.Attributes.AddEnergy(-5)

		if rng.Float64() < 0.2 {
			notes = append(notes, journal.Event("The teacher suddenly makes eye contact with you! Your standing rises a little."))
		}
		return notes

	case KindChat:
		s.Attributes.AddMood(3)
		s.Attributes.AddSpirit(-2)
		return []journal.Note{journal.Info("You chat with your deskmate about yesterday's race.")}

	case KindSleepInClass:
		s.Attributes.AddEnergy(5)
		s.Attributes.AddSpirit(5)
		return []journal.Note{journal.Warning("Zzz... you fell asleep in class.")}
	}

	return nil
}
