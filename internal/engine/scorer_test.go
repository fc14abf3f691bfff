package engine

import (
	"testing"

	"routinegen/internal/models"
)

func TestScorePrefersFocusMuscles(t *testing.T) {
	e := seedEngine()
	req := gymRequest(models.ExpIntermediate)
	req.Preferences.MuscleFocus = []models.MuscleGroup{models.MusclePecho}

	res, err := e.filterCandidates(req)
	if err != nil {
		t.Fatalf("filterCandidates: %v", err)
	}
	scored := e.scoreCandidates(req, res.candidates)
	if len(scored) == 0 {
		t.Fatal("expected scored candidates")
	}
	if !scored[0].TargetsMuscle(models.MusclePecho) {
		t.Errorf("top candidate %s does not target the focus muscle", scored[0].Name)
	}
}

func TestScoreCompoundBeatsIsolationForTopFocus(t *testing.T) {
	e := seedEngine()
	req := gymRequest(models.ExpIntermediate)
	req.Preferences.MuscleFocus = []models.MuscleGroup{models.MusclePecho}
	weights := effectiveWeights(req.Priorities)

	compound, ok := e.catalog.FindByName("Press de Banca con Barra")
	if !ok {
		t.Fatal("seed catalog changed")
	}
	isolation, ok := e.catalog.FindByName("Aperturas con Mancuernas")
	if !ok {
		t.Fatal("seed catalog changed")
	}

	compoundScore, _ := e.scoreExercise(compound, req, weights)
	isolationScore, _ := e.scoreExercise(isolation, req, weights)
	if compoundScore <= isolationScore {
		t.Errorf("compound %0.2f should outrank isolation %0.2f for a top-priority muscle",
			compoundScore, isolationScore)
	}

	// the bonus only covers the first two focus ranks
	req.Preferences.MuscleFocus = []models.MuscleGroup{
		models.MuscleEspalda, models.MusclePiernas, models.MusclePecho,
	}
	_, reasons := e.scoreExercise(compound, req, weights)
	for _, r := range reasons {
		if r == "compuesto priorizado para un músculo de alta prioridad" {
			t.Error("compound bonus applied beyond the top two focus muscles")
		}
	}
}

func TestScoreFavoriteBonus(t *testing.T) {
	e := seedEngine()
	req := gymRequest(models.ExpIntermediate)
	weights := effectiveWeights(req.Priorities)

	ex, ok := e.catalog.FindByName("Remo con Barra")
	if !ok {
		t.Fatal("seed catalog changed")
	}
	base, _ := e.scoreExercise(ex, req, weights)

	req.Preferences.FavoriteExercises = []string{"remo con barra"}
	boosted, _ := e.scoreExercise(ex, req, weights)

	if boosted <= base {
		t.Errorf("favorite bonus missing: %f <= %f", boosted, base)
	}
}

func TestScoreDeterministicOrder(t *testing.T) {
	e := seedEngine()
	req := gymRequest(models.ExpAdvanced)
	req.Preferences.MuscleFocus = []models.MuscleGroup{models.MuscleEspalda, models.MusclePiernas}

	res, err := e.filterCandidates(req)
	if err != nil {
		t.Fatalf("filterCandidates: %v", err)
	}
	first := e.scoreCandidates(req, res.candidates)
	second := e.scoreCandidates(req, res.candidates)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("order differs at %d: %s vs %s", i, first[i].Name, second[i].Name)
		}
	}
	for i := 1; i < len(first); i++ {
		if first[i].Score > first[i-1].Score {
			t.Errorf("ranking not descending at %d", i)
		}
	}
}

func TestEffectiveWeights(t *testing.T) {
	t.Run("normalized", func(t *testing.T) {
		w := effectiveWeights(models.PrioritySettings{Safety: 10, Effectiveness: 8, Convenience: 6})
		sum := w.safety + w.effectiveness + w.convenience
		if sum < 0.999 || sum > 1.001 {
			t.Errorf("weights sum to %f", sum)
		}
		if w.safety <= w.effectiveness || w.effectiveness <= w.convenience {
			t.Error("relative order of weights lost")
		}
	})

	t.Run("zero falls back to defaults", func(t *testing.T) {
		w := effectiveWeights(models.PrioritySettings{})
		if w.safety == 0 {
			t.Error("expected default weights")
		}
	})
}

func TestPriorityScoreRewardsSafety(t *testing.T) {
	e := seedEngine()
	req := gymRequest(models.ExpAdvanced)
	req.Priorities = models.PrioritySettings{Safety: 10, Effectiveness: 0, Convenience: 0}
	weights := effectiveWeights(req.Priorities)

	risky, ok := e.catalog.FindByName("Burpees") // high impact
	if !ok {
		t.Fatal("seed catalog changed")
	}
	calm, ok := e.catalog.FindByName("Plancha") // no contraindications
	if !ok {
		t.Fatal("seed catalog changed")
	}

	if e.priorityScore(risky, req, weights) >= e.priorityScore(calm, req, weights) {
		t.Error("safety weighting should favor the low-risk exercise")
	}
}
