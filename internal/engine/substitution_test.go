package engine

import (
	"context"
	"errors"
	"testing"

	"routinegen/internal/catalog"
	"routinegen/internal/models"
)

func TestGetExerciseSubstitutions(t *testing.T) {
	e := seedEngine()
	ctx := context.Background()

	t.Run("avoids restricted movement patterns", func(t *testing.T) {
		subs, err := e.GetExerciseSubstitutions(ctx, "Press de banca", &models.SubstitutionCriteria{
			AvoidedMovements:   []string{"Presión en hombros"},
			MinSimilarityScore: 0.5,
		})
		if err != nil {
			t.Fatalf("GetExerciseSubstitutions: %v", err)
		}
		if len(subs) == 0 {
			t.Fatal("expected substitutions for the bench press")
		}
		for _, sub := range subs {
			record, ok := e.catalog.FindByName(sub.Substitute)
			if !ok {
				t.Fatalf("substitute %s not in catalog", sub.Substitute)
			}
			for _, pattern := range record.MovementPatterns {
				if catalog.MatchesLabel(pattern, "Presión en hombros") {
					t.Errorf("substitute %s uses the avoided pattern", sub.Substitute)
				}
			}
		}
	})

	t.Run("scores never below threshold", func(t *testing.T) {
		subs, err := e.GetExerciseSubstitutions(ctx, "Sentadilla con Barra", &models.SubstitutionCriteria{
			MinSimilarityScore: 0.6,
		})
		if err != nil {
			t.Fatal(err)
		}
		for _, sub := range subs {
			if sub.SimilarityScore < 0.6 {
				t.Errorf("%s scored %f, below the threshold", sub.Substitute, sub.SimilarityScore)
			}
		}
	})

	t.Run("sorted best first", func(t *testing.T) {
		subs, err := e.GetExerciseSubstitutions(ctx, "Press de Banca con Barra", &models.SubstitutionCriteria{
			MinSimilarityScore: 0.3,
		})
		if err != nil {
			t.Fatal(err)
		}
		for i := 1; i < len(subs); i++ {
			if subs[i].SimilarityScore > subs[i-1].SimilarityScore {
				t.Errorf("substitutions not sorted at index %d", i)
			}
		}
	})

	t.Run("equipment criteria", func(t *testing.T) {
		subs, err := e.GetExerciseSubstitutions(ctx, "Press de Banca con Barra", &models.SubstitutionCriteria{
			AvailableEquipment: []models.EquipmentType{models.EquipPesoCorporal},
			MinSimilarityScore: 0.3,
		})
		if err != nil {
			t.Fatal(err)
		}
		if len(subs) == 0 {
			t.Fatal("expected a bodyweight alternative")
		}
		for _, sub := range subs {
			for _, eq := range sub.EquipmentRequired {
				if eq != models.EquipPesoCorporal {
					t.Errorf("%s requires %s", sub.Substitute, eq)
				}
			}
		}
	})

	t.Run("unknown exercise", func(t *testing.T) {
		_, err := e.GetExerciseSubstitutions(ctx, "Arranque Olímpico", nil)
		var unknown *UnknownExerciseError
		if !errors.As(err, &unknown) {
			t.Errorf("expected UnknownExerciseError, got %v", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := e.GetExerciseSubstitutions(ctx, "  ", nil)
		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			t.Errorf("expected InvalidInputError, got %v", err)
		}
	})
}

func TestSimilarity(t *testing.T) {
	e := seedEngine()
	barra, _ := e.catalog.FindByName("Press de Banca con Barra")
	mancuernas, _ := e.catalog.FindByName("Press de Banca con Mancuernas")
	sentadillas, _ := e.catalog.FindByName("Sentadillas")

	near := similarity(barra, mancuernas)
	far := similarity(barra, sentadillas)

	if near <= far {
		t.Errorf("dumbbell press (%f) should be more similar to the barbell press than squats (%f)", near, far)
	}
	if near < 0.9 {
		t.Errorf("near-identical exercises scored only %f", near)
	}
	if far > 0.5 {
		t.Errorf("unrelated exercises scored %f", far)
	}
}

func TestDifficultyComparison(t *testing.T) {
	e := seedEngine()
	ctx := context.Background()

	subs, err := e.GetExerciseSubstitutions(ctx, "Press de Banca con Barra", &models.SubstitutionCriteria{
		MinSimilarityScore: 0.3,
	})
	if err != nil {
		t.Fatal(err)
	}
	comparisons := map[string]string{}
	for _, sub := range subs {
		comparisons[sub.Substitute] = sub.DifficultyComparison
	}
	if got := comparisons["Flexiones"]; got != "más fácil" {
		t.Errorf("push-ups comparison = %q, want \"más fácil\"", got)
	}
	if got := comparisons["Press de Banca con Mancuernas"]; got != "similar" {
		t.Errorf("dumbbell press comparison = %q, want \"similar\"", got)
	}
}

func TestMuscleOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b []models.MuscleGroup
		want float64
	}{
		{"identical", []models.MuscleGroup{models.MusclePecho}, []models.MuscleGroup{models.MusclePecho}, 1},
		{"disjoint", []models.MuscleGroup{models.MusclePecho}, []models.MuscleGroup{models.MusclePiernas}, 0},
		{"partial", []models.MuscleGroup{models.MusclePecho, models.MuscleTriceps}, []models.MuscleGroup{models.MusclePecho}, 0.5},
		{"empty", nil, []models.MuscleGroup{models.MusclePecho}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := muscleOverlap(tt.a, tt.b); got != tt.want {
				t.Errorf("muscleOverlap = %f, want %f", got, tt.want)
			}
		})
	}
}
