package engine

import (
	"context"
	"errors"
	"testing"

	"routinegen/internal/models"
)

func benchPressRoutine() *models.BaseRoutine {
	params := models.ExerciseParameters{
		Sets: 4, RepsMin: 8, RepsMax: 12, RestSeconds: 90,
		Tempo: models.Tempo{EccentricSec: 2, ConcentricSec: 1},
	}
	return &models.BaseRoutine{
		RoutineID:  "base-1",
		Name:       "Rutina de Empuje",
		Difficulty: models.DifficultyIntermediate,
		Exercises: []models.RoutineExercise{
			{
				ExerciseID: "ex-press-banca-barra", Name: "Press de Banca con Barra",
				MuscleGroups: []models.MuscleGroup{models.MusclePecho},
				Equipment:    []models.EquipmentType{models.EquipBarra, models.EquipBanco},
				MovementType: models.MovementPush, Difficulty: models.DifficultyIntermediate,
				IsCompound: true, Parameters: params,
			},
			{
				ExerciseID: "ex-aperturas-mancuernas", Name: "Aperturas con Mancuernas",
				MuscleGroups: []models.MuscleGroup{models.MusclePecho},
				Equipment:    []models.EquipmentType{models.EquipMancuernas, models.EquipBanco},
				MovementType: models.MovementPush, Difficulty: models.DifficultyIntermediate,
				Parameters: params,
			},
			{
				ExerciseID: "ex-flexiones", Name: "Flexiones",
				MuscleGroups: []models.MuscleGroup{models.MusclePecho},
				Equipment:    []models.EquipmentType{models.EquipPesoCorporal},
				MovementType: models.MovementPush, Difficulty: models.DifficultyBeginner,
				IsCompound: true, Parameters: params,
			},
		},
	}
}

func TestAdaptSubstitutesForMissingEquipment(t *testing.T) {
	e := seedEngine()
	base := benchPressRoutine()
	constraints := &models.ConstraintSet{
		Equipment: []models.EquipmentConstraint{{
			AvailableEquipment:   []models.EquipmentType{models.EquipMancuernas, models.EquipBanco, models.EquipPesoCorporal},
			UnavailableEquipment: []models.EquipmentType{models.EquipBarra},
			Severity:             models.SeverityModerate,
		}},
	}

	adapted, err := e.AdaptRoutineToConstraints(context.Background(), base, constraints)
	if err != nil {
		t.Fatalf("AdaptRoutineToConstraints: %v", err)
	}

	var substitution *models.Adaptation
	for i := range adapted.Adaptations {
		if adapted.Adaptations[i].Type == models.AdaptSubstitution {
			substitution = &adapted.Adaptations[i]
		}
	}
	if substitution == nil {
		t.Fatal("expected a substitution for the barbell press")
	}
	if substitution.Original != "Press de Banca con Barra" {
		t.Errorf("substituted %s", substitution.Original)
	}
	if substitution.Replacement != "Press de Banca con Mancuernas" {
		t.Errorf("replacement %s, expected the dumbbell press", substitution.Replacement)
	}

	for _, ex := range adapted.Adapted.Exercises {
		for _, eq := range ex.Equipment {
			if eq == models.EquipBarra {
				t.Errorf("%s still requires the barbell", ex.Name)
			}
		}
	}
	if adapted.AdaptationScore <= 0 || adapted.AdaptationScore >= 1 {
		t.Errorf("adaptation score %f, expected a partial preservation", adapted.AdaptationScore)
	}
}

func TestAdaptTimeConstraint(t *testing.T) {
	e := seedEngine()
	base := benchPressRoutine()
	// pad the routine so it clearly exceeds the limit
	extra := base.Exercises[1]
	extra.Name = "Remo con Mancuerna a una Mano"
	extra.ExerciseID = "ex-remo-mancuerna"
	base.Exercises = append(base.Exercises, extra, extra)

	constraints := &models.ConstraintSet{
		Time: []models.TimeConstraint{{MaxDurationMin: 20, Severity: models.SeverityModerate}},
	}

	adapted, err := e.AdaptRoutineToConstraints(context.Background(), base, constraints)
	if err != nil {
		t.Fatal(err)
	}
	if adapted.Adapted.DurationMin > 20 {
		t.Errorf("adapted duration %d exceeds the 20 minute limit", adapted.Adapted.DurationMin)
	}
	found := false
	for _, a := range adapted.Adaptations {
		if a.Type == models.AdaptParameter || a.Type == models.AdaptRemoval {
			found = true
		}
	}
	if !found {
		t.Error("expected parameter or removal adaptations for the time limit")
	}
}

func TestAdaptTimeConstraintShortfallReported(t *testing.T) {
	e := seedEngine()
	base := benchPressRoutine()
	// three exercises cannot shrink below the removal floor, so even with
	// rests at the minimum the session will not fit in 5 minutes
	constraints := &models.ConstraintSet{
		Time: []models.TimeConstraint{{MaxDurationMin: 5, Severity: models.SeveritySevere}},
	}

	adapted, err := e.AdaptRoutineToConstraints(context.Background(), base, constraints)
	if err != nil {
		t.Fatal(err)
	}
	if len(adapted.Adapted.Exercises) != 3 {
		t.Errorf("kept %d exercises, the floor is 3", len(adapted.Adapted.Exercises))
	}
	if adapted.Adapted.DurationMin <= 5 {
		t.Fatalf("fixture too small: adapted duration %d fits the limit", adapted.Adapted.DurationMin)
	}
	if len(adapted.LimitationsNotAddressed) == 0 {
		t.Error("an unmet time limit must be reported as unaddressed")
	}
	for _, ex := range adapted.Adapted.Exercises {
		if ex.Parameters.RestSeconds > 45 {
			t.Errorf("%s rest %ds, expected rests at the floor before giving up", ex.Name, ex.Parameters.RestSeconds)
		}
	}
}

func TestAdaptRemovesWhenNoSubstitute(t *testing.T) {
	e := seedEngine()
	base := benchPressRoutine()
	constraints := &models.ConstraintSet{
		Physical: []models.PhysicalConstraint{{
			Description: "lesión general del tren superior",
			Severity:    models.SeveritySevere,
		}},
		Safety: []models.SafetyConstraint{{
			ProhibitedMovements: []string{"Presión horizontal", "Apertura horizontal", "Extensión de codo"},
			Severity:            models.SeveritySevere,
		}},
	}

	_, err := e.AdaptRoutineToConstraints(context.Background(), base, constraints)
	if !errors.Is(err, ErrEmptyRoutine) {
		t.Errorf("expected ErrEmptyRoutine when every push is prohibited, got %v", err)
	}
}

func TestAdaptUnresolvedLimitationsReported(t *testing.T) {
	e := seedEngine()
	base := &models.BaseRoutine{
		Name: "Rutina Mixta",
		Exercises: []models.RoutineExercise{
			{
				ExerciseID: "ex-sentadillas", Name: "Sentadillas",
				MuscleGroups: []models.MuscleGroup{models.MusclePiernas},
				Equipment:    []models.EquipmentType{models.EquipPesoCorporal},
				MovementType: models.MovementSquat, Difficulty: models.DifficultyBeginner,
				IsCompound: true,
				Parameters: models.ExerciseParameters{Sets: 3, RepsMin: 10, RepsMax: 15, RestSeconds: 60},
			},
			{
				ExerciseID: "ex-press-militar", Name: "Press Militar con Barra",
				MuscleGroups: []models.MuscleGroup{models.MuscleHombros},
				Equipment:    []models.EquipmentType{models.EquipBarra},
				MovementType: models.MovementPush, Difficulty: models.DifficultyIntermediate,
				IsCompound: true,
				Parameters: models.ExerciseParameters{Sets: 3, RepsMin: 8, RepsMax: 10, RestSeconds: 90},
			},
		},
	}
	constraints := &models.ConstraintSet{
		Safety: []models.SafetyConstraint{{
			ProhibitedMovements: []string{
				"Presión en hombros", "Presión vertical", "Elevación lateral",
				"Presión horizontal", "Extensión de codo",
			},
			Severity: models.SeveritySevere,
		}},
	}

	adapted, err := e.AdaptRoutineToConstraints(context.Background(), base, constraints)
	if err != nil {
		t.Fatal(err)
	}
	removed := false
	for _, a := range adapted.Adaptations {
		if a.Type == models.AdaptRemoval && a.Original == "Press Militar con Barra" {
			removed = true
		}
	}
	if !removed {
		t.Error("expected the overhead press to be removed")
	}
	if len(adapted.LimitationsNotAddressed) == 0 {
		t.Error("removal without substitute should be reported as unaddressed")
	}
}

func TestAdaptValidation(t *testing.T) {
	e := seedEngine()
	ctx := context.Background()

	t.Run("nil routine", func(t *testing.T) {
		_, err := e.AdaptRoutineToConstraints(ctx, nil, &models.ConstraintSet{
			Time: []models.TimeConstraint{{MaxDurationMin: 30}},
		})
		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			t.Errorf("expected InvalidInputError, got %v", err)
		}
	})

	t.Run("empty constraints", func(t *testing.T) {
		_, err := e.AdaptRoutineToConstraints(ctx, benchPressRoutine(), &models.ConstraintSet{})
		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			t.Errorf("expected InvalidInputError, got %v", err)
		}
	})
}
