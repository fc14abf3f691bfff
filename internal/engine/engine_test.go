package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"routinegen/internal/models"
)

func TestCreateCustomizedRoutineDeterministic(t *testing.T) {
	e := seedEngine()
	ctx := context.Background()

	first, err := e.CreateCustomizedRoutine(ctx, gymRequest(models.ExpIntermediate))
	require.NoError(t, err)
	second, err := e.CreateCustomizedRoutine(ctx, gymRequest(models.ExpIntermediate))
	require.NoError(t, err)

	firstEx := allRoutineExercises(first)
	secondEx := allRoutineExercises(second)
	require.Equal(t, len(firstEx), len(secondEx))
	for i := range firstEx {
		assert.Equal(t, firstEx[i].Name, secondEx[i].Name, "exercise order differs at %d", i)
		assert.Equal(t, firstEx[i].Parameters, secondEx[i].Parameters)
	}
	assert.Equal(t, first.Volume, second.Volume)
	assert.NotEqual(t, first.RoutineID, second.RoutineID)
}

func TestCreateCustomizedRoutineVolumeBand(t *testing.T) {
	e := seedEngine()

	routine, err := e.CreateCustomizedRoutine(context.Background(), gymRequest(models.ExpIntermediate))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, routine.Volume.TotalSets, 10)
	assert.LessOrEqual(t, routine.Volume.TotalSets, 15)
	for _, ex := range allRoutineExercises(routine) {
		assert.GreaterOrEqual(t, ex.Parameters.Sets, 2, "%s below per-exercise floor", ex.Name)
		assert.LessOrEqual(t, ex.Parameters.Sets, 5, "%s above per-exercise cap", ex.Name)
	}
}

func TestCreateCustomizedRoutineDuration(t *testing.T) {
	e := seedEngine()

	routine, err := e.CreateCustomizedRoutine(context.Background(), gymRequest(models.ExpIntermediate))
	require.NoError(t, err)

	blockMin := 0
	for _, b := range routine.Blocks {
		blockMin += b.EstimatedMin
	}
	assert.Equal(t, routine.Warmup.DurationMin+blockMin+routine.Cooldown.DurationMin, routine.DurationMin)
	assert.LessOrEqual(t, routine.DurationMin, gymRequest(models.ExpIntermediate).Preferences.PreferredDurationMin)
}

func TestCreateCustomizedRoutineRespectsDislikes(t *testing.T) {
	e := seedEngine()
	req := gymRequest(models.ExpIntermediate)
	req.Preferences.DislikedExercises = []string{"Press de Banca con Barra", "Burpees"}

	routine, err := e.CreateCustomizedRoutine(context.Background(), req)
	require.NoError(t, err)

	for _, ex := range allRoutineExercises(routine) {
		assert.NotEqual(t, "Press de Banca con Barra", ex.Name)
		assert.NotEqual(t, "Burpees", ex.Name)
	}
}

func TestCreateCustomizedRoutineOlderUser(t *testing.T) {
	e := seedEngine()
	ctx := context.Background()

	young := gymRequest(models.ExpIntermediate)
	young.Profile.Age = 25
	older := gymRequest(models.ExpIntermediate)
	older.Profile.Age = 68

	youngRoutine, err := e.CreateCustomizedRoutine(ctx, young)
	require.NoError(t, err)
	olderRoutine, err := e.CreateCustomizedRoutine(ctx, older)
	require.NoError(t, err)

	assert.Greater(t, olderRoutine.Warmup.DurationMin, youngRoutine.Warmup.DurationMin,
		"warmup should lengthen with age")
	assert.LessOrEqual(t, olderRoutine.Volume.TotalSets, youngRoutine.Volume.TotalSets)
	assert.Greater(t, len(olderRoutine.Cooldown.RecoveryTips), len(youngRoutine.Cooldown.RecoveryTips),
		"recovery tips should accumulate with age risk")
	assert.NotEmpty(t, olderRoutine.Warmup.SpecialConsiderations)

	var ageNote *models.SafetyNote
	for i := range olderRoutine.SafetyNotes {
		if olderRoutine.SafetyNotes[i].Category == "Edad" {
			ageNote = &olderRoutine.SafetyNotes[i]
		}
	}
	require.NotNil(t, ageNote, "expected an age safety note")
	assert.Equal(t, models.SafetyWarning, ageNote.Severity)
	assert.Contains(t, olderRoutine.Metadata.AppliedRules, "edad_avanzada")
}

func TestCreateCustomizedRoutineCriticalNotesCarryWarningSigns(t *testing.T) {
	e := seedEngine()
	req := gymRequest(models.ExpIntermediate)
	req.Profile.Limitations = []models.PhysicalLimitation{
		{Description: "hipertensión controlada", BodyZone: models.ZoneHeart},
	}

	routine, err := e.CreateCustomizedRoutine(context.Background(), req)
	require.NoError(t, err)

	foundCritical := false
	for _, note := range routine.SafetyNotes {
		if note.Severity == models.SafetyCritical {
			foundCritical = true
			assert.NotEmpty(t, note.WarningSignsToStop, "critical note %q has no warning signs", note.Category)
		}
	}
	assert.True(t, foundCritical, "cardiovascular limitation should emit a critical note")
}

func TestCreateCustomizedRoutineAtHomeWithoutEquipment(t *testing.T) {
	e := seedEngine()

	routine, err := e.CreateCustomizedRoutine(context.Background(), homeRequest())
	require.NoError(t, err)

	exercises := allRoutineExercises(routine)
	require.NotEmpty(t, exercises)
	for _, ex := range exercises {
		for _, eq := range ex.Equipment {
			assert.Equal(t, models.EquipPesoCorporal, eq,
				"%s requires %s which is not available at home", ex.Name, eq)
		}
	}
}

func TestValidateRequest(t *testing.T) {
	e := seedEngine()
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*models.CustomizationRequest)
	}{
		{"missing user id", func(r *models.CustomizationRequest) { r.Profile.UserID = "" }},
		{"age zero", func(r *models.CustomizationRequest) { r.Profile.Age = 0 }},
		{"age out of range", func(r *models.CustomizationRequest) { r.Profile.Age = 140 }},
		{"unknown experience", func(r *models.CustomizationRequest) { r.Profile.Experience = "Experto" }},
		{"too many days", func(r *models.CustomizationRequest) { r.Preferences.DaysPerWeek = 9 }},
		{"negative duration", func(r *models.CustomizationRequest) { r.Preferences.PreferredDurationMin = -10 }},
		{"zero duration", func(r *models.CustomizationRequest) { r.Preferences.PreferredDurationMin = 0 }},
		{"negative priority", func(r *models.CustomizationRequest) { r.Priorities.Safety = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := gymRequest(models.ExpIntermediate)
			tc.mutate(req)
			_, err := e.CreateCustomizedRoutine(ctx, req)
			var invalid *InvalidInputError
			require.ErrorAs(t, err, &invalid)
		})
	}

	t.Run("nil request", func(t *testing.T) {
		_, err := e.CreateCustomizedRoutine(ctx, nil)
		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid)
	})
}

func TestCreatePersonalizedProgram(t *testing.T) {
	start := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	e := New(seedEngine().catalog, WithClock(func() time.Time { return start }))

	goals := &models.ProgramGoals{
		PrimaryGoal: "Fuerza",
		TargetDate:  start.AddDate(0, 0, 16*7),
		QuantifiableTargets: map[string]models.MeasurableTarget{
			"sentadilla": {Metric: "sentadilla", CurrentValue: 60, TargetValue: 80, Unit: "kg"},
		},
	}
	program, err := e.CreatePersonalizedProgram(context.Background(), gymRequest(models.ExpIntermediate), goals)
	require.NoError(t, err)

	assert.Equal(t, 16, program.TotalWeeks)
	assert.Equal(t, start, program.StartDate)
	require.Len(t, program.Phases, 3)

	weeks := 0
	for i, phase := range program.Phases {
		assert.Equal(t, i+1, phase.PhaseNumber)
		assert.Greater(t, phase.Weeks, 0)
		require.Len(t, phase.Routines, 1, "phase %s has no routine", phase.Name)
		weeks += phase.Weeks
	}
	assert.Equal(t, program.TotalWeeks, weeks, "phase weeks should cover the program")

	require.Len(t, program.Milestones, 3)
	assert.Equal(t, program.TotalWeeks, program.Milestones[2].TargetWeek)
	assert.Equal(t, start.AddDate(0, 0, program.TotalWeeks*7), program.Milestones[2].TargetDate)

	assert.Contains(t, program.Tracking.Metrics, "sentadilla")
	assert.Contains(t, program.Tracking.Metrics, "carga máxima por ejercicio")
}

func TestCreatePersonalizedProgramSessionSplit(t *testing.T) {
	start := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	e := New(seedEngine().catalog, WithClock(func() time.Time { return start }))

	req := gymRequest(models.ExpIntermediate)
	req.Preferences.DaysPerWeek = 6
	goals := &models.ProgramGoals{PrimaryGoal: "Hipertrofia"}

	program, err := e.CreatePersonalizedProgram(context.Background(), req, goals)
	require.NoError(t, err)

	for _, phase := range program.Phases {
		require.Len(t, phase.Routines, 3, "6 days per week should split into three sessions")
	}
	assert.Contains(t, program.Phases[0].Routines[0].Name, "Pecho")
	assert.Contains(t, program.Phases[0].Routines[2].Name, "Piernas")
}

func TestCreatePersonalizedProgramGoalErrors(t *testing.T) {
	start := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	e := New(seedEngine().catalog, WithClock(func() time.Time { return start }))
	ctx := context.Background()
	req := gymRequest(models.ExpIntermediate)

	t.Run("past target date", func(t *testing.T) {
		goals := &models.ProgramGoals{PrimaryGoal: "Hipertrofia", TargetDate: start.AddDate(0, -2, 0)}
		_, err := e.CreatePersonalizedProgram(ctx, req, goals)
		var goalErr *InvalidGoalError
		require.ErrorAs(t, err, &goalErr)
	})

	t.Run("missing primary goal", func(t *testing.T) {
		_, err := e.CreatePersonalizedProgram(ctx, req, &models.ProgramGoals{})
		var goalErr *InvalidGoalError
		require.ErrorAs(t, err, &goalErr)
	})

	t.Run("nil goals", func(t *testing.T) {
		_, err := e.CreatePersonalizedProgram(ctx, req, nil)
		var goalErr *InvalidGoalError
		require.ErrorAs(t, err, &goalErr)
	})
}

func TestPersonalizationScoreReflectsRelaxations(t *testing.T) {
	e := seedEngine()

	clean, err := e.CreateCustomizedRoutine(context.Background(), gymRequest(models.ExpIntermediate))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, clean.Metadata.PersonalizationScore, 0.001,
		"an unconstrained request should score a full match")
	assert.GreaterOrEqual(t, clean.Metadata.PersonalizationScore, 0.0)
	assert.LessOrEqual(t, clean.Metadata.PersonalizationScore, 1.0)
}
