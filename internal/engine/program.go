package engine

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"routinegen/internal/catalog"
	"routinegen/internal/models"
)

// createProgram plans a multi-phase program toward the stated goals.
// Phases ramp intensity: adaptation, development, then realization.
func (e *Engine) createProgram(ctx context.Context, req *models.CustomizationRequest, goals *models.ProgramGoals) (*models.PersonalizedProgram, error) {
	if goals.PrimaryGoal == "" {
		return nil, &InvalidGoalError{Reason: "falta el objetivo principal"}
	}
	now := e.now()
	if !goals.TargetDate.IsZero() && !goals.TargetDate.After(now) {
		return nil, &InvalidGoalError{Reason: "la fecha objetivo ya pasó"}
	}

	totalWeeks := 12
	if !goals.TargetDate.IsZero() {
		totalWeeks = int(goals.TargetDate.Sub(now).Hours() / 24 / 7)
	}
	if totalWeeks < 4 {
		totalWeeks = 4
	}
	if totalWeeks > 24 {
		totalWeeks = 24
	}

	phases := phaseLayout(totalWeeks)
	program := &models.PersonalizedProgram{
		ProgramID:  uuid.NewString(),
		UserID:     req.Profile.UserID,
		Goals:      *goals,
		TotalWeeks: totalWeeks,
		StartDate:  now,
		Tracking:   trackingFor(goals),
	}

	splits := sessionSplit(&req.Preferences)
	weekCursor := 0
	for i, phase := range phases {
		for day, focus := range splits {
			phaseReq := *req
			phaseReq.Seed = req.Seed + int64(i+1)*10 + int64(day)
			phaseReq.Preferences.Intensity = phaseIntensity(req.Preferences.Intensity, i, &req.Profile)
			phaseReq.Progression.TotalWeeks = phase.Weeks
			if focus != nil {
				phaseReq.Preferences.MuscleFocus = focus
			}

			routine, err := e.CreateCustomizedRoutine(ctx, &phaseReq)
			if err != nil {
				return nil, err
			}
			phase.Routines = append(phase.Routines, *routine)
		}
		phase.PhaseNumber = i + 1
		program.Phases = append(program.Phases, phase)

		weekCursor += phase.Weeks
		program.Milestones = append(program.Milestones, models.Milestone{
			Name:       "Fin de " + phase.Name,
			TargetWeek: weekCursor,
			TargetDate: now.AddDate(0, 0, weekCursor*7),
			Metric:     phase.Focus,
			SuccessCriteria: []string{
				"Sesiones completadas según el plan de la fase",
				"Progresión de carga o repeticiones registrada",
			},
		})
	}
	return program, nil
}

// sessionSplit maps the weekly frequency onto a session split: full
// body up to 3 days, torso/pierna at 4-5, empuje/tirón/pierna at 6+.
// An explicit muscle focus from the user overrides the split.
func sessionSplit(prefs *models.RoutinePreferences) [][]models.MuscleGroup {
	if len(prefs.MuscleFocus) > 0 {
		return [][]models.MuscleGroup{prefs.MuscleFocus}
	}
	switch {
	case prefs.DaysPerWeek >= 6:
		return [][]models.MuscleGroup{
			{models.MusclePecho, models.MuscleHombros, models.MuscleTriceps},
			{models.MuscleEspalda, models.MuscleBiceps},
			{models.MusclePiernas, models.MuscleGluteos, models.MuscleCore},
		}
	case prefs.DaysPerWeek >= 4:
		return [][]models.MuscleGroup{
			{models.MusclePecho, models.MuscleEspalda, models.MuscleHombros},
			{models.MusclePiernas, models.MuscleGluteos, models.MuscleCore},
		}
	default:
		// full body, no imposed focus
		return [][]models.MuscleGroup{nil}
	}
}

func phaseLayout(totalWeeks int) []models.ProgramPhase {
	adaptation := totalWeeks / 4
	if adaptation < 1 {
		adaptation = 1
	}
	realization := totalWeeks / 4
	if realization < 1 {
		realization = 1
	}
	development := totalWeeks - adaptation - realization

	return []models.ProgramPhase{
		{Name: "Fase de Adaptación", Weeks: adaptation, Focus: "técnica y hábito de entrenamiento"},
		{Name: "Fase de Desarrollo", Weeks: development, Focus: "acumulación de volumen y carga"},
		{Name: "Fase de Realización", Weeks: realization, Focus: "expresión del progreso conseguido"},
	}
}

// phaseIntensity ramps toward the requested intensity without exceeding
// it, and never ramps users with a cardiovascular condition.
func phaseIntensity(requested models.IntensityPreference, phase int, profile *models.UserProfile) models.IntensityPreference {
	if requested == "" {
		requested = models.IntensityModerada
	}
	if hasCardiovascularCondition(profile) {
		return models.IntensityBaja
	}
	switch phase {
	case 0:
		if requested == models.IntensityAlta {
			return models.IntensityModerada
		}
		return models.IntensityBaja
	case 1:
		if requested == models.IntensityAlta {
			return models.IntensityModerada
		}
		return requested
	default:
		return requested
	}
}

func trackingFor(goals *models.ProgramGoals) models.TrackingPlan {
	plan := models.TrackingPlan{
		AssessmentFrequency: 14,
		Methods: []models.AssessmentMethod{
			{Name: "Registro de cargas", Description: "Anotar peso y repeticiones de cada serie efectiva", FrequencyDays: 7},
			{Name: "Revisión quincenal", Description: "Comparar cargas y sensaciones con las dos semanas anteriores", FrequencyDays: 14},
		},
	}

	switch catalog.Normalize(goals.PrimaryGoal) {
	case "fuerza":
		plan.Metrics = []string{"carga máxima por ejercicio", "repeticiones con carga fija"}
	case "hipertrofia":
		plan.Metrics = []string{"volumen semanal por grupo muscular", "perímetros corporales"}
	case "perdida de grasa":
		plan.Metrics = []string{"peso corporal", "perímetro de cintura", "adherencia semanal"}
		plan.Methods = append(plan.Methods, models.AssessmentMethod{
			Name: "Pesaje semanal", Description: "Misma hora y condiciones cada semana", FrequencyDays: 7,
		})
	default:
		plan.Metrics = []string{"adherencia semanal", "carga de trabajo total"}
	}

	var targets []string
	for metric := range goals.QuantifiableTargets {
		targets = append(targets, metric)
	}
	sort.Strings(targets)
	plan.Metrics = append(plan.Metrics, targets...)
	return plan
}

// now is indirected for tests
func (e *Engine) now() time.Time {
	if e.clock != nil {
		return e.clock()
	}
	return time.Now()
}
