package engine

import (
	"fmt"

	"github.com/google/uuid"

	"routinegen/internal/catalog"
	"routinegen/internal/models"
)

// adaptRoutine applies a constraint set to an existing routine. For each
// violating exercise it tries a substitution first and removes the
// exercise only when no acceptable substitute exists. Time constraints
// are resolved last through parameter changes.
func (e *Engine) adaptRoutine(base *models.BaseRoutine, constraints *models.ConstraintSet) (*models.AdaptedRoutine, error) {
	if len(base.Exercises) == 0 {
		return nil, invalidInput("routine", "la rutina base no tiene ejercicios")
	}

	adapted := base.Clone()
	result := &models.AdaptedRoutine{
		AdaptedID:          uuid.NewString(),
		Original:           base.Clone(),
		AppliedConstraints: *constraints,
	}

	available, unavailable := equipmentSets(constraints)
	restrictedNames := constraints.RestrictedExerciseNames()
	restrictedMovements := constraints.RestrictedMovements()

	var kept []models.RoutineExercise
	for _, ex := range adapted.Exercises {
		violation := e.findViolation(&ex, constraints, available, unavailable, restrictedNames, restrictedMovements)
		if violation == "" {
			kept = append(kept, ex)
			continue
		}

		sub, ok := e.substituteFor(&ex, constraints, available, restrictedMovements)
		if ok {
			replacement := applySubstitution(&ex, sub)
			if record, found := e.catalog.FindByName(sub.Substitute); found {
				replacement.ExerciseID = record.ID
				replacement.MuscleGroups = record.PrimaryMuscles
				replacement.MovementType = record.MovementType
				replacement.Difficulty = record.Difficulty
				replacement.IsCompound = record.IsCompound
			}
			kept = append(kept, replacement)
			impact := 1 - sub.SimilarityScore
			if impact < 0.1 {
				impact = 0.1 // swapping is never free
			}
			result.Adaptations = append(result.Adaptations, models.Adaptation{
				Type:        models.AdaptSubstitution,
				Original:    ex.Name,
				Replacement: sub.Substitute,
				Reason:      violation,
				ImpactScore: impact,
			})
			continue
		}

		result.Adaptations = append(result.Adaptations, models.Adaptation{
			Type:        models.AdaptRemoval,
			Original:    ex.Name,
			Reason:      fmt.Sprintf("%s y no existe sustituto aceptable", violation),
			ImpactScore: 0.9,
		})
		result.LimitationsNotAddressed = append(result.LimitationsNotAddressed,
			fmt.Sprintf("Sin alternativa para %s (%s)", ex.Name, violation))
	}

	if len(kept) == 0 {
		return nil, ErrEmptyRoutine
	}

	kept = e.applyTimeConstraints(kept, constraints, result)

	adapted.Exercises = kept
	adapted.DurationMin = estimatedDuration(kept)
	result.Adapted = adapted
	result.AdaptationScore = adaptationScore(result.Adaptations, len(base.Exercises))
	return result, nil
}

// findViolation returns the Spanish reason the exercise conflicts with
// the constraints, or empty when it passes.
func (e *Engine) findViolation(ex *models.RoutineExercise, constraints *models.ConstraintSet,
	available map[models.EquipmentType]bool, unavailable map[models.EquipmentType]bool,
	restrictedNames, restrictedMovements []string) string {

	for _, name := range restrictedNames {
		if catalog.MatchesLabel(ex.Name, name) {
			return "ejercicio restringido por las condiciones indicadas"
		}
	}

	for _, eq := range ex.Equipment {
		if eq == models.EquipPesoCorporal {
			continue
		}
		if unavailable[eq] {
			return fmt.Sprintf("el equipamiento %s ya no está disponible", eq)
		}
		if len(available) > 0 && !available[eq] {
			return fmt.Sprintf("el equipamiento %s no figura como disponible", eq)
		}
	}

	// movement restrictions need the catalog record for its patterns
	if record, ok := e.catalog.FindByName(ex.Name); ok {
		for _, movement := range restrictedMovements {
			for _, pattern := range record.MovementPatterns {
				if catalog.MatchesLabel(pattern, movement) {
					return fmt.Sprintf("patrón de movimiento restringido: %s", pattern)
				}
			}
		}
		for _, pc := range constraints.Physical {
			if pc.BodyZone == "" {
				continue
			}
			strict := pc.Severity == models.SeveritySevere || pc.Severity == models.SeverityAbsolute
			if e.catalog.ContraindicatedFor(record.ID, []models.BodyZone{pc.BodyZone}, strict) {
				return fmt.Sprintf("contraindicado para: %s", pc.Description)
			}
		}
	}
	return ""
}

// substituteFor finds the best replacement that satisfies the same
// constraints the original violated.
func (e *Engine) substituteFor(ex *models.RoutineExercise, constraints *models.ConstraintSet,
	available map[models.EquipmentType]bool, restrictedMovements []string) (*models.ExerciseSubstitution, bool) {

	record, ok := e.catalog.FindByName(ex.Name)
	if !ok {
		return nil, false
	}

	criteria := models.SubstitutionCriteria{
		RequiredMuscleGroups: firstMuscle(ex.MuscleGroups),
		MaxDifficulty:        record.Difficulty,
		AvoidedMovements:     restrictedMovements,
		MinSimilarityScore:   0.3,
	}
	for eq := range available {
		criteria.AvailableEquipment = append(criteria.AvailableEquipment, eq)
	}

	subs := e.findSubstitutions(record, &criteria)
	for i := range subs {
		// the substitute must itself survive the full constraint check
		candRecord, ok := e.catalog.FindByName(subs[i].Substitute)
		if !ok {
			continue
		}
		cand := routineExerciseFrom(candRecord, ex.Parameters)
		_, unavailableSet := equipmentSets(constraints)
		if e.findViolation(&cand, constraints, available, unavailableSet,
			constraints.RestrictedExerciseNames(), restrictedMovements) == "" {
			return &subs[i], true
		}
	}
	return nil, false
}

// applyTimeConstraints shrinks the routine until it fits the tightest
// maximum duration, first by shortening rests, then by dropping the
// final exercises.
func (e *Engine) applyTimeConstraints(exercises []models.RoutineExercise, constraints *models.ConstraintSet, result *models.AdaptedRoutine) []models.RoutineExercise {
	maxMin := 0
	for _, tc := range constraints.Time {
		if tc.MaxDurationMin > 0 && (maxMin == 0 || tc.MaxDurationMin < maxMin) {
			maxMin = tc.MaxDurationMin
		}
	}
	if maxMin == 0 {
		return exercises
	}

	restShortened := false
	for estimatedDuration(exercises) > maxMin {
		shortened := false
		for i := range exercises {
			if exercises[i].Parameters.RestSeconds > 45 {
				exercises[i].Parameters.RestSeconds -= 15
				shortened = true
			}
		}
		if shortened {
			restShortened = true
			continue
		}
		if len(exercises) <= 3 {
			// the floor of 3 exercises wins over the time limit, but the
			// shortfall must be visible to the caller
			result.LimitationsNotAddressed = append(result.LimitationsNotAddressed,
				fmt.Sprintf("La duración estimada (%d min) sigue por encima del límite de %d minutos", estimatedDuration(exercises), maxMin))
			break
		}
		dropped := exercises[len(exercises)-1]
		exercises = exercises[:len(exercises)-1]
		result.Adaptations = append(result.Adaptations, models.Adaptation{
			Type:        models.AdaptRemoval,
			Original:    dropped.Name,
			Reason:      fmt.Sprintf("la sesión debe caber en %d minutos", maxMin),
			ImpactScore: 0.5,
		})
	}
	if restShortened {
		result.Adaptations = append(result.Adaptations, models.Adaptation{
			Type:        models.AdaptParameter,
			Original:    "descansos",
			Reason:      fmt.Sprintf("descansos acortados para caber en %d minutos", maxMin),
			ImpactScore: 0.2,
		})
	}
	return exercises
}

// adaptationScore reflects how much of the original intent survives;
// 1 means untouched.
func adaptationScore(adaptations []models.Adaptation, originalCount int) float64 {
	if len(adaptations) == 0 {
		return 1
	}
	var impact float64
	for _, a := range adaptations {
		impact += a.ImpactScore
	}
	score := 1 - impact/float64(originalCount)
	if score < 0 {
		score = 0
	}
	return score
}

func equipmentSets(constraints *models.ConstraintSet) (available, unavailable map[models.EquipmentType]bool) {
	available = make(map[models.EquipmentType]bool)
	unavailable = make(map[models.EquipmentType]bool)
	for _, ec := range constraints.Equipment {
		for _, eq := range ec.AvailableEquipment {
			available[eq] = true
		}
		for _, eq := range ec.UnavailableEquipment {
			unavailable[eq] = true
		}
	}
	return available, unavailable
}

func applySubstitution(original *models.RoutineExercise, sub *models.ExerciseSubstitution) models.RoutineExercise {
	replacement := *original
	replacement.Name = sub.Substitute
	replacement.Equipment = sub.EquipmentRequired
	replacement.SelectionNote = sub.Reason
	return replacement
}

func routineExerciseFrom(record *models.Exercise, params models.ExerciseParameters) models.RoutineExercise {
	return models.RoutineExercise{
		ExerciseID:   record.ID,
		Name:         record.Name,
		MuscleGroups: record.PrimaryMuscles,
		Equipment:    record.Equipment,
		MovementType: record.MovementType,
		Difficulty:   record.Difficulty,
		IsCompound:   record.IsCompound,
		Parameters:   params,
	}
}

func firstMuscle(muscles []models.MuscleGroup) []models.MuscleGroup {
	if len(muscles) == 0 {
		return nil
	}
	return muscles[:1]
}

func estimatedDuration(exercises []models.RoutineExercise) int {
	var total float64
	for i := range exercises {
		total += exercises[i].EstimatedMinutes()
	}
	return int(total + 0.5)
}
