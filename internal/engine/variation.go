package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"routinegen/internal/catalog"
	"routinegen/internal/models"
)

// generateVariations builds alternative versions of a base routine along
// the requested axes. The context is checked between axes so a caller
// can abandon a long request. Variations below the minimum similarity
// are discarded.
func (e *Engine) generateVariations(ctx context.Context, base *models.BaseRoutine, opts *models.VariationOptions) ([]models.RoutineVariation, error) {
	if len(base.Exercises) == 0 {
		return nil, invalidInput("routine", "la rutina base no tiene ejercicios")
	}

	axes := opts.Axes
	if len(axes) == 0 {
		axes = []models.VariationAxis{
			models.VariationEquipment, models.VariationDifficulty,
			models.VariationDuration, models.VariationFocus,
		}
	}
	maxVariations := opts.MaxVariations
	if maxVariations <= 0 {
		maxVariations = 6
	}

	var variations []models.RoutineVariation
	for _, axis := range axes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var produced []models.RoutineVariation
		switch axis {
		case models.VariationEquipment:
			produced = e.equipmentVariations(base)
		case models.VariationDifficulty:
			produced = e.difficultyVariations(base)
		case models.VariationDuration:
			produced = e.durationVariations(base)
		case models.VariationFocus:
			produced = e.focusVariations(base)
		default:
			return nil, invalidInput("axes", fmt.Sprintf("eje de variación desconocido: %s", axis))
		}
		for _, v := range produced {
			if v.SimilarityScore < opts.MinSimilarityScore {
				continue
			}
			variations = append(variations, v)
			if len(variations) >= maxVariations {
				return variations, nil
			}
		}
	}
	return variations, nil
}

// equipmentVariations swaps every exercise that has a lower-equipment
// alternative, yielding a version doable with minimal gear.
func (e *Engine) equipmentVariations(base *models.BaseRoutine) []models.RoutineVariation {
	modified := base.Clone()
	var changes []string
	minimalGear := []models.EquipmentType{
		models.EquipPesoCorporal, models.EquipSilla, models.EquipEsterilla, models.EquipBanda,
	}

	for i := range modified.Exercises {
		ex := &modified.Exercises[i]
		if onlyMinimalGear(ex.Equipment) {
			continue
		}
		record, ok := e.catalog.FindByName(ex.Name)
		if !ok {
			continue
		}
		criteria := models.SubstitutionCriteria{
			RequiredMuscleGroups: firstMuscle(ex.MuscleGroups),
			AvailableEquipment:   minimalGear,
			MinSimilarityScore:   0.3,
		}
		subs := e.findSubstitutions(record, &criteria)
		if len(subs) == 0 {
			continue
		}
		changes = append(changes, fmt.Sprintf("%s sustituido por %s", ex.Name, subs[0].Substitute))
		*ex = applySubstitution(ex, &subs[0])
		if rec, found := e.catalog.FindByName(subs[0].Substitute); found {
			ex.ExerciseID = rec.ID
			ex.MuscleGroups = rec.PrimaryMuscles
			ex.Difficulty = rec.Difficulty
			ex.IsCompound = rec.IsCompound
		}
	}
	if len(changes) == 0 {
		return nil
	}

	return []models.RoutineVariation{{
		VariationID:     uuid.NewString(),
		Name:            fmt.Sprintf("%s (equipamiento mínimo)", base.Name),
		Axis:            models.VariationEquipment,
		Modified:        modified,
		Changes:         changes,
		Reason:          "Versión realizable sin equipamiento de gimnasio",
		SimilarityScore: exerciseOverlap(base, &modified),
		Benefits:        []string{"Se puede hacer en casa o de viaje"},
		Considerations:  []string{"La sobrecarga progresiva es más difícil sin pesos externos"},
	}}
}

// difficultyVariations produces an easier and a harder version through
// parameter changes, keeping the exercise list intact.
func (e *Engine) difficultyVariations(base *models.BaseRoutine) []models.RoutineVariation {
	easier := base.Clone()
	for i := range easier.Exercises {
		p := &easier.Exercises[i].Parameters
		if p.Sets > 2 {
			p.Sets--
		}
		p.RestSeconds += 30
	}
	if easier.Difficulty > models.DifficultyBeginner {
		easier.Difficulty--
	}

	harder := base.Clone()
	for i := range harder.Exercises {
		p := &harder.Exercises[i].Parameters
		if p.Sets < 5 {
			p.Sets++
		}
		if p.RestSeconds > 45 {
			p.RestSeconds -= 15
		}
	}
	if harder.Difficulty < models.DifficultyAdvanced {
		harder.Difficulty++
	}

	return []models.RoutineVariation{
		{
			VariationID:     uuid.NewString(),
			Name:            fmt.Sprintf("%s (versión suave)", base.Name),
			Axis:            models.VariationDifficulty,
			Modified:        easier,
			Changes:         []string{"una serie menos por ejercicio", "descansos 30 segundos más largos"},
			Reason:          "Misma estructura con menor exigencia",
			SimilarityScore: exerciseOverlap(base, &easier),
			Benefits:        []string{"Útil en semanas de mucha fatiga o al volver de un parón"},
		},
		{
			VariationID:     uuid.NewString(),
			Name:            fmt.Sprintf("%s (versión exigente)", base.Name),
			Axis:            models.VariationDifficulty,
			Modified:        harder,
			Changes:         []string{"una serie más por ejercicio", "descansos más cortos"},
			Reason:          "Misma estructura con mayor densidad de trabajo",
			SimilarityScore: exerciseOverlap(base, &harder),
			Considerations:  []string{"Solo recomendable tras varias semanas completando la versión base"},
		},
	}
}

// durationVariations builds an express version that fits in roughly half
// the time.
func (e *Engine) durationVariations(base *models.BaseRoutine) []models.RoutineVariation {
	express := base.Clone()
	var changes []string

	// keep the compounds, cut trailing isolation work
	if len(express.Exercises) > 4 {
		for _, dropped := range express.Exercises[4:] {
			changes = append(changes, fmt.Sprintf("se omite %s", dropped.Name))
		}
		express.Exercises = express.Exercises[:4]
	}
	for i := range express.Exercises {
		p := &express.Exercises[i].Parameters
		if p.RestSeconds > 45 {
			p.RestSeconds = 45
		}
		express.Exercises[i].Transition = models.TransitionCircuit
	}
	changes = append(changes, "descansos reducidos a 45 segundos", "ejecución en circuito")
	express.DurationMin = estimatedDuration(express.Exercises)

	return []models.RoutineVariation{{
		VariationID:     uuid.NewString(),
		Name:            fmt.Sprintf("%s (express)", base.Name),
		Axis:            models.VariationDuration,
		Modified:        express,
		Changes:         changes,
		Reason:          "Versión corta para días con poco tiempo",
		SimilarityScore: exerciseOverlap(base, &express),
		Benefits:        []string{"Mantiene el estímulo principal en la mitad de tiempo"},
		Considerations:  []string{"El volumen semanal total baja si se usa de forma habitual"},
	}}
}

// focusVariations shifts volume toward the most represented muscle group
func (e *Engine) focusVariations(base *models.BaseRoutine) []models.RoutineVariation {
	counts := make(map[models.MuscleGroup]int)
	for _, ex := range base.Exercises {
		for _, m := range ex.MuscleGroups {
			counts[m]++
		}
	}
	var top models.MuscleGroup
	best := 0
	for m, n := range counts {
		if n > best || (n == best && catalog.Normalize(string(m)) < catalog.Normalize(string(top))) {
			top = m
			best = n
		}
	}
	if top == "" {
		return nil
	}

	focused := base.Clone()
	var changes []string
	for i := range focused.Exercises {
		ex := &focused.Exercises[i]
		targets := false
		for _, m := range ex.MuscleGroups {
			if m == top {
				targets = true
				break
			}
		}
		p := &ex.Parameters
		if targets && p.Sets < 5 {
			p.Sets++
			changes = append(changes, fmt.Sprintf("una serie más en %s", ex.Name))
		} else if !targets && p.Sets > 2 {
			p.Sets--
		}
	}
	if len(changes) == 0 {
		return nil
	}

	return []models.RoutineVariation{{
		VariationID:     uuid.NewString(),
		Name:            fmt.Sprintf("%s (énfasis en %s)", base.Name, top),
		Axis:            models.VariationFocus,
		Modified:        focused,
		Changes:         changes,
		Reason:          fmt.Sprintf("Redistribuye el volumen hacia %s", top),
		SimilarityScore: exerciseOverlap(base, &focused),
		Considerations:  []string{"El resto de grupos musculares recibe menos estímulo"},
	}}
}

// exerciseOverlap is the fraction of base exercises that survive, by name
func exerciseOverlap(base, modified *models.BaseRoutine) float64 {
	if len(base.Exercises) == 0 {
		return 0
	}
	names := make(map[string]bool, len(modified.Exercises))
	for _, ex := range modified.Exercises {
		names[catalog.Normalize(ex.Name)] = true
	}
	shared := 0
	for _, ex := range base.Exercises {
		if names[catalog.Normalize(ex.Name)] {
			shared++
		}
	}
	return float64(shared) / float64(len(base.Exercises))
}

func onlyMinimalGear(equipment []models.EquipmentType) bool {
	for _, eq := range equipment {
		switch eq {
		case models.EquipPesoCorporal, models.EquipSilla, models.EquipEsterilla, models.EquipBanda:
		default:
			return false
		}
	}
	return true
}
