package engine

import (
	"fmt"
	"sort"

	"routinegen/internal/catalog"
	"routinegen/internal/models"
)

// scoredExercise is a candidate with its suitability score and the
// reasons that contributed to it.
type scoredExercise struct {
	models.Exercise
	Score   float64
	Reasons []string
}

// scoreCandidates ranks the filtered candidates. The result is sorted by
// score descending with normalized name as the stable tie-break, so the
// same request always produces the same ranking.
func (e *Engine) scoreCandidates(req *models.CustomizationRequest, candidates []models.Exercise) []scoredExercise {
	weights := effectiveWeights(req.Priorities)

	scored := make([]scoredExercise, 0, len(candidates))
	for _, ex := range candidates {
		s := scoredExercise{Exercise: ex}
		s.Score, s.Reasons = e.scoreExercise(&ex, req, weights)
		scored = append(scored, s)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return catalog.Normalize(scored[i].Name) < catalog.Normalize(scored[j].Name)
	})
	return scored
}

func (e *Engine) scoreExercise(ex *models.Exercise, req *models.CustomizationRequest, weights priorityWeights) (float64, []string) {
	var score float64
	var reasons []string

	// Muscle focus dominates: earlier entries in the ranked focus list
	// are worth more.
	for rank, muscle := range req.Preferences.MuscleFocus {
		if ex.TargetsMuscle(muscle) {
			points := 30.0 - 5.0*float64(rank)
			if points < 10 {
				points = 10
			}
			score += points
			reasons = append(reasons, fmt.Sprintf("trabaja %s como músculo principal", muscle))
			// compound work outranks isolation for the top two focus muscles
			if rank < 2 && ex.IsCompound {
				score += 6
				reasons = append(reasons, "compuesto priorizado para un músculo de alta prioridad")
			}
			break
		}
		if ex.WorksMuscle(muscle) {
			score += 10
			reasons = append(reasons, fmt.Sprintf("trabaja %s como músculo secundario", muscle))
			break
		}
	}

	for _, t := range req.Preferences.PreferredTypes {
		if ex.Type == t {
			score += 10
			reasons = append(reasons, "coincide con el tipo de ejercicio preferido")
			break
		}
	}

	for _, fav := range req.Preferences.FavoriteExercises {
		if catalog.MatchesLabel(ex.Name, fav) || catalog.MatchesLabel(ex.NameEn, fav) {
			score += 15
			reasons = append(reasons, "ejercicio favorito del usuario")
			break
		}
	}

	// Difficulty fit: exact match to the user's level scores highest,
	// one level below remains useful.
	maxDiff := req.Profile.Experience.MaxDifficulty()
	switch {
	case ex.Difficulty == maxDiff:
		score += 10
	case ex.Difficulty == maxDiff-1:
		score += 6
	default:
		score += 3
	}

	if ex.IsCompound && req.Preferences.PreferredDurationMin > 0 && req.Preferences.PreferredDurationMin <= 30 {
		score += 8
		reasons = append(reasons, "ejercicio compuesto eficiente para sesiones cortas")
	}

	switch req.Preferences.Intensity {
	case models.IntensityAlta:
		if ex.IsCompound {
			score += 5
		}
	case models.IntensityBaja:
		if !ex.HighImpact {
			score += 5
		}
	}

	score += e.priorityScore(ex, req, weights)
	return score, reasons
}

// priorityWeights are the safety/effectiveness/convenience weights
// normalized to sum 1.
type priorityWeights struct {
	safety        float64
	effectiveness float64
	convenience   float64
}

func effectiveWeights(p models.PrioritySettings) priorityWeights {
	if p.Safety == 0 && p.Effectiveness == 0 && p.Convenience == 0 {
		p = models.DefaultPriorities()
	}
	sum := float64(p.Safety + p.Effectiveness + p.Convenience)
	return priorityWeights{
		safety:        float64(p.Safety) / sum,
		effectiveness: float64(p.Effectiveness) / sum,
		convenience:   float64(p.Convenience) / sum,
	}
}

// priorityScore applies the user's priority weighting. Safety rewards
// low-risk exercises, effectiveness rewards compound work, convenience
// rewards low equipment demand.
func (e *Engine) priorityScore(ex *models.Exercise, req *models.CustomizationRequest, w priorityWeights) float64 {
	riskTier := 0.0
	if len(e.catalog.Contraindications(ex.ID)) > 0 {
		riskTier = 1
	}
	if ex.HighImpact || ex.RequiresSpotter {
		riskTier = 2
	}
	safetyComponent := (2 - riskTier) / 2

	effectivenessComponent := 0.5
	if ex.IsCompound {
		effectivenessComponent = 1
	}

	gear := 0
	for _, eq := range ex.Equipment {
		if eq != models.EquipPesoCorporal {
			gear++
		}
	}
	convenienceComponent := 1.0
	if gear == 1 {
		convenienceComponent = 0.7
	} else if gear > 1 {
		convenienceComponent = 0.4
	}

	return 10 * (w.safety*safetyComponent + w.effectiveness*effectivenessComponent + w.convenience*convenienceComponent)
}
