package engine

import (
	"fmt"
	"sort"

	"routinegen/internal/catalog"
	"routinegen/internal/models"
)

// similarity weighs how interchangeable two exercises are, in [0,1].
// Primary muscle overlap dominates; movement type, shared movement
// patterns and difficulty proximity refine it.
func similarity(a, b *models.Exercise) float64 {
	score := 0.5 * muscleOverlap(a.PrimaryMuscles, b.PrimaryMuscles)

	if a.MovementType == b.MovementType {
		score += 0.2
	}
	score += 0.15 * patternOverlap(a.MovementPatterns, b.MovementPatterns)

	diff := int(a.Difficulty) - int(b.Difficulty)
	if diff < 0 {
		diff = -diff
	}
	score += 0.1 * (1 - float64(diff)/2)

	if a.IsCompound == b.IsCompound {
		score += 0.05
	}
	return score
}

func muscleOverlap(a, b []models.MuscleGroup) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[models.MuscleGroup]bool, len(a))
	for _, m := range a {
		set[m] = true
	}
	shared := 0
	union := len(a)
	for _, m := range b {
		if set[m] {
			shared++
		} else {
			union++
		}
	}
	return float64(shared) / float64(union)
}

func patternOverlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	shared := 0
	for _, pa := range a {
		for _, pb := range b {
			if catalog.MatchesLabel(pa, pb) {
				shared++
				break
			}
		}
	}
	if shared == 0 {
		return 0
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	return float64(shared) / float64(longest)
}

// findSubstitutions lists catalog alternatives for the original exercise
// that meet the criteria. Candidates below the similarity threshold are
// dropped, never clamped up, so every returned score honors the
// threshold. Results are sorted best first.
func (e *Engine) findSubstitutions(original *models.Exercise, criteria *models.SubstitutionCriteria) []models.ExerciseSubstitution {
	var subs []models.ExerciseSubstitution

	for _, cand := range e.catalog.Exercises() {
		if cand.ID == original.ID {
			continue
		}
		if !e.candidateMeetsCriteria(&cand, criteria) {
			continue
		}
		score := similarity(original, &cand)
		if score < criteria.MinSimilarityScore {
			continue
		}
		subs = append(subs, e.buildSubstitution(original, &cand, criteria, score))
	}

	sort.SliceStable(subs, func(i, j int) bool {
		if subs[i].SimilarityScore != subs[j].SimilarityScore {
			return subs[i].SimilarityScore > subs[j].SimilarityScore
		}
		return catalog.Normalize(subs[i].Substitute) < catalog.Normalize(subs[j].Substitute)
	})
	return subs
}

func (e *Engine) candidateMeetsCriteria(cand *models.Exercise, criteria *models.SubstitutionCriteria) bool {
	if criteria.MaxDifficulty > 0 && cand.Difficulty > criteria.MaxDifficulty {
		return false
	}

	if len(criteria.AvailableEquipment) > 0 {
		env := models.EnvironmentConstraints{AvailableEquipment: criteria.AvailableEquipment}
		if !equipmentAvailable(cand, &env) {
			return false
		}
	}

	for _, avoided := range criteria.AvoidedMovements {
		for _, pattern := range cand.MovementPatterns {
			if catalog.MatchesLabel(pattern, avoided) {
				return false
			}
		}
	}

	for _, required := range criteria.PreserveMovements {
		found := false
		for _, pattern := range cand.MovementPatterns {
			if catalog.MatchesLabel(pattern, required) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for _, muscle := range criteria.RequiredMuscleGroups {
		if !cand.WorksMuscle(muscle) {
			return false
		}
	}
	return true
}

func (e *Engine) buildSubstitution(original, cand *models.Exercise, criteria *models.SubstitutionCriteria, score float64) models.ExerciseSubstitution {
	sub := models.ExerciseSubstitution{
		Original:           original.Name,
		Substitute:         cand.Name,
		SimilarityScore:    score,
		SharedMuscleGroups: sharedMuscles(original.PrimaryMuscles, cand.PrimaryMuscles),
		EquipmentRequired:  cand.Equipment,
	}

	switch {
	case cand.Difficulty < original.Difficulty:
		sub.DifficultyComparison = "más fácil"
	case cand.Difficulty > original.Difficulty:
		sub.DifficultyComparison = "más difícil"
	default:
		sub.DifficultyComparison = "similar"
	}

	if cand.MovementType == original.MovementType {
		sub.Reason = fmt.Sprintf("Mismo patrón de movimiento trabajando %s", musclesLabel(sub.SharedMuscleGroups))
	} else {
		sub.Reason = fmt.Sprintf("Trabaja %s con un patrón alternativo", musclesLabel(sub.SharedMuscleGroups))
	}

	if !equipmentEqual(original.Equipment, cand.Equipment) {
		sub.Differences = append(sub.Differences, "requiere equipamiento distinto")
	}
	if cand.IsCompound != original.IsCompound {
		if cand.IsCompound {
			sub.Differences = append(sub.Differences, "involucra más grupos musculares que el original")
		} else {
			sub.Differences = append(sub.Differences, "aísla más el músculo objetivo que el original")
		}
	}

	if criteria.MaintainIntensity {
		switch sub.DifficultyComparison {
		case "más fácil":
			sub.ModificationNotes = append(sub.ModificationNotes,
				"Añade 2-4 repeticiones por serie o reduce el descanso para igualar la intensidad")
		case "más difícil":
			sub.ModificationNotes = append(sub.ModificationNotes,
				"Reduce 2-3 repeticiones por serie hasta dominar la técnica")
		}
	}
	return sub
}

func sharedMuscles(a, b []models.MuscleGroup) []models.MuscleGroup {
	set := make(map[models.MuscleGroup]bool, len(a))
	for _, m := range a {
		set[m] = true
	}
	var shared []models.MuscleGroup
	for _, m := range b {
		if set[m] {
			shared = append(shared, m)
		}
	}
	return shared
}

func musclesLabel(muscles []models.MuscleGroup) string {
	if len(muscles) == 0 {
		return "músculos complementarios"
	}
	out := ""
	for i, m := range muscles {
		if i > 0 {
			out += ", "
		}
		out += string(m)
	}
	return out
}

func equipmentEqual(a, b []models.EquipmentType) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[models.EquipmentType]bool, len(a))
	for _, eq := range a {
		set[eq] = true
	}
	for _, eq := range b {
		if !set[eq] {
			return false
		}
	}
	return true
}
