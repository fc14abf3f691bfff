package engine

import (
	"fmt"

	"routinegen/internal/catalog"
	"routinegen/internal/models"
)

// filterResult carries the surviving candidates plus an audit trail of
// what was excluded and why. Excluded exercises never reach scoring,
// sequencing or any later stage.
type filterResult struct {
	candidates []models.Exercise
	excluded   []exclusion
	relaxed    []string
}

type exclusion struct {
	name   string
	reason string
}

// filterCandidates applies the hard filters in a fixed order: safety,
// equipment, difficulty, preference. When nothing survives it relaxes
// the difficulty ceiling and then the disliked list, in that order.
// Safety and equipment filters are never relaxed.
func (e *Engine) filterCandidates(req *models.CustomizationRequest) (*filterResult, error) {
	res := e.runFilters(req, filterOptions{})
	if len(res.candidates) > 0 {
		return res, nil
	}

	relaxed := e.runFilters(req, filterOptions{allowNextDifficulty: true})
	if len(relaxed.candidates) > 0 {
		relaxed.relaxed = append(relaxed.relaxed, "se amplió el nivel de dificultad permitido")
		return relaxed, nil
	}

	relaxed = e.runFilters(req, filterOptions{allowNextDifficulty: true, ignoreDislikes: true})
	if len(relaxed.candidates) > 0 {
		relaxed.relaxed = append(relaxed.relaxed,
			"se amplió el nivel de dificultad permitido",
			"se ignoraron ejercicios marcados como no preferidos")
		return relaxed, nil
	}
	return nil, ErrNoCandidates
}

type filterOptions struct {
	allowNextDifficulty bool
	ignoreDislikes      bool
}

func (e *Engine) runFilters(req *models.CustomizationRequest, opts filterOptions) *filterResult {
	res := &filterResult{}
	maxDiff := req.Profile.Experience.MaxDifficulty()
	if opts.allowNextDifficulty && maxDiff < models.DifficultyAdvanced {
		maxDiff++
	}

	zones := limitationZones(req)
	restrictedNames := req.Constraints.RestrictedExerciseNames()
	restrictedMovements := req.Constraints.RestrictedMovements()

	for _, ex := range e.catalog.Exercises() {
		if reason := e.rejectReason(&ex, req, opts, maxDiff, zones, restrictedNames, restrictedMovements); reason != "" {
			res.excluded = append(res.excluded, exclusion{name: ex.Name, reason: reason})
			continue
		}
		res.candidates = append(res.candidates, ex)
	}
	return res
}

// rejectReason returns an empty string when the exercise passes every
// hard filter, otherwise the Spanish reason it was rejected.
func (e *Engine) rejectReason(ex *models.Exercise, req *models.CustomizationRequest, opts filterOptions,
	maxDiff models.DifficultyLevel, zones []models.BodyZone, restrictedNames, restrictedMovements []string) string {

	// Safety first: contraindications against limitation zones block
	// regardless of severity. Being conservative here is the point.
	if e.catalog.ContraindicatedFor(ex.ID, zones, true) {
		return "contraindicado para una limitación física registrada"
	}
	for _, name := range restrictedNames {
		if catalog.MatchesLabel(ex.Name, name) || catalog.MatchesLabel(ex.NameEn, name) {
			return "restringido por una condición de seguridad"
		}
	}
	for _, movement := range restrictedMovements {
		for _, pattern := range ex.MovementPatterns {
			if catalog.MatchesLabel(pattern, movement) {
				return fmt.Sprintf("patrón de movimiento restringido: %s", pattern)
			}
		}
	}
	if ex.RequiresSpotter && req.Environment.Location != models.LocationGimnasio {
		return "requiere asistente y el entorno no lo garantiza"
	}
	if ex.HighImpact && lowNoiseEnvironment(&req.Environment) {
		return "alto impacto incompatible con el entorno"
	}

	if !equipmentAvailable(ex, &req.Environment) {
		return "equipamiento no disponible"
	}

	if ex.Difficulty > maxDiff {
		return "dificultad por encima del nivel del usuario"
	}

	switch ex.Type {
	case models.TypeCardio:
		if !req.Preferences.WantsCardio {
			return "el usuario no quiere trabajo cardiovascular"
		}
	case models.TypeFlexibility, models.TypeMobility:
		// programmed through warmup and cooldown, not the main blocks
		return "reservado para calentamiento y vuelta a la calma"
	}

	if !opts.ignoreDislikes {
		for _, disliked := range req.Preferences.DislikedExercises {
			if catalog.MatchesLabel(ex.Name, disliked) || catalog.MatchesLabel(ex.NameEn, disliked) {
				return "marcado como no preferido por el usuario"
			}
		}
	}
	return ""
}

// limitationZones merges profile limitation zones, zones parsed from the
// injury history and the zones of physical constraints.
func limitationZones(req *models.CustomizationRequest) []models.BodyZone {
	seen := make(map[models.BodyZone]bool)
	var zones []models.BodyZone
	add := func(z models.BodyZone) {
		if z != "" && !seen[z] {
			seen[z] = true
			zones = append(zones, z)
		}
	}
	for _, z := range req.Profile.LimitationZones() {
		add(z)
	}
	for _, z := range injuryZones(&req.Profile) {
		add(z)
	}
	for _, pc := range req.Constraints.Physical {
		add(pc.BodyZone)
	}
	return zones
}

// equipmentAvailable checks that every required piece is on hand.
// Bodyweight is always available.
func equipmentAvailable(ex *models.Exercise, env *models.EnvironmentConstraints) bool {
	var required []models.EquipmentType
	for _, eq := range ex.Equipment {
		if eq == models.EquipPesoCorporal {
			continue
		}
		required = append(required, eq)
	}
	return env.HasEquipment(required)
}

func lowNoiseEnvironment(env *models.EnvironmentConstraints) bool {
	if env.Location == models.LocationOficina {
		return true
	}
	switch catalog.Normalize(env.NoiseTolerance) {
	case "ninguna", "muy baja":
		return true
	}
	return false
}
