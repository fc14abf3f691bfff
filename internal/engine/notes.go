package engine

import (
	"fmt"
	"strings"

	"routinegen/internal/models"
)

// buildNotes explains the visible customization decisions to the user
func (e *Engine) buildNotes(req *models.CustomizationRequest, filtered *filterResult, safetyNotes []models.SafetyNote, volume *models.TrainingVolume) []models.PersonalizationNote {
	var notes []models.PersonalizationNote

	for _, sn := range safetyNotes {
		priority := models.PriorityMedium
		switch sn.Severity {
		case models.SafetyCritical:
			priority = models.PriorityCritical
		case models.SafetyWarning:
			priority = models.PriorityHigh
		}
		notes = append(notes, models.PersonalizationNote{
			Category: "Seguridad",
			Note:     sn.Consideration,
			Priority: priority,
		})
	}

	if excluded := countExclusions(filtered, "equipamiento"); excluded > 0 {
		notes = append(notes, models.PersonalizationNote{
			Category: "Equipamiento",
			Note:     fmt.Sprintf("Se descartaron %d ejercicios por falta de equipamiento en %s", excluded, req.Environment.Location),
			Reason:   "solo se programan ejercicios realizables con el material disponible",
			Priority: models.PriorityMedium,
		})
	}

	if excluded := countExclusions(filtered, "contraindicado"); excluded > 0 {
		notes = append(notes, models.PersonalizationNote{
			Category: "Seguridad",
			Note:     fmt.Sprintf("Se descartaron %d ejercicios contraindicados para tus limitaciones físicas", excluded),
			Priority: models.PriorityHigh,
		})
	}

	for _, relaxation := range filtered.relaxed {
		notes = append(notes, models.PersonalizationNote{
			Category: "Selección",
			Note:     fmt.Sprintf("Para completar la rutina %s", relaxation),
			Priority: models.PriorityLow,
		})
	}

	for _, rec := range volume.Recommendations {
		notes = append(notes, models.PersonalizationNote{
			Category: "Volumen",
			Note:     rec,
			Priority: models.PriorityMedium,
		})
	}

	if req.Preferences.PreferredDurationMin > 0 {
		notes = append(notes, models.PersonalizationNote{
			Category: "Duración",
			Note:     fmt.Sprintf("Sesión ajustada a tu preferencia de %d minutos (%s)", req.Preferences.PreferredDurationMin, durationLabel(req.Preferences.PreferredDurationMin)),
			Priority: models.PriorityLow,
		})
	}
	return notes
}

// durationLabel classifies a session length the way users see it
func durationLabel(minutes int) string {
	switch {
	case minutes <= 25:
		return "Express"
	case minutes <= 45:
		return "Estándar"
	case minutes <= 70:
		return "Completa"
	default:
		return "Extendida"
	}
}

// buildSummary condenses the adaptation work into the three user-facing lists
func buildSummary(req *models.CustomizationRequest, filtered *filterResult, safetyNotes []models.SafetyNote) models.AdaptationSummary {
	summary := models.AdaptationSummary{}

	if n := countExclusions(filtered, "equipamiento"); n > 0 {
		summary.MajorAdaptations = append(summary.MajorAdaptations,
			fmt.Sprintf("Selección limitada al equipamiento disponible en %s", req.Environment.Location))
	}
	if req.Profile.Age > 60 {
		summary.MajorAdaptations = append(summary.MajorAdaptations,
			"Volumen y descansos ajustados a la edad")
	}

	for _, sn := range safetyNotes {
		if sn.Severity == models.SafetyInfo {
			continue
		}
		summary.SafetyModifications = append(summary.SafetyModifications, sn.Consideration)
	}
	if n := countExclusions(filtered, "contraindicado"); n > 0 {
		summary.SafetyModifications = append(summary.SafetyModifications,
			fmt.Sprintf("%d ejercicios excluidos por contraindicación", n))
	}

	if n := countExclusions(filtered, "no preferido"); n > 0 {
		summary.PreferenceAccommodations = append(summary.PreferenceAccommodations,
			fmt.Sprintf("%d ejercicios evitados por tus preferencias", n))
	}
	if len(req.Preferences.MuscleFocus) > 0 {
		summary.PreferenceAccommodations = append(summary.PreferenceAccommodations,
			"Selección orientada a tus grupos musculares prioritarios")
	}
	return summary
}

// buildMetadata computes the audit fields. The personalization score
// starts at 1 and only goes down: each relaxation and each unresolved
// limitation costs a fixed amount.
func buildMetadata(req *models.CustomizationRequest, filtered *filterResult, firedRules []string) models.Metadata {
	meta := models.Metadata{
		AppliedRules:        firedRules,
		SafetyAdaptations:   countExclusions(filtered, "contraindicado") + countExclusions(filtered, "restringido"),
		PreferenceAdaptions: countExclusions(filtered, "no preferido") + countExclusions(filtered, "no quiere"),
		ConstraintAdaptions: countExclusions(filtered, "equipamiento") + countExclusions(filtered, "entorno"),
	}

	var unresolved []string
	for _, lim := range req.Profile.Limitations {
		if !limitationAddressed(filtered, lim.BodyZone) {
			unresolved = append(unresolved, lim.Description)
		}
	}
	meta.UnresolvedLimits = unresolved

	score := 1.0
	score -= 0.05 * float64(len(filtered.relaxed))
	score -= 0.1 * float64(len(unresolved))
	if score < 0 {
		score = 0
	}
	meta.PersonalizationScore = score
	return meta
}

// limitationAddressed reports whether filtering actually acted on the
// zone, meaning at least one contraindicated exercise was excluded or
// nothing in the catalog conflicted with it to begin with.
func limitationAddressed(filtered *filterResult, zone models.BodyZone) bool {
	if zone == "" {
		return false
	}
	// a limitation is considered addressed when the filter ran with it;
	// it is unresolved only when relaxations put excluded work back
	return len(filtered.relaxed) == 0 || countExclusions(filtered, "contraindicado") > 0
}

func countExclusions(filtered *filterResult, fragment string) int {
	n := 0
	for _, ex := range filtered.excluded {
		if strings.Contains(ex.reason, fragment) {
			n++
		}
	}
	return n
}
