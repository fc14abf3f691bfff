package engine

import (
	"fmt"

	"routinegen/internal/models"
)

// resolveStrategy maps the requested style to a concrete strategy.
// Auto derives it from experience: beginners progress linearly,
// intermediates in blocks, advanced users with undulating periodization.
func resolveStrategy(prefs *models.ProgressionPreferences, level models.ExperienceLevel) models.ProgressionStrategy {
	switch prefs.Style {
	case models.ProgressionLinear:
		return models.StrategyLinear
	case models.ProgressionBlock:
		return models.StrategyBlock
	case models.ProgressionPeriodized:
		return models.StrategyPeriodized
	}
	switch level {
	case models.ExpBeginner:
		return models.StrategyLinear
	case models.ExpIntermediate:
		return models.StrategyBlock
	default:
		return models.StrategyPeriodized
	}
}

// deloadFrequency returns every how many weeks a deload is scheduled.
// Deloads are always on; an out-of-range preference falls back to the
// level default.
func deloadFrequency(prefs *models.ProgressionPreferences, level models.ExperienceLevel) int {
	freq := prefs.DeloadFrequency
	if freq < 4 || freq > 6 {
		switch level {
		case models.ExpBeginner:
			freq = 6
		case models.ExpIntermediate:
			freq = 5
		default:
			freq = 4
		}
	}
	return freq
}

// buildProgression lays out the week-by-week plan
func (e *Engine) buildProgression(req *models.CustomizationRequest) models.ProgressionPlan {
	level := req.Profile.Experience
	strategy := resolveStrategy(&req.Progression, level)

	totalWeeks := req.Progression.TotalWeeks
	if totalWeeks <= 0 {
		totalWeeks = 8
	}
	phaseLen := req.Progression.WeeksPerPhase
	if phaseLen <= 0 {
		phaseLen = 3
	}
	freq := deloadFrequency(&req.Progression, level)

	plan := models.ProgressionPlan{
		Strategy:   strategy,
		TotalWeeks: totalWeeks,
		Weeks:      make([]models.ProgressionWeek, 0, totalWeeks),
	}

	for week := 1; week <= totalWeeks; week++ {
		if week%freq == 0 && week != totalWeeks {
			plan.Weeks = append(plan.Weeks, deloadWeek(week))
			continue
		}
		plan.Weeks = append(plan.Weeks, workingWeek(strategy, week, phaseLen))
	}

	plan.Milestones = progressionMilestones(totalWeeks)
	plan.Notes = append(plan.Notes,
		"Sube la carga solo cuando completes todas las series en el rango alto de repeticiones",
		fmt.Sprintf("Semana de descarga cada %d semanas para consolidar adaptaciones", freq))
	return plan
}

// deloadWeek cuts load 40-50% and volume roughly 40%
func deloadWeek(week int) models.ProgressionWeek {
	return models.ProgressionWeek{
		WeekNumber: week,
		Focus:      "Descarga",
		IsDeload:   true,
		Adjustments: map[string]string{
			"carga":    "reducción del 40-50%",
			"volumen":  "reducción del 40%",
			"esfuerzo": "RPE máximo 6",
		},
		Adaptations: []string{"recuperación del sistema nervioso", "consolidación de adaptaciones"},
	}
}

func workingWeek(strategy models.ProgressionStrategy, week, phaseLen int) models.ProgressionWeek {
	switch strategy {
	case models.StrategyLinear:
		return models.ProgressionWeek{
			WeekNumber:  week,
			Focus:       "Progresión lineal",
			Adjustments: map[string]string{"carga": "+2.5% respecto a la semana anterior"},
			Adaptations: []string{"fuerza", "técnica"},
		}
	case models.StrategyBlock:
		phase := ((week - 1) / phaseLen) % 3
		switch phase {
		case 0:
			return models.ProgressionWeek{
				WeekNumber:  week,
				Focus:       "Acumulación",
				Adjustments: map[string]string{"volumen": "+1 serie en ejercicios principales", "carga": "estable"},
				Adaptations: []string{"capacidad de trabajo", "hipertrofia"},
			}
		case 1:
			return models.ProgressionWeek{
				WeekNumber:  week,
				Focus:       "Intensificación",
				Adjustments: map[string]string{"carga": "+5%", "volumen": "-10%"},
				Adaptations: []string{"fuerza máxima"},
			}
		default:
			return models.ProgressionWeek{
				WeekNumber:  week,
				Focus:       "Realización",
				Adjustments: map[string]string{"carga": "+2.5%", "volumen": "mínimo necesario"},
				Adaptations: []string{"expresión de fuerza", "frescura"},
			}
		}
	default:
		// undulating wave over three weeks
		switch (week - 1) % 3 {
		case 0:
			return models.ProgressionWeek{
				WeekNumber:  week,
				Focus:       "Volumen alto",
				Adjustments: map[string]string{"volumen": "+2 series totales", "carga": "moderada"},
				Adaptations: []string{"hipertrofia", "capacidad de trabajo"},
			}
		case 1:
			return models.ProgressionWeek{
				WeekNumber:  week,
				Focus:       "Intensidad media",
				Adjustments: map[string]string{"carga": "+5%", "volumen": "estándar"},
				Adaptations: []string{"fuerza"},
			}
		default:
			return models.ProgressionWeek{
				WeekNumber:  week,
				Focus:       "Intensidad alta",
				Adjustments: map[string]string{"carga": "+7.5%", "volumen": "-20%"},
				Adaptations: []string{"fuerza máxima", "reclutamiento neural"},
			}
		}
	}
}

func progressionMilestones(totalWeeks int) []models.Milestone {
	mid := totalWeeks / 2
	if mid < 1 {
		mid = 1
	}
	return []models.Milestone{
		{
			Name:       "Revisión técnica",
			TargetWeek: mid,
			Metric:     "calidad de ejecución",
			SuccessCriteria: []string{
				"Ejecución controlada en todas las series efectivas",
				"Sin dolor articular durante o después de las sesiones",
			},
		},
		{
			Name:       "Evaluación de progreso",
			TargetWeek: totalWeeks,
			Metric:     "carga de trabajo",
			SuccessCriteria: []string{
				"Incremento de carga o repeticiones respecto a la semana 1",
				"Adherencia de al menos el 80% de las sesiones planificadas",
			},
		},
	}
}
