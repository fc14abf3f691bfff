package engine

import (
	"fmt"

	"routinegen/internal/models"
)

// buildWarmup assembles the three warmup phases. Duration starts from an
// experience base and grows with age and recorded limitations, capped at
// 15 minutes.
func (e *Engine) buildWarmup(req *models.CustomizationRequest, blocks []models.WorkoutBlock) models.Warmup {
	duration, reasons := warmupDuration(&req.Profile)

	general := duration * 40 / 100
	mobility := duration * 30 / 100
	specific := duration - general - mobility

	muscles := sessionMuscles(blocks)

	warmup := models.Warmup{
		DurationMin:           duration,
		SpecialConsiderations: warmupConsiderations(&req.Profile),
		Phases: []models.WarmupPhase{
			{
				Name:        "Activación General",
				DurationMin: general,
				Instruction: "Elevar gradualmente la frecuencia cardíaca y la temperatura corporal",
				Exercises: []models.ProtocolExercise{
					{Name: "Marcha en el sitio", DurationSec: general * 30, Instruction: "Ritmo suave, aumentando progresivamente"},
					{Name: "Círculos de brazos", DurationSec: general * 30, Instruction: "Ambas direcciones, amplitud creciente"},
				},
			},
			{
				Name:        "Movilidad Dinámica",
				DurationMin: mobility,
				Instruction: "Movilizar las articulaciones que trabajarán en la sesión",
				Exercises:   mobilityDrills(muscles, mobility),
			},
			{
				Name:        "Preparación Específica",
				DurationMin: specific,
				Instruction: "Series de aproximación con carga muy ligera de los primeros ejercicios",
				Exercises:   specificPrep(blocks, specific),
			},
		},
	}
	if len(reasons) > 0 {
		warmup.PersonalizationReason = joinReasons(reasons)
	}
	return warmup
}

func warmupDuration(profile *models.UserProfile) (int, []string) {
	var duration int
	switch profile.Experience {
	case models.ExpBeginner:
		duration = 8
	case models.ExpIntermediate:
		duration = 7
	default:
		duration = 6
	}

	var reasons []string
	switch {
	case profile.Age > 65:
		duration += 3
		reasons = append(reasons, "calentamiento extendido por edad superior a 65 años")
	case profile.Age > 50:
		duration += 2
		reasons = append(reasons, "calentamiento extendido por edad superior a 50 años")
	}
	if profile.HasLimitations() {
		duration += 2
		reasons = append(reasons, "tiempo adicional para preparar zonas con limitaciones")
	}
	if duration > 15 {
		duration = 15
	}
	return duration, reasons
}

// warmupConsiderations lists risk-triggered cautions. A profile without
// risk factors gets no considerations.
func warmupConsiderations(profile *models.UserProfile) []string {
	var considerations []string
	if profile.Age > 50 {
		considerations = append(considerations, "Progresa la intensidad más despacio de lo habitual")
	}
	for _, lim := range profile.Limitations {
		considerations = append(considerations,
			fmt.Sprintf("Presta atención a la zona afectada: %s", lim.Description))
	}
	for _, injury := range profile.InjuryHistory {
		considerations = append(considerations,
			fmt.Sprintf("Moviliza con cuidado la zona de la lesión previa: %s", injury))
	}
	return considerations
}

func mobilityDrills(muscles []models.MuscleGroup, minutes int) []models.ProtocolExercise {
	if minutes < 1 {
		minutes = 1
	}
	drills := map[models.MuscleGroup]models.ProtocolExercise{
		models.MusclePiernas: {Name: "Sentadillas sin peso lentas", Muscles: []models.MuscleGroup{models.MusclePiernas}},
		models.MusclePecho:   {Name: "Aperturas de brazos dinámicas", Muscles: []models.MuscleGroup{models.MusclePecho}},
		models.MuscleEspalda: {Name: "Rotaciones de tronco", Muscles: []models.MuscleGroup{models.MuscleEspalda}},
		models.MuscleHombros: {Name: "Círculos de hombros con bastón", Muscles: []models.MuscleGroup{models.MuscleHombros}},
		models.MuscleGluteos: {Name: "Balanceos de pierna", Muscles: []models.MuscleGroup{models.MuscleGluteos}},
		models.MuscleCore:    {Name: "Gato-camello", Muscles: []models.MuscleGroup{models.MuscleCore}},
	}

	var selected []models.ProtocolExercise
	for _, m := range muscles {
		if drill, ok := drills[m]; ok {
			selected = append(selected, drill)
		}
		if len(selected) == 3 {
			break
		}
	}
	if len(selected) == 0 {
		selected = []models.ProtocolExercise{
			{Name: "Movilidad articular general"},
		}
	}
	per := minutes * 60 / len(selected)
	for i := range selected {
		selected[i].DurationSec = per
	}
	return selected
}

// specificPrep builds approximation sets from the first compound exercises
func specificPrep(blocks []models.WorkoutBlock, minutes int) []models.ProtocolExercise {
	var prep []models.ProtocolExercise
	for _, block := range blocks {
		for _, ex := range block.Exercises {
			if !ex.IsCompound {
				continue
			}
			prep = append(prep, models.ProtocolExercise{
				Name:        ex.Name,
				Muscles:     ex.MuscleGroups,
				Instruction: "1-2 series con carga muy ligera antes de las series efectivas",
			})
			if len(prep) == 2 {
				break
			}
		}
		if len(prep) == 2 {
			break
		}
	}
	if len(prep) == 0 {
		return []models.ProtocolExercise{{Name: "Repeticiones lentas del primer ejercicio", DurationSec: minutes * 60}}
	}
	per := minutes * 60 / len(prep)
	for i := range prep {
		prep[i].DurationSec = per
	}
	return prep
}

// buildCooldown assembles the recovery phases after the session
func (e *Engine) buildCooldown(req *models.CustomizationRequest, blocks []models.WorkoutBlock) models.Cooldown {
	duration := 7
	stretchShare := 45
	var reasons []string
	if req.Profile.Age > 50 {
		duration += 2
		reasons = append(reasons, "vuelta a la calma extendida por edad")
	}
	if req.Profile.HasLimitations() {
		duration += 2
		reasons = append(reasons, "estiramientos adicionales para zonas con limitaciones")
	}
	if req.Preferences.WantsFlexibility {
		duration += 2
		stretchShare = 55
		reasons = append(reasons, "bloque de estiramientos ampliado a petición del usuario")
	}
	if duration > 12 {
		duration = 12
	}

	active := duration * 30 / 100
	stretch := duration * stretchShare / 100
	relax := duration - active - stretch

	cooldown := models.Cooldown{
		DurationMin:  duration,
		RecoveryTips: recoveryTips(&req.Profile),
		Phases: []models.CooldownPhase{
			{
				Name:        "Recuperación Activa",
				DurationMin: active,
				Instruction: "Caminar suave hasta normalizar la respiración",
				Exercises: []models.ProtocolExercise{
					{Name: "Caminata suave", DurationSec: active * 60},
				},
			},
			{
				Name:        "Estiramientos",
				DurationMin: stretch,
				Instruction: "Estiramiento estático de los músculos trabajados, 20-30 segundos por grupo",
				Exercises:   stretchesFor(sessionMuscles(blocks), stretch),
			},
			{
				Name:        "Relajación",
				DurationMin: relax,
				Instruction: "Respiración diafragmática lenta",
				Exercises: []models.ProtocolExercise{
					{Name: "Respiración profunda", DurationSec: relax * 60, Instruction: "Inhala 4 segundos, exhala 6"},
				},
			},
		},
	}
	if len(reasons) > 0 {
		cooldown.PersonalizationReason = joinReasons(reasons)
	}
	return cooldown
}

// recoveryTips emits advice only for profiles that carry a risk factor.
// A young user without limitations gets none.
func recoveryTips(profile *models.UserProfile) []string {
	var tips []string
	if profile.Age > 50 {
		tips = append(tips, "Deja al menos 48 horas antes de volver a trabajar los mismos grupos musculares")
	}
	if profile.Age > 65 {
		tips = append(tips, "Prioriza el sueño: la recuperación es más lenta a partir de los 65 años")
	}
	if profile.HasLimitations() {
		tips = append(tips, "Aplica frío en las zonas con molestias si aparecen tras la sesión")
	}
	if len(profile.InjuryHistory) > 0 {
		tips = append(tips, "Vigila las zonas con lesiones previas durante las 24 horas siguientes")
	}
	if profile.Activity == models.ActivitySedentary {
		tips = append(tips, "Camina unos minutos al día siguiente para reducir las agujetas")
	}
	return tips
}

func stretchesFor(muscles []models.MuscleGroup, minutes int) []models.ProtocolExercise {
	if minutes < 1 {
		minutes = 1
	}
	stretches := map[models.MuscleGroup]string{
		models.MusclePiernas:      "Estiramiento de cuádriceps e isquiotibiales",
		models.MusclePecho:        "Estiramiento de pectoral en pared",
		models.MuscleEspalda:      "Postura del niño",
		models.MuscleHombros:      "Estiramiento de hombro cruzado",
		models.MuscleGluteos:      "Estiramiento de glúteo en figura 4",
		models.MuscleCore:         "Extensión suave de tronco",
		models.MuscleBiceps:       "Estiramiento de bíceps con brazo extendido",
		models.MuscleTriceps:      "Estiramiento de tríceps tras la cabeza",
		models.MusclePantorrillas: "Estiramiento de pantorrilla en pared",
	}

	var selected []models.ProtocolExercise
	for _, m := range muscles {
		if name, ok := stretches[m]; ok {
			selected = append(selected, models.ProtocolExercise{Name: name, Muscles: []models.MuscleGroup{m}})
		}
		if len(selected) == 4 {
			break
		}
	}
	if len(selected) == 0 {
		selected = []models.ProtocolExercise{{Name: "Estiramiento general de cuerpo completo"}}
	}
	per := minutes * 60 / len(selected)
	for i := range selected {
		selected[i].DurationSec = per
	}
	return selected
}

// sessionMuscles returns the distinct primary muscles across all blocks,
// in session order.
func sessionMuscles(blocks []models.WorkoutBlock) []models.MuscleGroup {
	seen := make(map[models.MuscleGroup]bool)
	var muscles []models.MuscleGroup
	for _, block := range blocks {
		for _, ex := range block.Exercises {
			for _, m := range ex.MuscleGroups {
				if !seen[m] {
					seen[m] = true
					muscles = append(muscles, m)
				}
			}
		}
	}
	return muscles
}

func joinReasons(reasons []string) string {
	out := ""
	for i, r := range reasons {
		if i > 0 {
			out += "; "
		}
		out += r
	}
	return out
}
