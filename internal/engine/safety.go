package engine

import (
	"fmt"
	"strings"

	"routinegen/internal/catalog"
	"routinegen/internal/models"
)

// safetyRule evaluates one condition over the request and emits a note
// when it applies. Rules are evaluated in order and are independent.
type safetyRule struct {
	name  string
	apply func(*models.CustomizationRequest) *models.SafetyNote
}

// safetyRules is the fixed rule set. Every critical note must carry at
// least one warning sign that tells the user when to stop.
var safetyRules = []safetyRule{
	{
		name: "edad_avanzada",
		apply: func(req *models.CustomizationRequest) *models.SafetyNote {
			switch {
			case req.Profile.Age >= 65:
				return &models.SafetyNote{
					Category:      "Edad",
					Consideration: "A partir de los 65 años la capacidad de recuperación disminuye y el riesgo articular aumenta",
					Severity:      models.SafetyWarning,
					Precautions: []string{
						"Prioriza la técnica sobre la carga",
						"Aumenta los descansos entre series si es necesario",
						"Consulta con tu médico antes de aumentar la intensidad",
					},
					WarningSignsToStop: []string{"Mareo o pérdida de equilibrio", "Dolor articular agudo"},
				}
			case req.Profile.Age >= 50:
				return &models.SafetyNote{
					Category:      "Edad",
					Consideration: "El calentamiento y la progresión gradual son especialmente importantes a partir de los 50 años",
					Severity:      models.SafetyInfo,
					Precautions:   []string{"No saltes nunca el calentamiento", "Progresa la carga más despacio"},
				}
			}
			return nil
		},
	},
	{
		name: "condicion_cardiovascular",
		apply: func(req *models.CustomizationRequest) *models.SafetyNote {
			if !hasCardiovascularCondition(&req.Profile) {
				return nil
			}
			return &models.SafetyNote{
				Category:      "Cardiovascular",
				Consideration: "Hay una condición cardiovascular registrada; la intensidad debe mantenerse bajo control",
				Severity:      models.SafetyCritical,
				Precautions: []string{
					"Obtén autorización médica antes de comenzar",
					"Controla la frecuencia cardíaca durante toda la sesión",
					"Evita las maniobras de Valsalva (no contengas la respiración)",
				},
				WarningSignsToStop: []string{
					"Dolor u opresión en el pecho",
					"Falta de aire desproporcionada al esfuerzo",
					"Palpitaciones o ritmo cardíaco irregular",
					"Mareo o visión borrosa",
				},
			}
		},
	},
	{
		name: "limitaciones_articulares",
		apply: func(req *models.CustomizationRequest) *models.SafetyNote {
			zones := jointZones(&req.Profile)
			if len(zones) == 0 {
				return nil
			}
			return &models.SafetyNote{
				Category:      "Articulaciones",
				Consideration: fmt.Sprintf("Limitaciones registradas en: %s", strings.Join(zones, ", ")),
				Severity:      models.SafetyWarning,
				Precautions: []string{
					"Trabaja en rangos de movimiento sin dolor",
					"Reduce la carga ante cualquier molestia en la zona afectada",
				},
				WarningSignsToStop: []string{"Dolor agudo o punzante en la articulación", "Inflamación durante la sesión"},
			}
		},
	},
	{
		name: "historial_de_lesiones",
		apply: func(req *models.CustomizationRequest) *models.SafetyNote {
			zones := injuryZones(&req.Profile)
			if len(zones) == 0 {
				return nil
			}
			labels := make([]string, 0, len(zones))
			for _, z := range zones {
				if label, ok := zoneLabels[z]; ok {
					labels = append(labels, label)
				}
			}
			if len(labels) == 0 {
				return nil
			}
			return &models.SafetyNote{
				Category:      "Lesiones previas",
				Consideration: fmt.Sprintf("Historial de lesiones que afecta a: %s", strings.Join(labels, ", ")),
				Severity:      models.SafetyWarning,
				Precautions: []string{
					"Evita movimientos de alto impacto sobre la zona lesionada",
					"Retoma la carga en esa zona de forma gradual",
				},
				WarningSignsToStop: []string{
					"Dolor que reproduce la lesión original",
					"Sensación de inestabilidad en la zona afectada",
				},
			}
		},
	},
	{
		name: "principiante",
		apply: func(req *models.CustomizationRequest) *models.SafetyNote {
			if req.Profile.Experience != models.ExpBeginner {
				return nil
			}
			return &models.SafetyNote{
				Category:      "Técnica",
				Consideration: "Las primeras semanas son para aprender los patrones de movimiento, no para cargar peso",
				Severity:      models.SafetyInfo,
				Precautions: []string{
					"Domina cada ejercicio sin carga antes de añadir peso",
					"Deja siempre 2-3 repeticiones en reserva",
				},
			}
		},
	},
	{
		name: "intensidad_vs_sedentarismo",
		apply: func(req *models.CustomizationRequest) *models.SafetyNote {
			if req.Preferences.Intensity != models.IntensityAlta || req.Profile.Activity != models.ActivitySedentary {
				return nil
			}
			return &models.SafetyNote{
				Category:      "Intensidad",
				Consideration: "Intensidad alta solicitada con un estilo de vida sedentario; el cuerpo necesita semanas de adaptación",
				Severity:      models.SafetyWarning,
				Precautions: []string{
					"Comienza las dos primeras semanas a intensidad moderada",
					"Vigila las agujetas excesivas como señal de sobreesfuerzo",
				},
				WarningSignsToStop: []string{"Náuseas durante el esfuerzo", "Dolor muscular que impide el movimiento normal"},
			}
		},
	},
	{
		name: "frecuencia_cardiaca_maxima",
		apply: func(req *models.CustomizationRequest) *models.SafetyNote {
			maxHR := 0
			for _, sc := range req.Constraints.Safety {
				if sc.MaxHeartRate > maxHR {
					maxHR = sc.MaxHeartRate
				}
			}
			if maxHR == 0 {
				return nil
			}
			return &models.SafetyNote{
				Category:      "Frecuencia cardíaca",
				Consideration: fmt.Sprintf("Frecuencia cardíaca limitada a %d ppm por indicación registrada", maxHR),
				Severity:      models.SafetyWarning,
				Precautions:   []string{"Usa un pulsómetro durante toda la sesión", "Alarga los descansos si te acercas al límite"},
				WarningSignsToStop: []string{
					fmt.Sprintf("Superar %d ppm de forma sostenida", maxHR),
				},
			}
		},
	},
}

// evaluateSafety runs every rule and returns the emitted notes plus the
// names of the rules that fired.
func (e *Engine) evaluateSafety(req *models.CustomizationRequest) ([]models.SafetyNote, []string) {
	var notes []models.SafetyNote
	var fired []string
	for _, rule := range safetyRules {
		if note := rule.apply(req); note != nil {
			notes = append(notes, *note)
			fired = append(fired, rule.name)
		}
	}
	return notes, fired
}

var cardioKeywords = []string{"cardio", "corazon", "cardiaca", "hipertension", "presion arterial", "arritmia"}

func hasCardiovascularCondition(profile *models.UserProfile) bool {
	for _, lim := range profile.Limitations {
		if lim.BodyZone == models.ZoneHeart {
			return true
		}
		desc := catalog.Normalize(lim.Description)
		for _, kw := range cardioKeywords {
			if strings.Contains(desc, kw) {
				return true
			}
		}
	}
	for _, med := range profile.Medications {
		norm := catalog.Normalize(med)
		for _, kw := range cardioKeywords {
			if strings.Contains(norm, kw) {
				return true
			}
		}
	}
	return false
}

var zoneLabels = map[models.BodyZone]string{
	models.ZoneLowerBack: "zona lumbar",
	models.ZoneKnee:      "rodillas",
	models.ZoneShoulder:  "hombros",
	models.ZoneWrist:     "muñecas",
	models.ZoneHip:       "cadera",
	models.ZoneAnkle:     "tobillos",
	models.ZoneElbow:     "codos",
	models.ZoneNeck:      "cervicales",
}

var injuryZoneKeywords = []struct {
	keyword string
	zone    models.BodyZone
}{
	{"rodilla", models.ZoneKnee},
	{"menisco", models.ZoneKnee},
	{"hombro", models.ZoneShoulder},
	{"manguito", models.ZoneShoulder},
	{"lumbar", models.ZoneLowerBack},
	{"espalda", models.ZoneLowerBack},
	{"muneca", models.ZoneWrist},
	{"tobillo", models.ZoneAnkle},
	{"codo", models.ZoneElbow},
	{"cadera", models.ZoneHip},
	{"cervical", models.ZoneNeck},
	{"cuello", models.ZoneNeck},
}

// injuryZones extracts the body zones mentioned in the free-text injury
// history. "lesión de rodilla 2023" -> ZoneKnee.
func injuryZones(profile *models.UserProfile) []models.BodyZone {
	seen := make(map[models.BodyZone]bool)
	var zones []models.BodyZone
	for _, injury := range profile.InjuryHistory {
		norm := catalog.Normalize(injury)
		for _, entry := range injuryZoneKeywords {
			if strings.Contains(norm, entry.keyword) && !seen[entry.zone] {
				seen[entry.zone] = true
				zones = append(zones, entry.zone)
			}
		}
	}
	return zones
}

func jointZones(profile *models.UserProfile) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, z := range profile.LimitationZones() {
		label, ok := zoneLabels[z]
		if !ok || seen[label] {
			continue
		}
		seen[label] = true
		labels = append(labels, label)
	}
	return labels
}
