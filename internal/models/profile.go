package models

import "time"

// ExperienceLevel - training experience of the user
type ExperienceLevel string

const (
	ExpBeginner     ExperienceLevel = "Principiante" // < 1 año
	ExpIntermediate ExperienceLevel = "Intermedio"   // 1-3 años
	ExpAdvanced     ExperienceLevel = "Avanzado"     // 3+ años
)

// MaxDifficulty returns the difficulty ceiling for the level
func (e ExperienceLevel) MaxDifficulty() DifficultyLevel {
	switch e {
	case ExpBeginner:
		return DifficultyBeginner
	case ExpIntermediate:
		return DifficultyIntermediate
	default:
		return DifficultyAdvanced
	}
}

// ActivityLevel - daily activity outside training
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "Sedentario"
	ActivityLight     ActivityLevel = "Ligero"
	ActivityModerate  ActivityLevel = "Moderado"
	ActivityActive    ActivityLevel = "Activo"
	ActivityVery      ActivityLevel = "Muy Activo"
)

// IntensityPreference - how hard the user wants sessions to feel
type IntensityPreference string

const (
	IntensityBaja     IntensityPreference = "Baja"
	IntensityModerada IntensityPreference = "Moderada"
	IntensityAlta     IntensityPreference = "Alta"
)

// PhysicalLimitation - free-text limitation tagged with a body zone
type PhysicalLimitation struct {
	Description string   `json:"description"` // "dolor lumbar crónico"
	BodyZone    BodyZone `json:"body_zone"`
}

// BiometricSnapshot - one biometric measurement in time
type BiometricSnapshot struct {
	Date             time.Time `json:"date"`
	WeightKg         float64   `json:"weight_kg"`
	BodyFatPercent   float64   `json:"body_fat_percent,omitempty"`
	RestingHeartRate int       `json:"resting_heart_rate,omitempty"`
}

// UserProfile - immutable description of who is training.
// The engine never mutates it.
type UserProfile struct {
	UserID           string               `json:"user_id"`
	Name             string               `json:"name"`
	Age              int                  `json:"age"`
	Gender           string               `json:"gender,omitempty"`
	WeightKg         float64              `json:"weight_kg,omitempty"`
	HeightCm         float64              `json:"height_cm,omitempty"`
	Experience       ExperienceLevel      `json:"experience"`
	Activity         ActivityLevel        `json:"activity,omitempty"`
	Limitations      []PhysicalLimitation `json:"limitations,omitempty"`
	InjuryHistory    []string             `json:"injury_history,omitempty"` // "lesión de rodilla 2023"
	Medications      []string             `json:"medications,omitempty"`
	BiometricHistory []BiometricSnapshot  `json:"biometric_history,omitempty"`
}

// HasLimitations reports whether any physical limitation is recorded
func (p *UserProfile) HasLimitations() bool {
	return len(p.Limitations) > 0
}

// LimitationZones returns the distinct body zones of all limitations
func (p *UserProfile) LimitationZones() []BodyZone {
	seen := make(map[BodyZone]bool)
	var zones []BodyZone
	for _, l := range p.Limitations {
		if l.BodyZone != "" && !seen[l.BodyZone] {
			seen[l.BodyZone] = true
			zones = append(zones, l.BodyZone)
		}
	}
	return zones
}

// RoutinePreferences - what the user wants a session to look like
type RoutinePreferences struct {
	PreferredDurationMin int                 `json:"preferred_duration_min"`
	MaxDurationMin       int                 `json:"max_duration_min,omitempty"`
	DaysPerWeek          int                 `json:"days_per_week"`
	PreferredTypes       []ExerciseType      `json:"preferred_types,omitempty"`
	MuscleFocus          []MuscleGroup       `json:"muscle_focus,omitempty"` // ranked, index 0 = priority 1
	Intensity            IntensityPreference `json:"intensity,omitempty"`
	DislikedExercises    []string            `json:"disliked_exercises,omitempty"`
	FavoriteExercises    []string            `json:"favorite_exercises,omitempty"`
	WantsCardio          bool                `json:"wants_cardio"`
	WantsFlexibility     bool                `json:"wants_flexibility"`
	PrefersSupersets     bool                `json:"prefers_supersets"`
	TimeSlots            []string            `json:"time_slots,omitempty"` // "Mañana", "Tarde", "Noche"
}

// WorkoutLocation - where the user trains
type WorkoutLocation string

const (
	LocationCasa     WorkoutLocation = "Casa"
	LocationGimnasio WorkoutLocation = "Gimnasio"
	LocationParque   WorkoutLocation = "Parque"
	LocationOficina  WorkoutLocation = "Oficina"
)

// EnvironmentConstraints - physical environment of the session
type EnvironmentConstraints struct {
	Location           WorkoutLocation `json:"location"`
	AvailableEquipment []EquipmentType `json:"available_equipment"`
	FloorSpaceM2       float64         `json:"floor_space_m2,omitempty"`
	NoiseTolerance     string          `json:"noise_tolerance,omitempty"` // "Ninguna", "Baja", "Muy Baja"
	SafetyFeatures     []string        `json:"safety_features,omitempty"` // "Barra de apoyo", "Espejo"
}

// HasEquipment reports whether every entry of required is available.
// No required equipment counts as available.
func (e *EnvironmentConstraints) HasEquipment(required []EquipmentType) bool {
	for _, req := range required {
		found := false
		for _, avail := range e.AvailableEquipment {
			if req == avail {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// PrioritySettings - relative 0-10 weights used as tie-breakers
type PrioritySettings struct {
	Safety        int `json:"safety"`
	Effectiveness int `json:"effectiveness"`
	Convenience   int `json:"convenience"`
}

// DefaultPriorities returns the standard weight set
func DefaultPriorities() PrioritySettings {
	return PrioritySettings{Safety: 10, Effectiveness: 8, Convenience: 6}
}

// ProgressionStyle - multi-week progression strategy preference
type ProgressionStyle string

const (
	ProgressionLinear     ProgressionStyle = "linear"
	ProgressionBlock      ProgressionStyle = "block"
	ProgressionPeriodized ProgressionStyle = "periodized"
	ProgressionAuto       ProgressionStyle = "auto" // derive from experience
)

// ProgressionPreferences - how training load should evolve over weeks
type ProgressionPreferences struct {
	Style            ProgressionStyle `json:"style"`
	WeeksPerPhase    int              `json:"weeks_per_phase"`
	TotalWeeks       int              `json:"total_weeks"`
	WantsDeloadWeeks bool             `json:"wants_deload_weeks"`
	DeloadFrequency  int              `json:"deload_frequency"` // every N weeks, 4-6
}

// CustomizationRequest - complete input for one routine customization
type CustomizationRequest struct {
	Profile     UserProfile            `json:"profile"`
	Preferences RoutinePreferences     `json:"preferences"`
	Environment EnvironmentConstraints `json:"environment"`
	Priorities  PrioritySettings       `json:"priorities"`
	Progression ProgressionPreferences `json:"progression"`
	Constraints ConstraintSet          `json:"constraints,omitempty"`
	Seed        int64                  `json:"seed"` // tie-break randomness, reproducible
}
