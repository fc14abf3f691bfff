package models

// BaseRoutine - an already-produced plan that post-hoc operations work on.
// A CustomizedRoutine can be flattened into one via its exercises.
type BaseRoutine struct {
	RoutineID    string            `json:"routine_id"`
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	Exercises    []RoutineExercise `json:"exercises"`
	DurationMin  int               `json:"duration_min"`
	Difficulty   DifficultyLevel   `json:"difficulty"`
	TargetGroups []MuscleGroup     `json:"target_groups,omitempty"`
}

// Clone returns a deep enough copy for safe mutation during adaptation
func (b *BaseRoutine) Clone() BaseRoutine {
	out := *b
	out.Exercises = make([]RoutineExercise, len(b.Exercises))
	copy(out.Exercises, b.Exercises)
	out.TargetGroups = append([]MuscleGroup(nil), b.TargetGroups...)
	return out
}

// AdaptationType - kind of change applied during constraint adaptation
type AdaptationType string

const (
	AdaptSubstitution AdaptationType = "substitution"
	AdaptRemoval      AdaptationType = "removal"
	AdaptParameter    AdaptationType = "parameter" // sets/reps/rest tweak
)

// Adaptation - one applied change, with its estimated training impact
type Adaptation struct {
	Type        AdaptationType `json:"type"`
	Original    string         `json:"original"`
	Replacement string         `json:"replacement,omitempty"`
	Reason      string         `json:"reason"`
	ImpactScore float64        `json:"impact_score"` // 0 cosmetic .. 1 fundamentally different
}

// AdaptedRoutine - result of rewriting a plan under new constraints
type AdaptedRoutine struct {
	AdaptedID               string        `json:"adapted_id"`
	Original                BaseRoutine   `json:"original"`
	Adapted                 BaseRoutine   `json:"adapted"`
	AppliedConstraints      ConstraintSet `json:"applied_constraints"`
	Adaptations             []Adaptation  `json:"adaptations"`
	AdaptationScore         float64       `json:"adaptation_score"` // 0-1
	LimitationsNotAddressed []string      `json:"limitations_not_addressed"`
}

// VariationAxis - controlled axis along which a variation differs
type VariationAxis string

const (
	VariationEquipment  VariationAxis = "equipment"
	VariationDifficulty VariationAxis = "difficulty"
	VariationDuration   VariationAxis = "duration"
	VariationFocus      VariationAxis = "focus"
)

// VariationOptions - knobs for GenerateRoutineVariations
type VariationOptions struct {
	Axes               []VariationAxis `json:"axes"`
	MaxVariations      int             `json:"max_variations"`
	MinSimilarityScore float64         `json:"min_similarity_score"`
}

// RoutineVariation - a sibling plan along one axis of change
type RoutineVariation struct {
	VariationID     string        `json:"variation_id"`
	Name            string        `json:"name"`
	Axis            VariationAxis `json:"axis"`
	Modified        BaseRoutine   `json:"modified"`
	Changes         []string      `json:"changes"`
	Reason          string        `json:"reason,omitempty"`
	SimilarityScore float64       `json:"similarity_score"` // 0-1 vs base
	Benefits        []string      `json:"benefits,omitempty"`
	Considerations  []string      `json:"considerations,omitempty"`
}

// SubstitutionCriteria - requirements a replacement exercise must meet
type SubstitutionCriteria struct {
	RequiredMuscleGroups []MuscleGroup   `json:"required_muscle_groups,omitempty"`
	AvailableEquipment   []EquipmentType `json:"available_equipment,omitempty"`
	MaxDifficulty        DifficultyLevel `json:"max_difficulty,omitempty"`
	PreserveMovements    []string        `json:"preserve_movements,omitempty"` // Spanish pattern labels
	AvoidedMovements     []string        `json:"avoided_movements,omitempty"`
	MaintainIntensity    bool            `json:"maintain_intensity"`
	MinSimilarityScore   float64         `json:"min_similarity_score"`
}

// ExerciseSubstitution - one like-for-like replacement candidate
type ExerciseSubstitution struct {
	Original             string          `json:"original"`
	Substitute           string          `json:"substitute"`
	Reason               string          `json:"reason,omitempty"`
	SimilarityScore      float64         `json:"similarity_score"` // 0-1, never below the caller threshold
	SharedMuscleGroups   []MuscleGroup   `json:"shared_muscle_groups"`
	EquipmentRequired    []EquipmentType `json:"equipment_required"`
	DifficultyComparison string          `json:"difficulty_comparison"` // "más fácil", "similar", "más difícil"
	Differences          []string        `json:"differences,omitempty"`
	ModificationNotes    []string        `json:"modification_notes,omitempty"`
}
