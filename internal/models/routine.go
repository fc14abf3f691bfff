package models

import "time"

// Tempo - eccentric/pause/concentric/top seconds, "3-1-2-0" style
type Tempo struct {
	EccentricSec  int `json:"eccentric_sec"`
	PauseSec      int `json:"pause_sec"`
	ConcentricSec int `json:"concentric_sec"`
	TopPauseSec   int `json:"top_pause_sec"`
}

// Notation returns the classic dash notation, e.g. "3-1-2-0"
func (t Tempo) Notation() string {
	digits := []int{t.EccentricSec, t.PauseSec, t.ConcentricSec, t.TopPauseSec}
	out := make([]byte, 0, 7)
	for i, d := range digits {
		if i > 0 {
			out = append(out, '-')
		}
		if d < 0 {
			d = 0
		}
		if d > 9 {
			d = 9
		}
		out = append(out, byte('0'+d))
	}
	return string(out)
}

// SecondsPerRep returns total seconds one repetition takes
func (t Tempo) SecondsPerRep() int {
	return t.EccentricSec + t.PauseSec + t.ConcentricSec + t.TopPauseSec
}

// TransitionType - how one exercise hands over to the next
type TransitionType string

const (
	TransitionStraightSets TransitionType = "straight_sets"
	TransitionSuperset     TransitionType = "superset"
	TransitionCircuit      TransitionType = "circuit"
)

// ExerciseParameters - prescription for one exercise in a block
type ExerciseParameters struct {
	Sets        int    `json:"sets"`
	RepsMin     int    `json:"reps_min"`
	RepsMax     int    `json:"reps_max"`
	Tempo       Tempo  `json:"tempo"`
	RestSeconds int    `json:"rest_seconds"`
	LoadNote    string `json:"load_note,omitempty"` // "60-70% 1RM" or RPE hint
}

// RepsString returns "8-12" or "8" when min == max
func (p *ExerciseParameters) RepsString() string {
	if p.RepsMin == p.RepsMax {
		return itoa(p.RepsMin)
	}
	return itoa(p.RepsMin) + "-" + itoa(p.RepsMax)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// RoutineExercise - a catalog exercise plus its prescription
type RoutineExercise struct {
	ExerciseID    string             `json:"exercise_id"`
	Name          string             `json:"name"`
	MuscleGroups  []MuscleGroup      `json:"muscle_groups"`
	Equipment     []EquipmentType    `json:"equipment"`
	MovementType  MovementType       `json:"movement_type"`
	Difficulty    DifficultyLevel    `json:"difficulty"`
	IsCompound    bool               `json:"is_compound"`
	Parameters    ExerciseParameters `json:"parameters"`
	Transition    TransitionType     `json:"transition"`
	Instructions  []string           `json:"instructions,omitempty"`
	SafetyNotes   []string           `json:"safety_notes,omitempty"`
	SelectionNote string             `json:"selection_note,omitempty"` // why it was picked
}

// EstimatedMinutes returns approximate work + rest time for the exercise
func (r *RoutineExercise) EstimatedMinutes() float64 {
	perRep := r.Parameters.Tempo.SecondsPerRep()
	if perRep <= 0 {
		perRep = 4
	}
	reps := (r.Parameters.RepsMin + r.Parameters.RepsMax) / 2
	workSec := r.Parameters.Sets * reps * perRep
	restSec := 0
	if r.Parameters.Sets > 1 {
		restSec = (r.Parameters.Sets - 1) * r.Parameters.RestSeconds
	}
	return float64(workSec+restSec) / 60.0
}

// BlockType - tagged type of a workout block
type BlockType string

const (
	BlockPrincipal BlockType = "principal" // main strength work
	BlockAccesorio BlockType = "accesorio" // accessory / isolation
	BlockCardio    BlockType = "cardio"
	BlockCore      BlockType = "core"
)

// WorkoutBlock - ordered group of exercises with a shared purpose
type WorkoutBlock struct {
	Name           string            `json:"name"`
	Type           BlockType         `json:"type"`
	Purpose        string            `json:"purpose"`
	Exercises      []RoutineExercise `json:"exercises"`
	EstimatedMin   int               `json:"estimated_min"`
	OrderInWorkout int               `json:"order_in_workout"`
	Reasons        []string          `json:"reasons,omitempty"` // customization reasons
}

// ProtocolExercise - a light mobility/activation/stretch movement
// used inside warmup and cooldown phases.
type ProtocolExercise struct {
	Name        string        `json:"name"`
	Muscles     []MuscleGroup `json:"muscles,omitempty"`
	DurationSec int           `json:"duration_sec"`
	Instruction string        `json:"instruction,omitempty"`
}

// WarmupPhase - one time-boxed phase of the warmup protocol
type WarmupPhase struct {
	Name        string             `json:"name"` // "Activación General"
	DurationMin int                `json:"duration_min"`
	Exercises   []ProtocolExercise `json:"exercises"`
	Instruction string             `json:"instruction,omitempty"`
	Reason      string             `json:"reason,omitempty"`
}

// Warmup - full preparatory protocol
type Warmup struct {
	DurationMin           int           `json:"duration_min"`
	Phases                []WarmupPhase `json:"phases"`
	PersonalizationReason string        `json:"personalization_reason,omitempty"`
	SpecialConsiderations []string      `json:"special_considerations"`
}

// CooldownPhase - one time-boxed phase of the recovery protocol
type CooldownPhase struct {
	Name        string             `json:"name"` // "Estiramientos"
	DurationMin int                `json:"duration_min"`
	Exercises   []ProtocolExercise `json:"exercises"`
	Instruction string             `json:"instruction,omitempty"`
	Reason      string             `json:"reason,omitempty"`
}

// Cooldown - full recovery protocol
type Cooldown struct {
	DurationMin           int             `json:"duration_min"`
	Phases                []CooldownPhase `json:"phases"`
	PersonalizationReason string          `json:"personalization_reason,omitempty"`
	RecoveryTips          []string        `json:"recovery_tips"`
}

// VolumeClassification - classification of total session volume
type VolumeClassification string

const (
	VolumeLow      VolumeClassification = "low"
	VolumeModerate VolumeClassification = "moderate"
	VolumeHigh     VolumeClassification = "high"
)

// TrainingVolume - aggregate work of a session
type TrainingVolume struct {
	TotalSets       int                  `json:"total_sets"`
	TotalReps       int                  `json:"total_reps"` // midpoint of rep ranges
	WorkTimeMin     int                  `json:"work_time_min"`
	RestTimeMin     int                  `json:"rest_time_min"`
	SetsPerMuscle   map[MuscleGroup]int  `json:"sets_per_muscle"`
	Classification  VolumeClassification `json:"classification"`
	Recommendations []string             `json:"recommendations,omitempty"` // emitted when outside the expected band
}

// NotePriority - priority of a personalization note
type NotePriority int

const (
	PriorityLow NotePriority = iota + 1
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

// PersonalizationNote - human-readable note about an applied adjustment
type PersonalizationNote struct {
	Category string       `json:"category"` // "Seguridad", "Equipamiento", "Duración"
	Note     string       `json:"note"`
	Reason   string       `json:"reason,omitempty"`
	Priority NotePriority `json:"priority"`
}

// AdaptationSummary - what the engine changed and why, grouped
type AdaptationSummary struct {
	MajorAdaptations         []string `json:"major_adaptations"`
	SafetyModifications      []string `json:"safety_modifications"`
	PreferenceAccommodations []string `json:"preference_accommodations"`
}

// Metadata - machine-readable summary of the customization pass
type Metadata struct {
	PersonalizationScore float64  `json:"personalization_score"` // 0-1
	AppliedRules         []string `json:"applied_rules"`
	SafetyAdaptations    int      `json:"safety_adaptations"`
	PreferenceAdaptions  int      `json:"preference_adaptations"`
	ConstraintAdaptions  int      `json:"constraint_adaptations"`
	UnresolvedLimits     []string `json:"unresolved_limitations,omitempty"`
}

// SafetySeverity - severity of a safety note
type SafetySeverity string

const (
	SafetyInfo     SafetySeverity = "info"
	SafetyWarning  SafetySeverity = "warning"
	SafetyCritical SafetySeverity = "critical"
)

// SafetyNote - one fired safety rule.
// Critical notes always carry at least one warning sign.
type SafetyNote struct {
	Category           string         `json:"category"`
	Consideration      string         `json:"consideration"`
	Severity           SafetySeverity `json:"severity"`
	Precautions        []string       `json:"precautions,omitempty"`
	WarningSignsToStop []string       `json:"warning_signs_to_stop,omitempty"`
}

// ProgressionStrategy - resolved multi-week strategy
type ProgressionStrategy string

const (
	StrategyLinear     ProgressionStrategy = "linear"
	StrategyBlock      ProgressionStrategy = "block"
	StrategyPeriodized ProgressionStrategy = "periodized"
)

// ProgressionWeek - one week of the progression schedule
type ProgressionWeek struct {
	WeekNumber  int               `json:"week_number"`
	Focus       string            `json:"focus"`
	IsDeload    bool              `json:"is_deload"`
	Adjustments map[string]string `json:"adjustments"` // "carga" -> "+2.5%"
	Adaptations []string          `json:"adaptations"` // expected physiological adaptations
}

// Milestone - a named checkpoint within a progression or program
type Milestone struct {
	Name            string    `json:"name"`
	TargetWeek      int       `json:"target_week,omitempty"`
	TargetDate      time.Time `json:"target_date,omitempty"`
	Metric          string    `json:"metric,omitempty"`
	TargetValue     string    `json:"target_value,omitempty"`
	SuccessCriteria []string  `json:"success_criteria"`
}

// ProgressionPlan - multi-week schedule of parameter adjustments
type ProgressionPlan struct {
	Strategy   ProgressionStrategy `json:"strategy"`
	TotalWeeks int                 `json:"total_weeks"`
	Weeks      []ProgressionWeek   `json:"weeks"`
	Milestones []Milestone         `json:"milestones"`
	Notes      []string            `json:"notes,omitempty"`
}

// CustomizedRoutine - primary output of the engine
type CustomizedRoutine struct {
	RoutineID    string                `json:"routine_id"`
	UserID       string                `json:"user_id"`
	Name         string                `json:"name"`
	Description  string                `json:"description"`
	CreatedAt    time.Time             `json:"created_at"`
	DurationMin  int                   `json:"duration_min"`
	Warmup       Warmup                `json:"warmup"`
	Blocks       []WorkoutBlock        `json:"blocks"`
	Cooldown     Cooldown              `json:"cooldown"`
	Volume       TrainingVolume        `json:"volume"`
	Progression  ProgressionPlan       `json:"progression"`
	SafetyNotes  []SafetyNote          `json:"safety_notes"`
	Metadata     Metadata              `json:"metadata"`
	Notes        []PersonalizationNote `json:"notes"`
	Adaptations  AdaptationSummary     `json:"adaptations"`
}

// AllExercises returns the routine's main-work exercises in order
func (r *CustomizedRoutine) AllExercises() []RoutineExercise {
	var out []RoutineExercise
	for _, b := range r.Blocks {
		out = append(out, b.Exercises...)
	}
	return out
}
