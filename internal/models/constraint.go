package models

// ConstraintSeverity - severity of a constraint
type ConstraintSeverity string

const (
	SeverityMild     ConstraintSeverity = "mild"
	SeverityModerate ConstraintSeverity = "moderate"
	SeveritySevere   ConstraintSeverity = "severe"
	SeverityAbsolute ConstraintSeverity = "absolute" // treated as severe for filtering
)

// PhysicalConstraint restricts movements or exercises for a body reason
type PhysicalConstraint struct {
	Description         string             `json:"description"`
	BodyZone            BodyZone           `json:"body_zone,omitempty"`
	AffectedMovements   []string           `json:"affected_movements,omitempty"` // Spanish pattern labels
	RestrictedExercises []string           `json:"restricted_exercises,omitempty"`
	Severity            ConstraintSeverity `json:"severity"`
}

// EquipmentConstraint narrows the equipment the plan may rely on
type EquipmentConstraint struct {
	AvailableEquipment   []EquipmentType    `json:"available_equipment,omitempty"`
	UnavailableEquipment []EquipmentType    `json:"unavailable_equipment,omitempty"`
	Severity             ConstraintSeverity `json:"severity"`
}

// TimeConstraint caps session duration
type TimeConstraint struct {
	MaxDurationMin       int                `json:"max_duration_min"`
	PreferredDurationMin int                `json:"preferred_duration_min,omitempty"`
	Severity             ConstraintSeverity `json:"severity"`
}

// SafetyConstraint prohibits movements outright
type SafetyConstraint struct {
	ProhibitedMovements []string           `json:"prohibited_movements,omitempty"` // Spanish pattern labels
	RestrictedExercises []string           `json:"restricted_exercises,omitempty"`
	MaxHeartRate        int                `json:"max_heart_rate,omitempty"`
	Severity            ConstraintSeverity `json:"severity"`
}

// PreferenceConstraint expresses dislikes strong enough to enforce
type PreferenceConstraint struct {
	DislikedExercises []string           `json:"disliked_exercises,omitempty"`
	Severity          ConstraintSeverity `json:"severity"`
}

// ConstraintSet groups all active constraints for a request or adaptation
type ConstraintSet struct {
	Physical   []PhysicalConstraint   `json:"physical,omitempty"`
	Equipment  []EquipmentConstraint  `json:"equipment,omitempty"`
	Time       []TimeConstraint       `json:"time,omitempty"`
	Safety     []SafetyConstraint     `json:"safety,omitempty"`
	Preference []PreferenceConstraint `json:"preference,omitempty"`
}

// IsEmpty reports whether no constraint is present
func (c *ConstraintSet) IsEmpty() bool {
	return len(c.Physical) == 0 && len(c.Equipment) == 0 &&
		len(c.Time) == 0 && len(c.Safety) == 0 && len(c.Preference) == 0
}

// RestrictedExerciseNames collects every restricted exercise name
// across physical, safety and preference constraints.
func (c *ConstraintSet) RestrictedExerciseNames() []string {
	var names []string
	for _, pc := range c.Physical {
		names = append(names, pc.RestrictedExercises...)
	}
	for _, sc := range c.Safety {
		names = append(names, sc.RestrictedExercises...)
	}
	for _, pr := range c.Preference {
		names = append(names, pr.DislikedExercises...)
	}
	return names
}

// RestrictedMovements collects every movement label the set forbids
func (c *ConstraintSet) RestrictedMovements() []string {
	var moves []string
	for _, pc := range c.Physical {
		moves = append(moves, pc.AffectedMovements...)
	}
	for _, sc := range c.Safety {
		moves = append(moves, sc.ProhibitedMovements...)
	}
	return moves
}
