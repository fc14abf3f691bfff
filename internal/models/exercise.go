package models

// MovementType - basic movement category
type MovementType string

const (
	MovementPush     MovementType = "push"     // presses, flexiones
	MovementPull     MovementType = "pull"     // rows, dominadas
	MovementSquat    MovementType = "squat"    // sentadillas
	MovementHinge    MovementType = "hinge"    // peso muerto, puente
	MovementLunge    MovementType = "lunge"    // zancadas
	MovementRotation MovementType = "rotation" // giros de tronco
	MovementCarry    MovementType = "carry"    // transportes
	MovementCore     MovementType = "core"     // estabilización
	MovementCardio   MovementType = "cardio"
	MovementStretch  MovementType = "stretch"
)

// ExerciseType - training modality of an exercise
type ExerciseType string

const (
	TypeStrength    ExerciseType = "strength"    // Fuerza
	TypeCardio      ExerciseType = "cardio"      // Cardio
	TypeFlexibility ExerciseType = "flexibility" // Flexibilidad
	TypeBalance     ExerciseType = "balance"     // Equilibrio
	TypeMobility    ExerciseType = "mobility"    // Movilidad
)

// MuscleGroup - target muscle group, Spanish display values
type MuscleGroup string

const (
	MusclePecho        MuscleGroup = "Pecho"
	MuscleEspalda      MuscleGroup = "Espalda"
	MusclePiernas      MuscleGroup = "Piernas"
	MuscleGluteos      MuscleGroup = "Glúteos"
	MuscleHombros      MuscleGroup = "Hombros"
	MuscleBiceps       MuscleGroup = "Bíceps"
	MuscleTriceps      MuscleGroup = "Tríceps"
	MuscleCore         MuscleGroup = "Core"
	MusclePantorrillas MuscleGroup = "Pantorrillas"
	MuscleCardioSys    MuscleGroup = "Sistema cardiovascular"
)

// EquipmentType - required equipment, Spanish display values
type EquipmentType string

const (
	EquipBarra        EquipmentType = "Barra"
	EquipMancuernas   EquipmentType = "Mancuernas"
	EquipMaquina      EquipmentType = "Máquina"
	EquipPolea        EquipmentType = "Polea"
	EquipPesoCorporal EquipmentType = "Peso Corporal"
	EquipBanda        EquipmentType = "Banda Elástica"
	EquipKettlebell   EquipmentType = "Kettlebell"
	EquipBanco        EquipmentType = "Banco"
	EquipSilla        EquipmentType = "Silla"
	EquipEsterilla    EquipmentType = "Esterilla"
)

// DifficultyLevel - difficulty tier of an exercise
type DifficultyLevel int

const (
	DifficultyBeginner     DifficultyLevel = 1 // Fácil
	DifficultyIntermediate DifficultyLevel = 2 // Medio
	DifficultyAdvanced     DifficultyLevel = 3 // Difícil
)

// NameEs returns the Spanish display name for a difficulty tier
func (d DifficultyLevel) NameEs() string {
	switch d {
	case DifficultyBeginner:
		return "Fácil"
	case DifficultyIntermediate:
		return "Medio"
	case DifficultyAdvanced:
		return "Difícil"
	default:
		return "Medio"
	}
}

// BodyZone - body zone for contraindications
type BodyZone string

const (
	ZoneLowerBack BodyZone = "lower_back" // zona lumbar
	ZoneKnee      BodyZone = "knee"       // rodillas
	ZoneShoulder  BodyZone = "shoulder"   // hombros
	ZoneWrist     BodyZone = "wrist"      // muñecas
	ZoneHip       BodyZone = "hip"        // cadera
	ZoneAnkle     BodyZone = "ankle"      // tobillos
	ZoneElbow     BodyZone = "elbow"      // codos
	ZoneNeck      BodyZone = "neck"       // cervicales
	ZoneHeart     BodyZone = "cardio"     // sistema cardiovascular
)

// ContraindicationSeverity - how strictly a contraindication applies
type ContraindicationSeverity string

const (
	ContraAbsolute ContraindicationSeverity = "absolute" // never program it
	ContraRelative ContraindicationSeverity = "relative" // only with care
)

// Contraindication links an exercise to a body zone it may aggravate
type Contraindication struct {
	ExerciseID string                   `json:"exercise_id"`
	BodyZone   BodyZone                 `json:"body_zone"`
	Severity   ContraindicationSeverity `json:"severity"`
	Notes      string                   `json:"notes,omitempty"`
}

// Exercise represents a read-only exercise record from the catalog
type Exercise struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`    // Spanish display name
	NameEn           string          `json:"name_en"` // English name, optional
	Description      string          `json:"description,omitempty"`
	Instructions     string          `json:"instructions,omitempty"`
	PrimaryMuscles   []MuscleGroup   `json:"primary_muscles"`
	SecondaryMuscles []MuscleGroup   `json:"secondary_muscles,omitempty"`
	Equipment        []EquipmentType `json:"equipment"` // all entries required
	MovementType     MovementType    `json:"movement_type"`
	MovementPatterns []string        `json:"movement_patterns,omitempty"` // Spanish labels, e.g. "Presión en hombros"
	Type             ExerciseType    `json:"type"`
	Difficulty       DifficultyLevel `json:"difficulty"`
	IsCompound       bool            `json:"is_compound"`
	HighImpact       bool            `json:"high_impact"`
	RequiresSpotter  bool            `json:"requires_spotter"`
}

// TargetsMuscle reports whether muscle is a primary target
func (e *Exercise) TargetsMuscle(muscle MuscleGroup) bool {
	for _, m := range e.PrimaryMuscles {
		if m == muscle {
			return true
		}
	}
	return false
}

// WorksMuscle reports whether muscle is a primary or secondary target
func (e *Exercise) WorksMuscle(muscle MuscleGroup) bool {
	if e.TargetsMuscle(muscle) {
		return true
	}
	for _, m := range e.SecondaryMuscles {
		if m == muscle {
			return true
		}
	}
	return false
}

// UsesEquipment reports whether the exercise requires equip
func (e *Exercise) UsesEquipment(equip EquipmentType) bool {
	for _, eq := range e.Equipment {
		if eq == equip {
			return true
		}
	}
	return false
}
