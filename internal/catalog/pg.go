package catalog

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"routinegen/internal/models"
)

// PgStore loads the exercise catalog from PostgreSQL.
type PgStore struct {
	db *sql.DB
}

// NewPgStore creates a catalog store over an open connection
func NewPgStore(db *sql.DB) *PgStore {
	return &PgStore{db: db}
}

// OpenPg opens a PostgreSQL connection and verifies it
func OpenPg(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// Load reads every exercise and contraindication row into a Catalog
func (s *PgStore) Load() (*Catalog, error) {
	exercises, err := s.loadExercises()
	if err != nil {
		return nil, err
	}
	contras, err := s.loadContraindications()
	if err != nil {
		return nil, err
	}
	if len(exercises) == 0 {
		return nil, fmt.Errorf("catalog table is empty")
	}
	return New(exercises, contras), nil
}

func (s *PgStore) loadExercises() ([]models.Exercise, error) {
	rows, err := s.db.Query(`
		SELECT id, name, COALESCE(name_en, ''), COALESCE(description, ''),
		       COALESCE(instructions, ''), primary_muscles, secondary_muscles,
		       equipment, movement_type, movement_patterns, exercise_type,
		       difficulty, is_compound, high_impact, requires_spotter
		FROM public.exercises
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer rows.Close()

	var exercises []models.Exercise
	for rows.Next() {
		var e models.Exercise
		var primary, secondary, equipment, patterns []string
		if err := rows.Scan(&e.ID, &e.Name, &e.NameEn, &e.Description,
			&e.Instructions, pq.Array(&primary), pq.Array(&secondary),
			pq.Array(&equipment), &e.MovementType, pq.Array(&patterns),
			&e.Type, &e.Difficulty, &e.IsCompound, &e.HighImpact,
			&e.RequiresSpotter); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		for _, m := range primary {
			e.PrimaryMuscles = append(e.PrimaryMuscles, models.MuscleGroup(m))
		}
		for _, m := range secondary {
			e.SecondaryMuscles = append(e.SecondaryMuscles, models.MuscleGroup(m))
		}
		for _, eq := range equipment {
			e.Equipment = append(e.Equipment, models.EquipmentType(eq))
		}
		e.MovementPatterns = patterns
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

func (s *PgStore) loadContraindications() ([]models.Contraindication, error) {
	rows, err := s.db.Query(`
		SELECT exercise_id, body_zone, severity, COALESCE(notes, '')
		FROM public.exercise_contraindications
		ORDER BY exercise_id, body_zone`)
	if err != nil {
		return nil, fmt.Errorf("query contraindications: %w", err)
	}
	defer rows.Close()

	var contras []models.Contraindication
	for rows.Next() {
		var c models.Contraindication
		if err := rows.Scan(&c.ExerciseID, &c.BodyZone, &c.Severity, &c.Notes); err != nil {
			return nil, fmt.Errorf("scan contraindication: %w", err)
		}
		contras = append(contras, c)
	}
	return contras, rows.Err()
}
