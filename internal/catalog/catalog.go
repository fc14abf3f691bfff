// Package catalog provides read-only access to the exercise catalog.
// The engine never mutates it; a Catalog is safe for concurrent readers.
package catalog

import (
	"strings"

	"routinegen/internal/models"
)

// Catalog is an in-memory, read-only collection of exercise records
// plus their contraindications.
type Catalog struct {
	exercises         []models.Exercise
	byNormalizedName  map[string]int
	contraindications map[string][]models.Contraindication
}

// New builds a catalog from exercise and contraindication records
func New(exercises []models.Exercise, contras []models.Contraindication) *Catalog {
	c := &Catalog{
		exercises:         append([]models.Exercise(nil), exercises...),
		byNormalizedName:  make(map[string]int, len(exercises)),
		contraindications: make(map[string][]models.Contraindication),
	}
	for i, ex := range c.exercises {
		c.byNormalizedName[Normalize(ex.Name)] = i
		if ex.NameEn != "" {
			c.byNormalizedName[Normalize(ex.NameEn)] = i
		}
	}
	for _, contra := range contras {
		c.contraindications[contra.ExerciseID] = append(c.contraindications[contra.ExerciseID], contra)
	}
	return c
}

// Exercises returns every record. Callers must not modify the slice.
func (c *Catalog) Exercises() []models.Exercise {
	return c.exercises
}

// Len returns the number of catalog entries
func (c *Catalog) Len() int {
	return len(c.exercises)
}

// FindByName resolves a name to an exercise record.
// Matching is case and accent insensitive: exact match first,
// then containment in either direction.
func (c *Catalog) FindByName(name string) (*models.Exercise, bool) {
	norm := Normalize(name)
	if norm == "" {
		return nil, false
	}
	if i, ok := c.byNormalizedName[norm]; ok {
		return &c.exercises[i], true
	}
	for i := range c.exercises {
		exNorm := Normalize(c.exercises[i].Name)
		if strings.Contains(exNorm, norm) || strings.Contains(norm, exNorm) {
			return &c.exercises[i], true
		}
	}
	return nil, false
}

// ByMuscle returns exercises whose primary muscles include muscle
func (c *Catalog) ByMuscle(muscle models.MuscleGroup) []models.Exercise {
	var out []models.Exercise
	for _, ex := range c.exercises {
		if ex.TargetsMuscle(muscle) {
			out = append(out, ex)
		}
	}
	return out
}

// Contraindications returns the contraindications for an exercise ID
func (c *Catalog) Contraindications(exerciseID string) []models.Contraindication {
	return c.contraindications[exerciseID]
}

// ContraindicatedFor reports whether the exercise is contraindicated for
// any of the given body zones. Relative contraindications only block when
// the zone carries a severe limitation, which the caller resolves; here
// absolute entries always block and relative entries block when strict.
func (c *Catalog) ContraindicatedFor(exerciseID string, zones []models.BodyZone, strict bool) bool {
	for _, contra := range c.contraindications[exerciseID] {
		for _, zone := range zones {
			if contra.BodyZone != zone {
				continue
			}
			if contra.Severity == models.ContraAbsolute {
				return true
			}
			if strict && contra.Severity == models.ContraRelative {
				return true
			}
		}
	}
	return false
}

// accent folding table for Spanish text
var accentFold = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ü", "u", "Ñ", "n",
)

// Normalize lowercases and strips Spanish diacritics.
// "Presión en hombros" -> "presion en hombros"
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(accentFold.Replace(s)))
}

// MatchesLabel reports whether two free-text Spanish labels refer to the
// same thing, ignoring case, accents and partial containment.
func MatchesLabel(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	return na == nb || strings.Contains(na, nb) || strings.Contains(nb, na)
}
