package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"routinegen/internal/models"
)

type catalogFile struct {
	Exercises         []models.Exercise         `json:"exercises"`
	Contraindications []models.Contraindication `json:"contraindications,omitempty"`
}

// LoadDir reads every *.json file under dir and merges them into one
// catalog. Files are visited in name order so repeated loads produce
// the same catalog.
func LoadDir(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read catalog dir %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var exercises []models.Exercise
	var contras []models.Contraindication
	for _, name := range names {
		file, err := loadCatalogFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, file.Exercises...)
		contras = append(contras, file.Contraindications...)
	}
	if len(exercises) == 0 {
		return nil, fmt.Errorf("catalog dir %s: no exercises found", dir)
	}
	return New(exercises, contras), nil
}

func loadCatalogFile(path string) (*catalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", path, err)
	}
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}
	for i := range file.Exercises {
		if err := validateExercise(&file.Exercises[i]); err != nil {
			return nil, fmt.Errorf("catalog file %s: %w", path, err)
		}
	}
	return &file, nil
}

func validateExercise(ex *models.Exercise) error {
	if ex.ID == "" {
		return fmt.Errorf("exercise %q: missing id", ex.Name)
	}
	if ex.Name == "" {
		return fmt.Errorf("exercise %s: missing name", ex.ID)
	}
	if len(ex.PrimaryMuscles) == 0 {
		return fmt.Errorf("exercise %s: no primary muscles", ex.Name)
	}
	if ex.Difficulty < models.DifficultyBeginner || ex.Difficulty > models.DifficultyAdvanced {
		return fmt.Errorf("exercise %s: difficulty %d out of range", ex.Name, ex.Difficulty)
	}
	return nil
}
