package engine

import (
	"math/rand"

	"routinegen/internal/catalog"
	"routinegen/internal/models"
)

func testRng() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func allEquipment() []models.EquipmentType {
	return []models.EquipmentType{
		models.EquipBarra, models.EquipMancuernas, models.EquipMaquina,
		models.EquipPolea, models.EquipPesoCorporal, models.EquipBanda,
		models.EquipKettlebell, models.EquipBanco, models.EquipSilla,
		models.EquipEsterilla,
	}
}

func gymRequest(level models.ExperienceLevel) *models.CustomizationRequest {
	return &models.CustomizationRequest{
		Profile: models.UserProfile{
			UserID:     "user-1",
			Name:       "Lucía",
			Age:        30,
			Experience: level,
			Activity:   models.ActivityModerate,
		},
		Preferences: models.RoutinePreferences{
			PreferredDurationMin: 60,
			DaysPerWeek:          3,
			Intensity:            models.IntensityModerada,
		},
		Environment: models.EnvironmentConstraints{
			Location:           models.LocationGimnasio,
			AvailableEquipment: allEquipment(),
		},
		Priorities: models.DefaultPriorities(),
		Seed:       42,
	}
}

func homeRequest() *models.CustomizationRequest {
	req := gymRequest(models.ExpBeginner)
	req.Environment = models.EnvironmentConstraints{
		Location:           models.LocationCasa,
		AvailableEquipment: nil,
	}
	return req
}

func seedEngine() *Engine {
	return New(catalog.Seed())
}

func allRoutineExercises(r *models.CustomizedRoutine) []models.RoutineExercise {
	return r.AllExercises()
}
