package catalog

import "routinegen/internal/models"

// Seed returns the built-in exercise catalog. It is used when no catalog
// directory or database is configured, and by tests.
func Seed() *Catalog {
	return New(seedExercises(), seedContraindications())
}

func seedExercises() []models.Exercise {
	return []models.Exercise{
		// Pecho
		{
			ID:               "ex-press-banca-barra",
			Name:             "Press de Banca con Barra",
			NameEn:           "Barbell Bench Press",
			PrimaryMuscles:   []models.MuscleGroup{models.MusclePecho},
			SecondaryMuscles: []models.MuscleGroup{models.MuscleTriceps, models.MuscleHombros},
			Equipment:        []models.EquipmentType{models.EquipBarra, models.EquipBanco},
			MovementType:     models.MovementPush,
			MovementPatterns: []string{"Presión horizontal"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyIntermediate,
			IsCompound:       true,
			RequiresSpotter:  true,
		},
		{
			ID:               "ex-press-banca-mancuernas",
			Name:             "Press de Banca con Mancuernas",
			NameEn:           "Dumbbell Bench Press",
			PrimaryMuscles:   []models.MuscleGroup{models.MusclePecho},
			SecondaryMuscles: []models.MuscleGroup{models.MuscleTriceps, models.MuscleHombros},
			Equipment:        []models.EquipmentType{models.EquipMancuernas, models.EquipBanco},
			MovementType:     models.MovementPush,
			MovementPatterns: []string{"Presión horizontal"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyIntermediate,
			IsCompound:       true,
		},
		{
			ID:               "ex-aperturas-mancuernas",
			Name:             "Aperturas con Mancuernas",
			NameEn:           "Dumbbell Fly",
			PrimaryMuscles:   []models.MuscleGroup{models.MusclePecho},
			Equipment:        []models.EquipmentType{models.EquipMancuernas, models.EquipBanco},
			MovementType:     models.MovementPush,
			MovementPatterns: []string{"Apertura horizontal"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyIntermediate,
		},
		{
			ID:               "ex-flexiones",
			Name:             "Flexiones",
			NameEn:           "Push-ups",
			PrimaryMuscles:   []models.MuscleGroup{models.MusclePecho},
			SecondaryMuscles: []models.MuscleGroup{models.MuscleTriceps, models.MuscleCore},
			Equipment:        []models.EquipmentType{models.EquipPesoCorporal},
			MovementType:     models.MovementPush,
			MovementPatterns: []string{"Presión horizontal"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyBeginner,
			IsCompound:       true,
		},
		{
			ID:               "ex-flexiones-inclinadas",
			Name:             "Flexiones Inclinadas en Silla",
			NameEn:           "Incline Push-ups",
			PrimaryMuscles:   []models.MuscleGroup{models.MusclePecho},
			SecondaryMuscles: []models.MuscleGroup{models.MuscleTriceps},
			Equipment:        []models.EquipmentType{models.EquipPesoCorporal, models.EquipSilla},
			MovementType:     models.MovementPush,
			MovementPatterns: []string{"Presión horizontal"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyBeginner,
			IsCompound:       true,
		},

		// Espalda
		{
			ID:               "ex-dominadas",
			Name:             "Dominadas",
			NameEn:           "Pull-ups",
			PrimaryMuscles:   []models.MuscleGroup{models.MuscleEspalda},
			SecondaryMuscles: []models.MuscleGroup{models.MuscleBiceps},
			Equipment:        []models.EquipmentType{models.EquipPesoCorporal, models.EquipBarra},
			MovementType:     models.MovementPull,
			MovementPatterns: []string{"Tracción vertical"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyAdvanced,
			IsCompound:       true,
		},
		{
			ID:               "ex-remo-barra",
			Name:             "Remo con Barra",
			NameEn:           "Barbell Row",
			PrimaryMuscles:   []models.MuscleGroup{models.MuscleEspalda},
			SecondaryMuscles: []models.MuscleGroup{models.MuscleBiceps},
			Equipment:        []models.EquipmentType{models.EquipBarra},
			MovementType:     models.MovementPull,
			MovementPatterns: []string{"Tracción horizontal"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyIntermediate,
			IsCompound:       true,
		},
		{
			ID:               "ex-remo-mancuerna",
			Name:             "Remo con Mancuerna a una Mano",
			NameEn:           "One-arm Dumbbell Row",
			PrimaryMuscles:   []models.MuscleGroup{models.MuscleEspalda},
			SecondaryMuscles: []models.MuscleGroup{models.MuscleBiceps},
			Equipment:        []models.EquipmentType{models.EquipMancuernas, models.EquipBanco},
			MovementType:     models.MovementPull,
			MovementPatterns: []string{"Tracción horizontal"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyBeginner,
			IsCompound:       true,
		},
		{
			ID:               "ex-jalon-pecho",
			Name:             "Jalón al Pecho",
			NameEn:           "Lat Pulldown",
			PrimaryMuscles:   []models.MuscleGroup{models.MuscleEspalda},
			SecondaryMuscles: []models.MuscleGroup{models.MuscleBiceps},
			Equipment:        []models.EquipmentType{models.EquipPolea},
			MovementType:     models.MovementPull,
			MovementPatterns: []string{"Tracción vertical"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyBeginner,
			IsCompound:       true,
		},
		{
			ID:               "ex-superman",
			Name:             "Superman",
			NameEn:           "Superman Hold",
			PrimaryMuscles:   []models.MuscleGroup{models.MuscleEspalda},
			SecondaryMuscles: []models.MuscleGroup{models.MuscleGluteos},
			Equipment:        []models.EquipmentType{models.EquipPesoCorporal},
			MovementType:     models.MovementCore,
			MovementPatterns: []string{"Extensión de columna"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyBeginner,
		},

		// Piernas y glúteos
		{
			ID:               "ex-sentadilla-barra",
			Name:             "Sentadilla con Barra",
			NameEn:           "Barbell Back Squat",
			PrimaryMuscles:   []models.MuscleGroup{models.MusclePiernas},
			SecondaryMuscles: []models.MuscleGroup{models.MuscleGluteos, models.MuscleCore},
			Equipment:        []models.EquipmentType{models.EquipBarra},
			MovementType:     models.MovementSquat,
			MovementPatterns: []string{"Sentadilla"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyIntermediate,
			IsCompound:       true,
			RequiresSpotter:  true,
		},
		{
			ID:               "ex-sentadillas",
			Name:             "Sentadillas",
			NameEn:           "Bodyweight Squat",
			PrimaryMuscles:   []models.MuscleGroup{models.MusclePiernas},
			SecondaryMuscles: []models.MuscleGroup{models.MuscleGluteos},
			Equipment:        []models.EquipmentType{models.EquipPesoCorporal},
			MovementType:     models.MovementSquat,
			MovementPatterns: []string{"Sentadilla"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyBeginner,
			IsCompound:       true,
		},
		{
			ID:               "ex-sentadilla-silla",
			Name:             "Sentadilla a Silla",
			NameEn:           "Chair Squat",
			PrimaryMuscles:   []models.MuscleGroup{models.MusclePiernas},
			SecondaryMuscles: []models.MuscleGroup{models.MuscleGluteos},
			Equipment:        []models.EquipmentType{models.EquipPesoCorporal, models.EquipSilla},
			MovementType:     models.MovementSquat,
			MovementPatterns: []string{"Sentadilla"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyBeginner,
			IsCompound:       true,
		},
		{
			ID:               "ex-peso-muerto",
			Name:             "Peso Muerto con Barra",
			NameEn:           "Barbell Deadlift",
			PrimaryMuscles:   []models.MuscleGroup{models.MusclePiernas, models.MuscleEspalda},
			SecondaryMuscles: []models.MuscleGroup{models.MuscleGluteos, models.MuscleCore},
			Equipment:        []models.EquipmentType{models.EquipBarra},
			MovementType:     models.MovementHinge,
			MovementPatterns: []string{"Bisagra de cadera"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyAdvanced,
			IsCompound:       true,
		},
		{
			ID:               "ex-peso-muerto-rumano",
			Name:             "Peso Muerto Rumano con Mancuernas",
			NameEn:           "Dumbbell Romanian Deadlift",
			PrimaryMuscles:   []models.MuscleGroup{models.MusclePiernas},
			SecondaryMuscles: []models.MuscleGroup{models.MuscleGluteos},
			Equipment:        []models.EquipmentType{models.EquipMancuernas},
			MovementType:     models.MovementHinge,
			MovementPatterns: []string{"Bisagra de cadera"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyIntermediate,
			IsCompound:       true,
		},
		{
			ID:               "ex-zancadas",
			Name:             "Zancadas",
			NameEn:           "Lunges",
			PrimaryMuscles:   []models.MuscleGroup{models.MusclePiernas},
			SecondaryMuscles: []models.MuscleGroup{models.MuscleGluteos},
			Equipment:        []models.EquipmentType{models.EquipPesoCorporal},
			MovementType:     models.MovementLunge,
			MovementPatterns: []string{"Zancada"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyBeginner,
			IsCompound:       true,
		},
		{
			ID:               "ex-prensa-piernas",
			Name:             "Prensa de Piernas",
			NameEn:           "Leg Press",
			PrimaryMuscles:   []models.MuscleGroup{models.MusclePiernas},
			SecondaryMuscles: []models.MuscleGroup{models.MuscleGluteos},
			Equipment:        []models.EquipmentType{models.EquipMaquina},
			MovementType:     models.MovementSquat,
			MovementPatterns: []string{"Sentadilla"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyBeginner,
			IsCompound:       true,
		},
		{
			ID:               "ex-puente-gluteos",
			Name:             "Puente de Glúteos",
			NameEn:           "Glute Bridge",
			PrimaryMuscles:   []models.MuscleGroup{models.MuscleGluteos},
			SecondaryMuscles: []models.MuscleGroup{models.MusclePiernas, models.MuscleCore},
			Equipment:        []models.EquipmentType{models.EquipPesoCorporal},
			MovementType:     models.MovementHinge,
			MovementPatterns: []string{"Bisagra de cadera"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyBeginner,
		},
		{
			ID:             "ex-elevacion-pantorrillas",
			Name:           "Elevación de Pantorrillas",
			NameEn:         "Calf Raises",
			PrimaryMuscles: []models.MuscleGroup{models.MusclePantorrillas},
			Equipment:      []models.EquipmentType{models.EquipPesoCorporal},
			MovementType:   models.MovementPush,
			Type:           models.TypeStrength,
			Difficulty:     models.DifficultyBeginner,
		},

		// Hombros
		{
			ID:               "ex-press-militar",
			Name:             "Press Militar con Barra",
			NameEn:           "Barbell Overhead Press",
			PrimaryMuscles:   []models.MuscleGroup{models.MuscleHombros},
			SecondaryMuscles: []models.MuscleGroup{models.MuscleTriceps, models.MuscleCore},
			Equipment:        []models.EquipmentType{models.EquipBarra},
			MovementType:     models.MovementPush,
			MovementPatterns: []string{"Presión en hombros", "Presión vertical"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyIntermediate,
			IsCompound:       true,
		},
		{
			ID:               "ex-press-hombros-mancuernas",
			Name:             "Press de Hombros con Mancuernas",
			NameEn:           "Dumbbell Shoulder Press",
			PrimaryMuscles:   []models.MuscleGroup{models.MuscleHombros},
			SecondaryMuscles: []models.MuscleGroup{models.MuscleTriceps},
			Equipment:        []models.EquipmentType{models.EquipMancuernas},
			MovementType:     models.MovementPush,
			MovementPatterns: []string{"Presión en hombros", "Presión vertical"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyBeginner,
			IsCompound:       true,
		},
		{
			ID:               "ex-elevaciones-laterales",
			Name:             "Elevaciones Laterales",
			NameEn:           "Lateral Raises",
			PrimaryMuscles:   []models.MuscleGroup{models.MuscleHombros},
			Equipment:        []models.EquipmentType{models.EquipMancuernas},
			MovementType:     models.MovementPush,
			MovementPatterns: []string{"Elevación lateral"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyBeginner,
		},

		// Bíceps y tríceps
		{
			ID:               "ex-curl-biceps",
			Name:             "Curl de Bíceps con Mancuernas",
			NameEn:           "Dumbbell Biceps Curl",
			PrimaryMuscles:   []models.MuscleGroup{models.MuscleBiceps},
			Equipment:        []models.EquipmentType{models.EquipMancuernas},
			MovementType:     models.MovementPull,
			MovementPatterns: []string{"Flexión de codo"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyBeginner,
		},
		{
			ID:               "ex-curl-banda",
			Name:             "Curl de Bíceps con Banda",
			NameEn:           "Band Biceps Curl",
			PrimaryMuscles:   []models.MuscleGroup{models.MuscleBiceps},
			Equipment:        []models.EquipmentType{models.EquipBanda},
			MovementType:     models.MovementPull,
			MovementPatterns: []string{"Flexión de codo"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyBeginner,
		},
		{
			ID:               "ex-fondos-silla",
			Name:             "Fondos en Silla",
			NameEn:           "Chair Dips",
			PrimaryMuscles:   []models.MuscleGroup{models.MuscleTriceps},
			SecondaryMuscles: []models.MuscleGroup{models.MusclePecho, models.MuscleHombros},
			Equipment:        []models.EquipmentType{models.EquipPesoCorporal, models.EquipSilla},
			MovementType:     models.MovementPush,
			MovementPatterns: []string{"Extensión de codo"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyBeginner,
			IsCompound:       true,
		},
		{
			ID:               "ex-extension-triceps",
			Name:             "Extensión de Tríceps en Polea",
			NameEn:           "Cable Triceps Pushdown",
			PrimaryMuscles:   []models.MuscleGroup{models.MuscleTriceps},
			Equipment:        []models.EquipmentType{models.EquipPolea},
			MovementType:     models.MovementPush,
			MovementPatterns: []string{"Extensión de codo"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyBeginner,
		},

		// Core
		{
			ID:               "ex-plancha",
			Name:             "Plancha",
			NameEn:           "Plank",
			PrimaryMuscles:   []models.MuscleGroup{models.MuscleCore},
			Equipment:        []models.EquipmentType{models.EquipPesoCorporal},
			MovementType:     models.MovementCore,
			MovementPatterns: []string{"Estabilización"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyBeginner,
		},
		{
			ID:               "ex-crunch",
			Name:             "Crunch Abdominal",
			NameEn:           "Crunch",
			PrimaryMuscles:   []models.MuscleGroup{models.MuscleCore},
			Equipment:        []models.EquipmentType{models.EquipPesoCorporal, models.EquipEsterilla},
			MovementType:     models.MovementCore,
			MovementPatterns: []string{"Flexión de tronco"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyBeginner,
		},
		{
			ID:               "ex-giro-ruso",
			Name:             "Giro Ruso",
			NameEn:           "Russian Twist",
			PrimaryMuscles:   []models.MuscleGroup{models.MuscleCore},
			Equipment:        []models.EquipmentType{models.EquipPesoCorporal},
			MovementType:     models.MovementRotation,
			MovementPatterns: []string{"Rotación de tronco"},
			Type:             models.TypeStrength,
			Difficulty:       models.DifficultyIntermediate,
		},

		// Cardio
		{
			ID:               "ex-burpees",
			Name:             "Burpees",
			NameEn:           "Burpees",
			PrimaryMuscles:   []models.MuscleGroup{models.MuscleCardioSys},
			SecondaryMuscles: []models.MuscleGroup{models.MusclePiernas, models.MusclePecho},
			Equipment:        []models.EquipmentType{models.EquipPesoCorporal},
			MovementType:     models.MovementCardio,
			Type:             models.TypeCardio,
			Difficulty:       models.DifficultyAdvanced,
			IsCompound:       true,
			HighImpact:       true,
		},
		{
			ID:               "ex-jumping-jacks",
			Name:             "Jumping Jacks",
			NameEn:           "Jumping Jacks",
			PrimaryMuscles:   []models.MuscleGroup{models.MuscleCardioSys},
			Equipment:        []models.EquipmentType{models.EquipPesoCorporal},
			MovementType:     models.MovementCardio,
			Type:             models.TypeCardio,
			Difficulty:       models.DifficultyBeginner,
			HighImpact:       true,
		},
		{
			ID:               "ex-marcha-sitio",
			Name:             "Marcha en el Sitio",
			NameEn:           "Marching in Place",
			PrimaryMuscles:   []models.MuscleGroup{models.MuscleCardioSys},
			Equipment:        []models.EquipmentType{models.EquipPesoCorporal},
			MovementType:     models.MovementCardio,
			Type:             models.TypeCardio,
			Difficulty:       models.DifficultyBeginner,
		},
		{
			ID:               "ex-swing-kettlebell",
			Name:             "Swing con Kettlebell",
			NameEn:           "Kettlebell Swing",
			PrimaryMuscles:   []models.MuscleGroup{models.MuscleGluteos, models.MuscleCardioSys},
			SecondaryMuscles: []models.MuscleGroup{models.MusclePiernas, models.MuscleCore},
			Equipment:        []models.EquipmentType{models.EquipKettlebell},
			MovementType:     models.MovementHinge,
			MovementPatterns: []string{"Bisagra de cadera"},
			Type:             models.TypeCardio,
			Difficulty:       models.DifficultyIntermediate,
			IsCompound:       true,
		},

		// Movilidad y estiramiento
		{
			ID:             "ex-gato-camello",
			Name:           "Gato-Camello",
			NameEn:         "Cat-Cow Stretch",
			PrimaryMuscles: []models.MuscleGroup{models.MuscleEspalda, models.MuscleCore},
			Equipment:      []models.EquipmentType{models.EquipEsterilla},
			MovementType:   models.MovementStretch,
			Type:           models.TypeMobility,
			Difficulty:     models.DifficultyBeginner,
		},
		{
			ID:             "ex-estiramiento-isquios",
			Name:           "Estiramiento de Isquiotibiales",
			NameEn:         "Hamstring Stretch",
			PrimaryMuscles: []models.MuscleGroup{models.MusclePiernas},
			Equipment:      []models.EquipmentType{models.EquipPesoCorporal},
			MovementType:   models.MovementStretch,
			Type:           models.TypeFlexibility,
			Difficulty:     models.DifficultyBeginner,
		},
	}
}

func seedContraindications() []models.Contraindication {
	return []models.Contraindication{
		{ExerciseID: "ex-sentadilla-barra", BodyZone: models.ZoneKnee, Severity: models.ContraRelative, Notes: "Carga axial sobre la rodilla"},
		{ExerciseID: "ex-sentadilla-barra", BodyZone: models.ZoneLowerBack, Severity: models.ContraRelative, Notes: "Compresión lumbar bajo carga"},
		{ExerciseID: "ex-peso-muerto", BodyZone: models.ZoneLowerBack, Severity: models.ContraAbsolute, Notes: "No recomendado con lesión lumbar activa"},
		{ExerciseID: "ex-peso-muerto-rumano", BodyZone: models.ZoneLowerBack, Severity: models.ContraRelative},
		{ExerciseID: "ex-press-militar", BodyZone: models.ZoneShoulder, Severity: models.ContraRelative, Notes: "Presión vertical sobre el manguito rotador"},
		{ExerciseID: "ex-press-hombros-mancuernas", BodyZone: models.ZoneShoulder, Severity: models.ContraRelative},
		{ExerciseID: "ex-dominadas", BodyZone: models.ZoneShoulder, Severity: models.ContraRelative},
		{ExerciseID: "ex-dominadas", BodyZone: models.ZoneElbow, Severity: models.ContraRelative},
		{ExerciseID: "ex-burpees", BodyZone: models.ZoneHeart, Severity: models.ContraRelative, Notes: "Alta demanda cardiovascular"},
		{ExerciseID: "ex-burpees", BodyZone: models.ZoneKnee, Severity: models.ContraRelative, Notes: "Impacto repetido"},
		{ExerciseID: "ex-jumping-jacks", BodyZone: models.ZoneKnee, Severity: models.ContraRelative, Notes: "Impacto repetido"},
		{ExerciseID: "ex-zancadas", BodyZone: models.ZoneKnee, Severity: models.ContraRelative},
		{ExerciseID: "ex-flexiones", BodyZone: models.ZoneWrist, Severity: models.ContraRelative},
		{ExerciseID: "ex-fondos-silla", BodyZone: models.ZoneShoulder, Severity: models.ContraRelative},
		{ExerciseID: "ex-giro-ruso", BodyZone: models.ZoneLowerBack, Severity: models.ContraRelative},
		{ExerciseID: "ex-crunch", BodyZone: models.ZoneNeck, Severity: models.ContraRelative},
	}
}
