package engine

import (
	"fmt"
	"math/rand"
	"sort"

	"routinegen/internal/models"
)

// volumeBand is the expected total working sets for an experience level
type volumeBand struct {
	min, max int
}

func bandFor(level models.ExperienceLevel) volumeBand {
	switch level {
	case models.ExpBeginner:
		return volumeBand{6, 10}
	case models.ExpIntermediate:
		return volumeBand{10, 15}
	default:
		return volumeBand{15, 20}
	}
}

// buildWorkout selects, orders and parameterizes the session's exercises.
// rng is only consulted to break exact score ties, so the same seed
// always yields the same workout.
func (e *Engine) buildWorkout(req *models.CustomizationRequest, scored []scoredExercise, rng *rand.Rand) ([]models.WorkoutBlock, models.TrainingVolume) {
	selected := e.selectExercises(req, scored, rng)
	ordered := orderForSession(selected)

	exercises := make([]models.RoutineExercise, 0, len(ordered))
	for _, s := range ordered {
		exercises = append(exercises, e.parameterize(&s, req))
	}

	enforceVolumeBand(exercises, bandFor(req.Profile.Experience))
	exercises = fitDuration(exercises, mainWorkBudgetMin(&req.Preferences))

	blocks := groupIntoBlocks(exercises, req.Preferences.PrefersSupersets)
	volume := computeVolume(exercises, req.Profile.Experience)
	return blocks, volume
}

// targetExerciseCount derives the session size from the preferred
// duration, capped by experience so the volume band stays reachable.
func targetExerciseCount(prefs *models.RoutinePreferences, level models.ExperienceLevel) int {
	d := prefs.PreferredDurationMin
	var count int
	switch {
	case d > 0 && d <= 20:
		count = 4
	case d <= 30 && d > 0:
		count = 5
	case d <= 45 && d > 0:
		count = 6
	case d <= 60 && d > 0:
		count = 7
	default:
		count = 8
	}
	limit := 8
	switch level {
	case models.ExpBeginner:
		limit = 5
	case models.ExpIntermediate:
		limit = 7
	}
	if count > limit {
		count = limit
	}
	return count
}

// selectExercises walks the focus muscles round-robin, taking the best
// remaining candidate for each. Ties on score are resolved with rng.
func (e *Engine) selectExercises(req *models.CustomizationRequest, scored []scoredExercise, rng *rand.Rand) []scoredExercise {
	target := targetExerciseCount(&req.Preferences, req.Profile.Experience)

	focus := req.Preferences.MuscleFocus
	if len(focus) == 0 {
		focus = defaultFocus(scored)
	}

	taken := make(map[string]bool)
	perMuscle := make(map[models.MuscleGroup]int)
	var selected []scoredExercise

	take := func(s scoredExercise) {
		taken[s.ID] = true
		for _, m := range s.PrimaryMuscles {
			perMuscle[m]++
		}
		selected = append(selected, s)
	}

	maxPerMuscle := 1
	for len(selected) < target {
		progress := false
		for _, muscle := range focus {
			if len(selected) >= target {
				break
			}
			if perMuscle[muscle] >= maxPerMuscle {
				continue
			}
			if s, ok := pickBest(scored, taken, rng, func(c *scoredExercise) bool {
				return c.TargetsMuscle(muscle)
			}); ok {
				take(s)
				progress = true
			}
		}
		if !progress {
			if maxPerMuscle < 3 {
				maxPerMuscle++
				continue
			}
			// focus exhausted, fill with the best of whatever remains
			s, ok := pickBest(scored, taken, rng, func(*scoredExercise) bool { return true })
			if !ok {
				break
			}
			take(s)
		}
	}
	return selected
}

// pickBest returns the highest-scoring untaken candidate matching accept.
// When several share the top score the rng chooses among them.
func pickBest(scored []scoredExercise, taken map[string]bool, rng *rand.Rand, accept func(*scoredExercise) bool) (scoredExercise, bool) {
	var ties []scoredExercise
	best := -1.0
	for i := range scored {
		c := &scored[i]
		if taken[c.ID] || !accept(c) {
			continue
		}
		if c.Score > best {
			best = c.Score
			ties = ties[:0]
		}
		if c.Score == best {
			ties = append(ties, *c)
		}
	}
	if len(ties) == 0 {
		return scoredExercise{}, false
	}
	if len(ties) == 1 {
		return ties[0], true
	}
	return ties[rng.Intn(len(ties))], true
}

// defaultFocus derives a balanced focus list from what the candidates cover
func defaultFocus(scored []scoredExercise) []models.MuscleGroup {
	preferred := []models.MuscleGroup{
		models.MusclePiernas, models.MusclePecho, models.MuscleEspalda,
		models.MuscleHombros, models.MuscleCore, models.MuscleGluteos,
	}
	covered := make(map[models.MuscleGroup]bool)
	for _, s := range scored {
		for _, m := range s.PrimaryMuscles {
			covered[m] = true
		}
	}
	var focus []models.MuscleGroup
	for _, m := range preferred {
		if covered[m] {
			focus = append(focus, m)
		}
	}
	if len(focus) == 0 {
		for m := range covered {
			focus = append(focus, m)
		}
		sort.Slice(focus, func(i, j int) bool { return focus[i] < focus[j] })
	}
	return focus
}

// orderForSession puts compound strength work first, isolation after,
// core next and cardio last. Within each tier difficulty never increases.
func orderForSession(selected []scoredExercise) []scoredExercise {
	tier := func(s *scoredExercise) int {
		switch {
		case s.Type == models.TypeCardio:
			return 3
		case s.MovementType == models.MovementCore || s.MovementType == models.MovementRotation:
			return 2
		case s.IsCompound:
			return 0
		default:
			return 1
		}
	}
	out := append([]scoredExercise(nil), selected...)
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := tier(&out[i]), tier(&out[j])
		if ti != tj {
			return ti < tj
		}
		return out[i].Difficulty > out[j].Difficulty
	})
	return out
}

// parameterize assigns sets, reps, tempo and rest from experience,
// intensity and age.
func (e *Engine) parameterize(s *scoredExercise, req *models.CustomizationRequest) models.RoutineExercise {
	sets := baseSets(req.Profile.Experience, s.IsCompound)
	if req.Profile.Age > 65 && sets > 2 {
		sets--
	}

	repsMin, repsMax := repRange(req.Preferences.Intensity, s.IsCompound)
	rest := restSeconds(req.Preferences.Intensity, s.IsCompound)
	if req.Profile.Age > 60 {
		rest += 30
	}

	tempo := models.Tempo{EccentricSec: 2, PauseSec: 0, ConcentricSec: 1, TopPauseSec: 0}
	if req.Preferences.Intensity == models.IntensityBaja {
		tempo = models.Tempo{EccentricSec: 3, PauseSec: 1, ConcentricSec: 1, TopPauseSec: 0}
	}
	if s.Type == models.TypeCardio {
		tempo = models.Tempo{}
		repsMin, repsMax = 30, 45 // seconds of continuous work
		rest = 45
	}

	return models.RoutineExercise{
		ExerciseID:   s.ID,
		Name:         s.Name,
		MuscleGroups: s.PrimaryMuscles,
		Equipment:    s.Equipment,
		MovementType: s.MovementType,
		Difficulty:   s.Difficulty,
		IsCompound:   s.IsCompound,
		Parameters: models.ExerciseParameters{
			Sets:        sets,
			RepsMin:     repsMin,
			RepsMax:     repsMax,
			Tempo:       tempo,
			RestSeconds: rest,
			LoadNote:    loadNote(req.Preferences.Intensity, s.IsCompound),
		},
		Transition:    models.TransitionStraightSets,
		SelectionNote: firstReason(s.Reasons),
	}
}

func baseSets(level models.ExperienceLevel, compound bool) int {
	switch level {
	case models.ExpBeginner:
		if compound {
			return 3
		}
		return 2
	case models.ExpIntermediate:
		if compound {
			return 4
		}
		return 3
	default:
		if compound {
			return 5
		}
		return 3
	}
}

func repRange(intensity models.IntensityPreference, compound bool) (int, int) {
	switch intensity {
	case models.IntensityAlta:
		if compound {
			return 6, 8
		}
		return 8, 10
	case models.IntensityBaja:
		return 12, 15
	default:
		return 8, 12
	}
}

func restSeconds(intensity models.IntensityPreference, compound bool) int {
	rest := 60
	if compound {
		rest = 90
	}
	if intensity == models.IntensityAlta && compound {
		rest = 120
	}
	if intensity == models.IntensityBaja {
		rest = 45
	}
	return rest
}

func loadNote(intensity models.IntensityPreference, compound bool) string {
	switch intensity {
	case models.IntensityAlta:
		if compound {
			return "75-85% 1RM"
		}
		return "RPE 8"
	case models.IntensityBaja:
		return "carga ligera, RPE 5-6"
	default:
		if compound {
			return "65-75% 1RM"
		}
		return "RPE 7"
	}
}

func firstReason(reasons []string) string {
	if len(reasons) == 0 {
		return ""
	}
	return reasons[0]
}

// enforceVolumeBand trims or grows per-exercise sets until the session
// total lands inside the band. Trimming starts from the end of the
// session, growth from the start, so compound work keeps its volume.
func enforceVolumeBand(exercises []models.RoutineExercise, band volumeBand) {
	total := func() int {
		sum := 0
		for i := range exercises {
			sum += exercises[i].Parameters.Sets
		}
		return sum
	}

	for total() > band.max {
		reduced := false
		for i := len(exercises) - 1; i >= 0; i-- {
			if exercises[i].Parameters.Sets > 2 {
				exercises[i].Parameters.Sets--
				reduced = true
				break
			}
		}
		if !reduced {
			break
		}
	}

	for total() < band.min {
		grown := false
		for i := range exercises {
			if exercises[i].Parameters.Sets < 5 {
				exercises[i].Parameters.Sets++
				grown = true
				break
			}
		}
		if !grown {
			break
		}
	}
}

// mainWorkBudgetMin is the session time left for the main blocks after
// warmup and cooldown. MaxDurationMin is a hard cap over the preferred
// duration.
func mainWorkBudgetMin(prefs *models.RoutinePreferences) int {
	d := prefs.PreferredDurationMin
	if prefs.MaxDurationMin > 0 && (d <= 0 || prefs.MaxDurationMin < d) {
		d = prefs.MaxDurationMin
	}
	if d <= 0 {
		d = 45
	}
	budget := d - 15
	if budget < 10 {
		budget = 10
	}
	return budget
}

// fitDuration shortens rests first, then drops trailing exercises, until
// the estimated main-work time fits the budget.
func fitDuration(exercises []models.RoutineExercise, budgetMin int) []models.RoutineExercise {
	estimate := func() float64 {
		var total float64
		for i := range exercises {
			total += exercises[i].EstimatedMinutes()
		}
		return total
	}

	for estimate() > float64(budgetMin) {
		shortened := false
		for i := range exercises {
			if exercises[i].Parameters.RestSeconds > 45 {
				exercises[i].Parameters.RestSeconds -= 15
				shortened = true
			}
		}
		if shortened {
			continue
		}
		if len(exercises) > 3 {
			exercises = exercises[:len(exercises)-1]
			continue
		}
		break
	}
	return exercises
}

// groupIntoBlocks splits the ordered exercises into named blocks
func groupIntoBlocks(exercises []models.RoutineExercise, supersets bool) []models.WorkoutBlock {
	var principal, accesorio, core, cardio []models.RoutineExercise
	for _, ex := range exercises {
		switch {
		case ex.MovementType == models.MovementCardio:
			cardio = append(cardio, ex)
		case ex.MovementType == models.MovementCore || ex.MovementType == models.MovementRotation:
			core = append(core, ex)
		case ex.IsCompound:
			principal = append(principal, ex)
		default:
			accesorio = append(accesorio, ex)
		}
	}

	if supersets && len(accesorio) >= 2 {
		for i := range accesorio {
			accesorio[i].Transition = models.TransitionSuperset
		}
	}

	var blocks []models.WorkoutBlock
	order := 1
	add := func(name string, t models.BlockType, purpose string, exs []models.RoutineExercise) {
		if len(exs) == 0 {
			return
		}
		var est float64
		for i := range exs {
			est += exs[i].EstimatedMinutes()
		}
		blocks = append(blocks, models.WorkoutBlock{
			Name:           name,
			Type:           t,
			Purpose:        purpose,
			Exercises:      exs,
			EstimatedMin:   int(est + 0.5),
			OrderInWorkout: order,
		})
		order++
	}
	add("Bloque Principal", models.BlockPrincipal, "Trabajo de fuerza en movimientos compuestos", principal)
	add("Bloque Accesorio", models.BlockAccesorio, "Trabajo complementario de aislamiento", accesorio)
	add("Bloque de Core", models.BlockCore, "Estabilidad y control del tronco", core)
	add("Bloque Cardiovascular", models.BlockCardio, "Acondicionamiento cardiovascular", cardio)
	return blocks
}

// computeVolume aggregates sets, reps and time across the session
func computeVolume(exercises []models.RoutineExercise, level models.ExperienceLevel) models.TrainingVolume {
	vol := models.TrainingVolume{SetsPerMuscle: make(map[models.MuscleGroup]int)}
	var workMin, restMin float64
	for i := range exercises {
		p := &exercises[i].Parameters
		vol.TotalSets += p.Sets
		vol.TotalReps += p.Sets * (p.RepsMin + p.RepsMax) / 2
		for _, m := range exercises[i].MuscleGroups {
			vol.SetsPerMuscle[m] += p.Sets
		}
		perRep := p.Tempo.SecondsPerRep()
		if perRep == 0 {
			perRep = 4
		}
		workMin += float64(p.Sets*(p.RepsMin+p.RepsMax)/2*perRep) / 60
		restMin += float64((p.Sets-1)*p.RestSeconds) / 60
	}
	vol.WorkTimeMin = int(workMin + 0.5)
	vol.RestTimeMin = int(restMin + 0.5)

	band := bandFor(level)
	switch {
	case vol.TotalSets < band.min:
		vol.Classification = models.VolumeLow
		vol.Recommendations = append(vol.Recommendations,
			fmt.Sprintf("El volumen total (%d series) está por debajo del rango esperado (%d-%d) para tu nivel", vol.TotalSets, band.min, band.max))
	case vol.TotalSets > band.max:
		vol.Classification = models.VolumeHigh
		vol.Recommendations = append(vol.Recommendations,
			fmt.Sprintf("El volumen total (%d series) supera el rango esperado (%d-%d) para tu nivel", vol.TotalSets, band.min, band.max))
	default:
		vol.Classification = models.VolumeModerate
	}
	return vol
}
