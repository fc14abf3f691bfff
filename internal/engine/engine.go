package engine

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"routinegen/internal/catalog"
	"routinegen/internal/models"
)

// Engine customizes routines against an exercise catalog
type Engine struct {
	catalog *catalog.Catalog
	log     *zap.Logger
	clock   func() time.Time
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the structured logger
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithClock overrides the time source, used by tests
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

// New creates an engine over the given catalog
func New(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{catalog: cat, log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CreateCustomizedRoutine runs the full customization pipeline: filter,
// score, sequence, then warmup, cooldown and safety evaluation in
// parallel, and finally the progression plan and audit notes. The same
// request always produces the same routine.
func (e *Engine) CreateCustomizedRoutine(ctx context.Context, req *models.CustomizationRequest) (*models.CustomizedRoutine, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filtered, err := e.filterCandidates(req)
	if err != nil {
		return nil, err
	}
	e.log.Debug("candidates filtered",
		zap.Int("candidates", len(filtered.candidates)),
		zap.Int("excluded", len(filtered.excluded)),
		zap.Strings("relaxations", filtered.relaxed))

	scored := e.scoreCandidates(req, filtered.candidates)
	rng := rand.New(rand.NewSource(req.Seed))
	blocks, volume := e.buildWorkout(req, scored, rng)

	var (
		wg          sync.WaitGroup
		warmup      models.Warmup
		cooldown    models.Cooldown
		safetyNotes []models.SafetyNote
		firedRules  []string
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		warmup = e.buildWarmup(req, blocks)
	}()
	go func() {
		defer wg.Done()
		cooldown = e.buildCooldown(req, blocks)
	}()
	go func() {
		defer wg.Done()
		safetyNotes, firedRules = e.evaluateSafety(req)
	}()
	wg.Wait()

	progression := e.buildProgression(req)
	notes := e.buildNotes(req, filtered, safetyNotes, &volume)
	meta := buildMetadata(req, filtered, firedRules)

	routine := &models.CustomizedRoutine{
		RoutineID:   uuid.NewString(),
		UserID:      req.Profile.UserID,
		Name:        routineName(req),
		Description: routineDescription(req, blocks),
		CreatedAt:   e.now(),
		DurationMin: warmup.DurationMin + blocksDuration(blocks) + cooldown.DurationMin,
		Warmup:      warmup,
		Blocks:      blocks,
		Cooldown:    cooldown,
		Volume:      volume,
		Progression: progression,
		SafetyNotes: safetyNotes,
		Metadata:    meta,
		Notes:       notes,
		Adaptations: buildSummary(req, filtered, safetyNotes),
	}

	e.log.Info("routine created",
		zap.String("routine_id", routine.RoutineID),
		zap.String("user_id", routine.UserID),
		zap.Int("exercises", len(routine.AllExercises())),
		zap.Int("duration_min", routine.DurationMin),
		zap.Float64("personalization_score", meta.PersonalizationScore))
	return routine, nil
}

// GenerateRoutineVariations produces alternative versions of a routine
// along the requested axes.
func (e *Engine) GenerateRoutineVariations(ctx context.Context, base *models.BaseRoutine, opts *models.VariationOptions) ([]models.RoutineVariation, error) {
	if base == nil {
		return nil, invalidInput("routine", "se requiere una rutina base")
	}
	options := models.VariationOptions{}
	if opts != nil {
		options = *opts
	}
	variations, err := e.generateVariations(ctx, base, &options)
	if err != nil {
		return nil, err
	}
	e.log.Info("variations generated",
		zap.String("routine", base.Name),
		zap.Int("count", len(variations)))
	return variations, nil
}

// AdaptRoutineToConstraints rewrites a routine so it satisfies a new
// constraint set, substituting where possible and removing as a last
// resort.
func (e *Engine) AdaptRoutineToConstraints(ctx context.Context, base *models.BaseRoutine, constraints *models.ConstraintSet) (*models.AdaptedRoutine, error) {
	if base == nil {
		return nil, invalidInput("routine", "se requiere una rutina base")
	}
	if constraints == nil || constraints.IsEmpty() {
		return nil, invalidInput("constraints", "no hay restricciones que aplicar")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	adapted, err := e.adaptRoutine(base, constraints)
	if err != nil {
		return nil, err
	}
	e.log.Info("routine adapted",
		zap.String("routine", base.Name),
		zap.Int("adaptations", len(adapted.Adaptations)),
		zap.Float64("adaptation_score", adapted.AdaptationScore))
	return adapted, nil
}

// CreatePersonalizedProgram plans a phased multi-week program toward
// the stated goals.
func (e *Engine) CreatePersonalizedProgram(ctx context.Context, req *models.CustomizationRequest, goals *models.ProgramGoals) (*models.PersonalizedProgram, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if goals == nil {
		return nil, &InvalidGoalError{Reason: "faltan los objetivos del programa"}
	}
	program, err := e.createProgram(ctx, req, goals)
	if err != nil {
		return nil, err
	}
	e.log.Info("program created",
		zap.String("program_id", program.ProgramID),
		zap.Int("total_weeks", program.TotalWeeks),
		zap.Int("phases", len(program.Phases)))
	return program, nil
}

// GetExerciseSubstitutions lists catalog alternatives for a named
// exercise. The name match is case and accent insensitive.
func (e *Engine) GetExerciseSubstitutions(ctx context.Context, exerciseName string, criteria *models.SubstitutionCriteria) ([]models.ExerciseSubstitution, error) {
	if strings.TrimSpace(exerciseName) == "" {
		return nil, invalidInput("exercise_name", "se requiere el nombre del ejercicio")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	original, ok := e.catalog.FindByName(exerciseName)
	if !ok {
		return nil, &UnknownExerciseError{Name: exerciseName}
	}
	crit := models.SubstitutionCriteria{}
	if criteria != nil {
		crit = *criteria
	}
	subs := e.findSubstitutions(original, &crit)
	e.log.Debug("substitutions found",
		zap.String("exercise", original.Name),
		zap.Int("count", len(subs)))
	return subs, nil
}

func validateRequest(req *models.CustomizationRequest) error {
	if req == nil {
		return invalidInput("request", "se requiere una petición")
	}
	if req.Profile.UserID == "" {
		return invalidInput("profile.user_id", "se requiere el identificador del usuario")
	}
	if req.Profile.Age <= 0 || req.Profile.Age > 110 {
		return invalidInput("profile.age", "la edad debe estar entre 1 y 110")
	}
	switch req.Profile.Experience {
	case models.ExpBeginner, models.ExpIntermediate, models.ExpAdvanced:
	default:
		return invalidInput("profile.experience", "nivel de experiencia desconocido")
	}
	if req.Preferences.DaysPerWeek < 0 || req.Preferences.DaysPerWeek > 7 {
		return invalidInput("preferences.days_per_week", "los días por semana deben estar entre 0 y 7")
	}
	if req.Preferences.PreferredDurationMin <= 0 {
		return invalidInput("preferences.preferred_duration_min", "la duración preferida debe ser mayor que cero")
	}
	if req.Priorities.Safety < 0 || req.Priorities.Effectiveness < 0 || req.Priorities.Convenience < 0 {
		return invalidInput("priorities", "las prioridades no pueden ser negativas")
	}
	return nil
}

func routineName(req *models.CustomizationRequest) string {
	if len(req.Preferences.MuscleFocus) > 0 {
		focus := make([]string, 0, 2)
		for i, m := range req.Preferences.MuscleFocus {
			if i == 2 {
				break
			}
			focus = append(focus, string(m))
		}
		return fmt.Sprintf("Rutina de %s", strings.Join(focus, " y "))
	}
	return "Rutina de Cuerpo Completo"
}

func routineDescription(req *models.CustomizationRequest, blocks []models.WorkoutBlock) string {
	exercises := 0
	for _, b := range blocks {
		exercises += len(b.Exercises)
	}
	return fmt.Sprintf("Rutina personalizada de %d ejercicios para entrenar en %s, nivel %s",
		exercises, req.Environment.Location, req.Profile.Experience)
}

func blocksDuration(blocks []models.WorkoutBlock) int {
	total := 0
	for _, b := range blocks {
		total += b.EstimatedMin
	}
	return total
}
