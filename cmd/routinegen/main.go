package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"routinegen/internal/catalog"
	"routinegen/internal/config"
	"routinegen/internal/engine"
	"routinegen/internal/models"
)

// input is the envelope read from stdin or --in. Only the fields the
// chosen command needs have to be present.
type input struct {
	Request     *models.CustomizationRequest `json:"request,omitempty"`
	Routine     *models.BaseRoutine          `json:"routine,omitempty"`
	Constraints *models.ConstraintSet        `json:"constraints,omitempty"`
	Variations  *models.VariationOptions     `json:"variations,omitempty"`
	Goals       *models.ProgramGoals         `json:"goals,omitempty"`
	Exercise    string                       `json:"exercise,omitempty"`
	Criteria    *models.SubstitutionCriteria `json:"criteria,omitempty"`
}

type appContext struct {
	eng *engine.Engine
	in  *input
}

type routineCmd struct{}

func (c *routineCmd) Run(app *appContext) error {
	return emit(app.eng.CreateCustomizedRoutine(context.Background(), app.in.Request))
}

type variationsCmd struct{}

func (c *variationsCmd) Run(app *appContext) error {
	return emit(app.eng.GenerateRoutineVariations(context.Background(), app.in.Routine, app.in.Variations))
}

type adaptCmd struct{}

func (c *adaptCmd) Run(app *appContext) error {
	return emit(app.eng.AdaptRoutineToConstraints(context.Background(), app.in.Routine, app.in.Constraints))
}

type programCmd struct{}

func (c *programCmd) Run(app *appContext) error {
	return emit(app.eng.CreatePersonalizedProgram(context.Background(), app.in.Request, app.in.Goals))
}

type substitutionsCmd struct{}

func (c *substitutionsCmd) Run(app *appContext) error {
	return emit(app.eng.GetExerciseSubstitutions(context.Background(), app.in.Exercise, app.in.Criteria))
}

var cli struct {
	In string `help:"Input JSON file, - for stdin." default:"-"`

	Routine       routineCmd       `cmd:"" help:"Create a customized routine from a request." default:"1"`
	Variations    variationsCmd    `cmd:"" help:"Generate variations of a base routine."`
	Adapt         adaptCmd         `cmd:"" help:"Adapt a routine to a new constraint set."`
	Program       programCmd       `cmd:"" help:"Plan a phased multi-week program."`
	Substitutions substitutionsCmd `cmd:"" help:"List substitutes for a named exercise."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("routinegen"),
		kong.Description("Routine customization engine over a declarative exercise catalog"),
		kong.UsageOnError(),
	)

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	cat, err := loadCatalog(cfg, logger)
	if err != nil {
		logger.Fatal("catalog", zap.Error(err))
	}
	logger.Info("catalog loaded", zap.Int("exercises", cat.Len()))

	in, err := readInput(cli.In)
	if err != nil {
		logger.Fatal("input", zap.Error(err))
	}

	app := &appContext{
		eng: engine.New(cat, engine.WithLogger(logger)),
		in:  in,
	}
	if err := ctx.Run(app); err != nil {
		logger.Fatal("operation failed", zap.String("command", ctx.Command()), zap.Error(err))
	}
}

// emit writes the operation result as indented JSON to stdout
func emit(result any, err error) error {
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	zcfg := zap.NewProductionConfig()
	if cfg.Pretty {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	// results go to stdout, logs to stderr
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}

// loadCatalog picks the catalog source: database, then directory, then
// the built-in seed.
func loadCatalog(cfg *config.Config, logger *zap.Logger) (*catalog.Catalog, error) {
	if cfg.DatabaseURL != "" {
		db, err := catalog.OpenPg(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		logger.Info("loading catalog from database")
		return catalog.NewPgStore(db).Load()
	}
	if cfg.CatalogDir != "" {
		logger.Info("loading catalog from directory", zap.String("dir", cfg.CatalogDir))
		return catalog.LoadDir(cfg.CatalogDir)
	}
	logger.Info("using built-in catalog")
	return catalog.Seed(), nil
}

func readInput(path string) (*input, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	var in input
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}
	return &in, nil
}
