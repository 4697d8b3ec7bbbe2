package cli

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubeview/internal/app"
	"github.com/SeamusWaldron/cubeview/internal/config"
	"github.com/SeamusWaldron/cubeview/internal/logger"
	"github.com/SeamusWaldron/cubeview/internal/render"
	"github.com/SeamusWaldron/cubeview/internal/storage"
)

// env is everything a front-end command needs.
type env struct {
	cfg     *config.Config
	log     *zap.Logger
	keys    app.Keymap
	palette render.Palette

	db      *storage.DB
	journal *storage.SessionRecorder
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath, config.Overrides{
		Debug:  debug,
		Frames: frames,
		FPS:    fps,
		Record: record,
		DBPath: dbPath,
	})
}

// setup loads config, starts logging and opens the journal if enabled.
// Full-screen front-ends pass console=false.
func setup(frontEnd string, console bool) (*env, error) {
	return newEnv(frontEnd, console, true)
}

func newEnv(frontEnd string, console, journal bool) (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, console); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	keys := app.DefaultKeymap()
	if err := keys.Override(cfg.Keys); err != nil {
		return nil, fmt.Errorf("config keys: %w", err)
	}

	pal, err := render.NewPalette(cfg.Palette)
	if err != nil {
		return nil, fmt.Errorf("config palette: %w", err)
	}

	e := &env{cfg: cfg, log: logger.Log.Named(frontEnd), keys: keys, palette: pal}

	if journal && cfg.History.Enabled {
		if err := e.openJournal(frontEnd); err != nil {
			return nil, err
		}
	}

	return e, nil
}

func (e *env) openJournal(frontEnd string) error {
	path, err := historyPath(e.cfg)
	if err != nil {
		return err
	}
	db, err := storage.Open(path)
	if err != nil {
		return err
	}
	rec, err := storage.StartSession(db, e.cfg.Animation.Frames, frontEnd, version)
	if err != nil {
		db.Close()
		return err
	}
	e.db, e.journal = db, rec
	e.log.Info("recording session", zap.String("session", rec.ID()), zap.String("db", path))
	return nil
}

func historyPath(cfg *config.Config) (string, error) {
	if cfg.History.DBPath != "" {
		return cfg.History.DBPath, nil
	}
	return storage.DefaultDBPath()
}

// newApp builds the viewer state from the loaded config.
func (e *env) newApp() *app.App {
	seed := uint64(time.Now().UnixNano())
	opts := []app.Option{
		app.WithLogger(e.log),
		app.WithFrames(e.cfg.Animation.Frames),
		app.WithRand(rand.New(rand.NewPCG(seed, seed>>17|1))),
		app.WithView(app.View{
			Wireframe:       e.cfg.View.Wireframe,
			Axes:            e.cfg.View.Axes,
			BackfaceCulling: e.cfg.View.BackfaceCulling,
		}),
	}
	if e.journal != nil {
		opts = append(opts, app.WithJournal(e.journal))
	}
	return app.New(opts...)
}

// close ends the journal session and flushes logs.
func (e *env) close() {
	if e.journal != nil {
		if err := e.journal.Close(); err != nil {
			e.log.Warn("failed to end session", zap.Error(err))
		}
	}
	if e.db != nil {
		e.db.Close()
	}
	logger.Sync()
}
