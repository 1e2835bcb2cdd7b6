package app

import (
	"github.com/levelupgamer/lu/internal/config"
	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/log"
	"github.com/levelupgamer/lu/internal/paths"
	"github.com/levelupgamer/lu/internal/store"
	"github.com/levelupgamer/lu/internal/ui"
	"github.com/levelupgamer/lu/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// Pager options
	PagerDisabled bool
	PagerOverride string

	// Log options
	LogEnabled bool
	LogLevel   log.Level

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string

	// DBPath is the SQLite database file, or ":memory:".
	DBPath string
}

// DefaultOptions returns the options described by ~/.lurc.
func DefaultOptions() Options {
	logEnabled, _ := config.Get("enable_log")
	logLevel, _ := config.Get("log_level")
	dbPath, _ := config.Get("db_path")
	styleConfig, _ := config.GetAll()

	if dbPath == "" {
		dbPath = paths.DefaultDBPath()
	}

	return Options{
		LogEnabled:   logEnabled == "true",
		LogLevel:     log.ParseLevel(logLevel),
		StyleEnabled: true,
		StyleConfig:  styleConfig,
		DBPath:       dbPath,
	}
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled {
		if l, err := log.New(paths.LogFilePath(), opts.LogLevel); err == nil {
			logger = l
		}
	}

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = paths.DefaultDBPath()
	}
	st, err := store.New(dbPath)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	var writerOpts []ui.WriterOption
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(opts.PagerOverride))
	}
	writerOpts = append(writerOpts, ui.WithConfigGetter(config.Get))

	return &domain.Application{
		Store:  st,
		Config: config.NewProvider(),
		Logger: logger,
		Output: ui.NewWriter(writerOpts...),
		Styler: style.NewStyler(),
	}, nil
}

// NewForTesting creates an Application around st with a NopLogger,
// no styling and no pager.
func NewForTesting(st domain.Store) *domain.Application {
	return &domain.Application{
		Store:  st,
		Config: config.NewProvider(),
		Logger: log.NopLogger{},
		Output: ui.NewWriter(ui.WithPagerDisabled()),
		Styler: style.NopStyler{},
	}
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	if app.Store != nil {
		return app.Store.Close()
	}
	return nil
}
