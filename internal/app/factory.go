package app

import (
	"strconv"

	"github.com/footprint-tools/shellshell/internal/config"
	"github.com/footprint-tools/shellshell/internal/domain"
	"github.com/footprint-tools/shellshell/internal/log"
	"github.com/footprint-tools/shellshell/internal/paths"
	"github.com/footprint-tools/shellshell/internal/store"
	"github.com/footprint-tools/shellshell/internal/ui"
	"github.com/footprint-tools/shellshell/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// Pager options
	PagerDisabled bool
	PagerOverride string

	// Log options
	LogEnabled bool
	LogLevel   log.Level
	LogPath    string

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string

	// History options; an empty HistoryPath means store.DBPath().
	HistoryEnabled bool
	HistoryPath    string
}

// DefaultOptions reads the options from the config file.
func DefaultOptions() Options {
	cfg, err := config.GetAll()
	if err != nil {
		log.Warn("app: read config: %v", err)
		cfg = map[string]string{}
	}

	historyEnabled, _ := strconv.ParseBool(cfg["enable_history"])

	return Options{
		LogEnabled:     cfg["enable_log"] == "true",
		LogLevel:       log.ParseLevel(cfg["log_level"]),
		StyleEnabled:   true,
		StyleConfig:    cfg,
		HistoryEnabled: historyEnabled,
	}
}

// New creates a new Application with all dependencies wired up. A history
// store that cannot be opened disables history instead of failing startup.
func New(opts Options) (*domain.Application, error) {
	logPath := opts.LogPath
	if logPath == "" {
		logPath = paths.LogFilePath()
	}

	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled {
		if l, err := log.New(logPath, opts.LogLevel); err == nil {
			logger = l
		}
	}
	log.SetDefault(logger)

	var history domain.HistoryStore
	if opts.HistoryEnabled {
		dbPath := opts.HistoryPath
		if dbPath == "" {
			dbPath = store.DBPath()
		}
		s, err := store.New(dbPath)
		if err != nil {
			logger.Warn("app: history disabled: %v", err)
		} else {
			history = s
		}
	}

	styler := style.New(opts.StyleEnabled, opts.StyleConfig)

	var writerOpts []ui.WriterOption
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(opts.PagerOverride))
	}
	writerOpts = append(writerOpts, ui.WithConfigGetter(config.Get))

	return &domain.Application{
		Config:  config.NewProvider(),
		Logger:  logger,
		Output:  ui.NewWriter(writerOpts...),
		Styler:  styler,
		History: history,
		LogPath: logPath,
	}, nil
}

// NewForTesting creates an Application suitable for testing: no history,
// NopLogger, no styling and no pager.
func NewForTesting() *domain.Application {
	return &domain.Application{
		Config:  config.NewProvider(),
		Logger:  log.NopLogger{},
		Output:  ui.NewWriter(ui.WithPagerDisabled()),
		Styler:  style.NopStyler{},
		LogPath: paths.LogFilePath(),
	}
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		log.SetDefault(nil)
		_ = app.Logger.Close()
	}
	if app.History != nil {
		_ = app.History.Close()
	}
	return nil
}
