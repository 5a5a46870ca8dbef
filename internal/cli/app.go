package cli

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"hr-dashboard/internal/config"
	"hr-dashboard/internal/logger"
	"hr-dashboard/internal/repository"
	"hr-dashboard/internal/repository/sqlite"
	"hr-dashboard/internal/screen"
	"hr-dashboard/internal/theme"
)

// app is what every command needs once config is loaded.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	db       *sqlite.DB
	store    *repository.Store
	registry *screen.Registry
	theme    *theme.Theme
	styles   *theme.Styles
}

// opens the database named by config (or --db) and builds the screens
func openApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	db, err := sqlite.NewDB(sqlite.Config{Path: cfg.DBPath})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	a, err := newApp(cfg, log, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return a, nil
}

func newApp(cfg *config.Config, log *zap.Logger, db *sqlite.DB) (*app, error) {
	locale, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", cfg.Locale, err)
	}

	store := sqlite.NewStore(db)
	themeObj := theme.Resolve(cfg.ThemeName)

	log.Debug("app opened",
		zap.String("db", cfg.DBPath),
		zap.String("locale", locale.String()),
		zap.String("theme", themeObj.Name),
	)

	return &app{
		cfg:      cfg,
		logger:   log,
		db:       db,
		store:    store,
		registry: screen.NewRegistry(store, screen.Options{Locale: locale}),
		theme:    themeObj,
		styles:   theme.NewStyles(themeObj),
	}, nil
}

func (a *app) Close() error {
	_ = a.logger.Sync()
	return a.db.Close()
}
