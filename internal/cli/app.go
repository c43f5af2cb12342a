package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mesh-intelligence/sir/internal/logging"
	"github.com/mesh-intelligence/sir/internal/paths"
	"github.com/mesh-intelligence/sir/internal/store"
	"github.com/mesh-intelligence/sir/pkg/types"
)

// app is the state assembled for a single command: the resolved
// configuration and the store it selects.
type app struct {
	env       *env
	configDir string
	cfg       types.Config
	store     store.Store
}

// resolveConfig applies the precedence rules: flags > environment >
// config.yaml > defaults.
func resolveConfig(e *env) (configDir string, cfg types.Config, err error) {
	configDir, err = paths.ResolveConfigDir(e.flags.configDir)
	if err != nil {
		return "", cfg, fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return "", cfg, err
	}

	dataDir, err := paths.ResolveDataDir(e.flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return "", cfg, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg = types.Config{
		Backend:  v.GetString(cfgKeyBackend),
		DataDir:  dataDir,
		LogLevel: v.GetString(cfgKeyLogLevel),
	}
	if e.flags.backend != "" {
		cfg.Backend = e.flags.backend
	}
	if e.flags.logLevel != "" {
		cfg.LogLevel = e.flags.logLevel
	}
	// Level names are case-insensitive wherever they come from.
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	return configDir, cfg, nil
}

// openApp resolves configuration, installs the logger and opens the store.
// Configuration problems are user errors.
func openApp(e *env) (*app, error) {
	configDir, cfg, err := resolveConfig(e)
	if err != nil {
		return nil, sysError(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, userError(fmt.Errorf("invalid configuration: %w", err))
	}
	if _, err := logging.Setup(cfg.LogLevel, e.stderr); err != nil {
		return nil, userError(err)
	}

	s, err := store.Open(cfg)
	if err != nil {
		return nil, sysError(fmt.Errorf("open store: %w", err))
	}
	slog.Debug("store opened", "backend", cfg.Backend, "path", s.Path())

	return &app{env: e, configDir: configDir, cfg: cfg, store: s}, nil
}

// load reads the collection. A load failure is fatal: there is no safe
// default that would not risk overwriting the user's data on the next save.
func (a *app) load() (*types.Collection, error) {
	c, err := a.store.Load()
	if err != nil {
		return nil, sysError(fmt.Errorf("load review topics: %w", err))
	}
	c.SetClock(a.env.clock)
	return c, nil
}

// save writes the collection back. The command's own output has already
// been printed, so a failure is reported as a warning with a non-zero exit.
func (a *app) save(c *types.Collection) error {
	if err := a.store.Save(c); err != nil {
		slog.Warn("changes were not saved", "path", a.store.Path(), "error", err)
		return sysError(fmt.Errorf("warning: changes were not saved: %w", err))
	}
	slog.Debug("review topics saved", "path", a.store.Path(), "count", c.Len())
	return nil
}

// mutate loads the collection, applies fn, and saves when fn reports a
// change.
func (a *app) mutate(fn func(c *types.Collection) (changed bool, err error)) error {
	c, err := a.load()
	if err != nil {
		return err
	}
	changed, err := fn(c)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return a.save(c)
}
