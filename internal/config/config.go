// Package config resolves runtime options from command-line flags with
// environment variable fallbacks.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mbwilding/steam-achievement-manager/internal/app"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envAppID      = "SAM_APP_ID"
	envCatalog    = "SAM_CATALOG"
	envImport     = "SAM_IMPORT"
	envPrefs      = "SAM_PREFS"
	envPrefsStore = "SAM_PREFS_STORE"
	envShowFooter = "SAM_FOOTER"
	envTrace      = "SAM_TRACE"
	envLogFile    = "SAM_LOG_FILE"
)

// ErrHelp is returned by LoadArgs when --help was requested.
var ErrHelp = pflag.ErrHelp

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

type flagValues struct {
	appID      *uint32
	catalog    *string
	importPath *string
	prefs      *string
	prefsStore *string
	footer     *bool
	trace      *bool
	logFile    *string
}

func newFlagSet(env map[string]string) (*pflag.FlagSet, flagValues) {
	base := defaultDir()
	fs := pflag.NewFlagSet("sam", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.SortFlags = false

	v := flagValues{
		appID:      fs.Uint32P("app-id", "i", envOrUint32(env, envAppID, 0), "application id to open (0 starts at the app id prompt)"),
		catalog:    fs.String("catalog", envOrDefault(env, envCatalog, filepath.Join(base, "catalog.db")), "path to the SQLite achievement catalog"),
		importPath: fs.String("import", envOrDefault(env, envImport, ""), "YAML or JSON(C) seed file to import into the catalog before starting"),
		prefs:      fs.String("prefs", envOrDefault(env, envPrefs, filepath.Join(base, "prefs.yaml")), "path to the preferences file"),
		prefsStore: fs.String("prefs-store", envOrDefault(env, envPrefsStore, app.PrefsFile), "where to keep preferences: file or catalog"),
		footer:     fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the controls footer"),
		trace:      fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile:    fs.String("log-file", envOrDefault(env, envLogFile, filepath.Join(base, "sam.log")), "path to the log file"),
	}
	return fs, v
}

// LoadArgs allows tests to supply specific args/environment. A single
// positional argument is accepted as the application id.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	fs, v := newFlagSet(env)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	appID := *v.appID
	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		if fs.Changed("app-id") {
			return Config{}, fmt.Errorf("app id given twice (--app-id %d and %q)", appID, rest[0])
		}
		parsed, err := strconv.ParseUint(rest[0], 10, 32)
		if err != nil {
			return Config{}, fmt.Errorf("invalid app id %q", rest[0])
		}
		appID = uint32(parsed)
	default:
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(rest[1:], " "))
	}

	paths := map[string]*string{
		"catalog": v.catalog,
		"import":  v.importPath,
		"prefs":   v.prefs,
		"logFile": v.logFile,
	}
	for name, p := range paths {
		expanded, err := expandTilde(*p)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", name, err)
		}
		*p = expanded
	}

	cfg := Config{
		App: app.Config{
			AppID:       appID,
			CatalogPath: *v.catalog,
			ImportPath:  *v.importPath,
			PrefsPath:   *v.prefs,
			PrefsStore:  strings.ToLower(strings.TrimSpace(*v.prefsStore)),
			ShowFooter:  *v.footer,
		},
		Logging: Logging{
			FilePath: *v.logFile,
			Trace:    *v.trace,
		},
		Flags: map[string]string{
			"appID":      strconv.FormatUint(uint64(appID), 10),
			"catalog":    *v.catalog,
			"import":     *v.importPath,
			"prefs":      *v.prefs,
			"prefsStore": *v.prefsStore,
			"footer":     strconv.FormatBool(*v.footer),
			"trace":      strconv.FormatBool(*v.trace),
			"logFile":    *v.logFile,
		},
		Args: append([]string(nil), args...),
	}
	return cfg, nil
}

// Usage renders the flag help text.
func Usage(environ []string) string {
	fs, _ := newFlagSet(parseEnv(environ))
	return "Usage: sam [flags] [app-id]\n\n" + fs.FlagUsages()
}

func defaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "."
	}
	return filepath.Join(dir, "sam")
}

func expandTilde(p string) (string, error) {
	if p == "" || p[0] != '~' {
		return p, nil
	}
	h, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if p == "~" {
		return h, nil
	}
	return filepath.Join(h, p[2:]), nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrUint32(env map[string]string, key string, fallback uint32) uint32 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32)
	if err != nil {
		return fallback
	}
	return uint32(parsed)
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits. --help prints usage and exits 0.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, ErrHelp) {
		fmt.Fprint(os.Stdout, Usage(os.Environ()))
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects option combinations the application cannot start with.
func Validate(cfg Config) error {
	switch cfg.App.PrefsStore {
	case app.PrefsFile, app.PrefsCatalog:
	default:
		return fmt.Errorf("prefs-store must be %q or %q (got %q)", app.PrefsFile, app.PrefsCatalog, cfg.App.PrefsStore)
	}
	if strings.TrimSpace(cfg.App.CatalogPath) == "" {
		return errors.New("catalog path is empty")
	}
	if cfg.App.PrefsStore == app.PrefsFile && strings.TrimSpace(cfg.App.PrefsPath) == "" {
		return errors.New("prefs path is empty")
	}
	if cfg.App.ImportPath != "" {
		if _, err := os.Stat(cfg.App.ImportPath); err != nil {
			return fmt.Errorf("import file: %w", err)
		}
	}
	return nil
}
