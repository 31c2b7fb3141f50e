package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/pacsift/internal/app"
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
	envTheme   = "PACSIFT_THEME"
	envPacman  = "PACSIFT_PACMAN"
	envWidth   = "PACSIFT_WIDTH"
	envHeight  = "PACSIFT_HEIGHT"
	envVerbose = "PACSIFT_VERBOSE"
	envTrace   = "PACSIFT_TRACE"
	envLogFile = "PACSIFT_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("pacsift", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	themePath := fs.String("theme", envOrDefault(env, envTheme, ""), "path to a TOML theme file (empty uses the built-in palette)")
	pacmanBin := fs.String("pacman", envOrDefault(env, envPacman, "pacman"), "path to the pacman binary")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "log successful actions in addition to errors")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if strings.TrimSpace(*pacmanBin) == "" {
		return Config{}, fmt.Errorf("pacman binary path must not be empty")
	}

	cfg := Config{
		App: app.Config{
			ThemePath: *themePath,
			PacmanBin: *pacmanBin,
			Width:     *width,
			Height:    *height,
			Verbose:   *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"theme":   *themePath,
			"pacman":  *pacmanBin,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"verbose": strconv.FormatBool(*verbose),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
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

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
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

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
