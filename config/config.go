// Package config loads the mazewalk command configuration from the
// environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrBadValue indicates an environment variable that cannot be parsed.
var ErrBadValue = errors.New("config: bad value")

// Config holds the command's configuration values.
type Config struct {
	MapFile    string // YAML/JSON world map; empty means generate a maze
	Width      int    // generated maze width
	Height     int    // generated maze height
	Loops      int    // extra passages in a generated maze
	Seed       int64  // generator seed
	MoveBudget int    // max moves per session, 0 = unlimited
	LogLevel   string // debug, info, warn or error
	Verbosity  int    // logr V-level enabled at debug: 1 walks, 2 moves
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		Width:     10,
		Height:    10,
		Seed:      1,
		LogLevel:  "info",
		Verbosity: 1,
	}
}

// Load reads the given .env files (default ".env") if present, then builds
// a Config from the environment. A missing .env file is not an error.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	c := Default()
	var err error
	c.MapFile = getEnvWithDefault("MAZE_FILE", "")
	c.LogLevel = getEnvWithDefault("LOG_LEVEL", c.LogLevel)
	if c.Width, err = getEnvAsInt("MAZE_WIDTH", c.Width); err != nil {
		return Config{}, err
	}
	if c.Height, err = getEnvAsInt("MAZE_HEIGHT", c.Height); err != nil {
		return Config{}, err
	}
	if c.Loops, err = getEnvAsInt("MAZE_LOOPS", c.Loops); err != nil {
		return Config{}, err
	}
	seed, err := getEnvAsInt("MAZE_SEED", int(c.Seed))
	if err != nil {
		return Config{}, err
	}
	c.Seed = int64(seed)
	if c.MoveBudget, err = getEnvAsInt("MAZE_MOVE_BUDGET", c.MoveBudget); err != nil {
		return Config{}, err
	}
	if c.Verbosity, err = getEnvAsInt("LOG_VERBOSITY", c.Verbosity); err != nil {
		return Config{}, err
	}

	return c, c.Validate()
}

// Validate rejects values no session can run with.
func (c Config) Validate() error {
	if c.MapFile == "" && (c.Width < 1 || c.Height < 1) {
		return fmt.Errorf("%w: maze size %dx%d", ErrBadValue, c.Width, c.Height)
	}
	if c.Loops < 0 {
		return fmt.Errorf("%w: MAZE_LOOPS must not be negative (%d)", ErrBadValue, c.Loops)
	}
	if c.MoveBudget < 0 {
		return fmt.Errorf("%w: MAZE_MOVE_BUDGET must not be negative (%d)", ErrBadValue, c.MoveBudget)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: LOG_LEVEL %q", ErrBadValue, c.LogLevel)
	}

	return nil
}

// getEnvAsInt returns the integer value of key, or def when key is unset.
func getEnvAsInt(key string, def int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrBadValue, key, err)
	}

	return v, nil
}

// getEnvWithDefault returns the value of key, or def when key is unset.
func getEnvWithDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return def
}
