// meta/meta.go
package meta

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// MATCHES defines the number of matches per pairing.
const MATCHES = 10

// EPISODES defines the number of episodes for MCTS.
const EPISODES = 150

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 1

// EXPLORATION defines the UCB1 exploration constant.
const EXPLORATION = math.Sqrt2

const (
	envMatches     = "SCHNAPSEN_MATCHES"
	envEpisodes    = "SCHNAPSEN_EPISODES"
	envGoroutines  = "SCHNAPSEN_GOROUTINES"
	envExploration = "SCHNAPSEN_EXPLORATION"
	envSeed        = "SCHNAPSEN_SEED"
	envLogLevel    = "SCHNAPSEN_LOG_LEVEL"
	envOutputDir   = "SCHNAPSEN_OUTPUT_DIR"
	envDBPath      = "SCHNAPSEN_DB_PATH"
)

type Config struct {
	Matches     int
	Episodes    int
	Goroutines  int
	Exploration float64
	// Seed 0 means seed from the runtime
	Seed        uint64
	LogLevel    string
	OutputDir   string
	DBPath      string
}

func Default() Config {
	return Config{
		Matches:     MATCHES,
		Episodes:    EPISODES,
		Goroutines:  GO_ROUTINES,
		Exploration: EXPLORATION,
		LogLevel:    "info",
		OutputDir:   "experiments",
		DBPath:      "schnapsen.db",
	}
}

// Load reads the configuration from the environment after applying envFile,
// if it exists. Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	c := Default()
	var err error
	if c.Matches, err = intEnv(envMatches, c.Matches); err != nil {
		return Config{}, err
	}
	if c.Episodes, err = intEnv(envEpisodes, c.Episodes); err != nil {
		return Config{}, err
	}
	if c.Goroutines, err = intEnv(envGoroutines, c.Goroutines); err != nil {
		return Config{}, err
	}
	if v, ok := os.LookupEnv(envExploration); ok {
		if c.Exploration, err = strconv.ParseFloat(v, 64); err != nil || c.Exploration < 0 {
			return Config{}, fmt.Errorf("invalid %s %q", envExploration, v)
		}
	}
	if v, ok := os.LookupEnv(envSeed); ok {
		if c.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", envSeed, v, err)
		}
	}
	if v, ok := os.LookupEnv(envLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(envOutputDir); ok {
		c.OutputDir = v
	}
	if v, ok := os.LookupEnv(envDBPath); ok {
		c.DBPath = v
	}
	return c, nil
}

func intEnv(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", key, v)
	}
	return n, nil
}
