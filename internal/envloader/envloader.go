// Package envloader loads .env files and resolves environment overrides.
//
// Overview:
//   - Responsibility: Load .env files and apply DRSCAFFOLD_* overrides over file config
//   - Key Types: Environment variable maps and loading functions
//   - Concurrency Model: Mutates the process environment, call once at startup
//   - Error Semantics: A missing .env file is not an error, parse errors are
//   - Performance Notes: Single file read
//
// Usage:
//
//	if err := envloader.Load(".env"); err != nil {
//	    return err
//	}
//	mainDir := envloader.MainDir(config.MainDir)
package envloader

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"go.eggybyte.com/drscaffold/internal/errors"
)

// DefaultPath is the .env file loaded at startup.
const DefaultPath = ".env"

// MainDirEnv overrides the configured main directory.
const MainDirEnv = "DRSCAFFOLD_MAIN_DIR"

// LoadEnvFile reads variables from a .env file without touching the process
// environment.
//
// Parameters:
//   - path: Path to .env file
//
// Returns:
//   - map[string]string: Variables as key-value pairs, empty when the file is missing
//   - error: Read or parse error if any
func LoadEnvFile(path string) (map[string]string, error) {
	envMap, err := godotenv.Read(path)
	if stderrors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(errors.CodeInvalidArgument, "envloader.LoadEnvFile", err, "failed to read %s", path)
	}
	return envMap, nil
}

// Load exports the variables of a .env file into the process environment.
// Variables already set in the environment keep their value.
func Load(path string) error {
	envMap, err := LoadEnvFile(path)
	if err != nil {
		return err
	}

	for key, value := range envMap {
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return errors.Wrapf(errors.CodeInternal, "envloader.Load", err, "failed to set %s", key)
		}
	}
	return nil
}

// MainDir returns the DRSCAFFOLD_MAIN_DIR override when set, otherwise fallback.
func MainDir(fallback string) string {
	if value := strings.TrimSpace(os.Getenv(MainDirEnv)); value != "" {
		return value
	}
	return fallback
}
