package generator

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// LoadConfig reads a JSON run configuration file. Fields absent
// from the file keep their zero value; callers merge the result
// with flag values as needed.
func LoadConfig(path string) (Config, error) {
	const errCtx = "loading config"

	raw, err := os.ReadFile(path) //nolint:gosec // path from CLI flag
	if err != nil {
		return Config{}, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf(
			"%s: %s: %w", errCtx, path, err,
		)
	}

	return cfg, nil
}
