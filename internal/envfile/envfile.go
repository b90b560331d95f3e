// Package envfile loads dotenv files into the process environment.
package envfile

import (
	"fmt"

	"github.com/joho/godotenv"
)

// Load reads the env file at path and exports its variables into the
// process environment. Variables that are already set keep their
// current values.
func Load(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %q: %w", path, err)
	}
	return nil
}

// Read parses the env file at path and returns its variables without
// touching the process environment.
func Read(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %q: %w", path, err)
	}
	return vars, nil
}
