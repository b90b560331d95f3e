package config

import (
	"fmt"
	"strings"
)

// Validate checks the decoded configuration for entries that would make a
// scan or sync misbehave. Token entries must be non-blank; exclusion
// entries are directory names, not paths.
func (c *Config) Validate() error {
	var problems []string

	for i, tok := range c.Tokens {
		if strings.TrimSpace(tok) == "" {
			problems = append(problems, fmt.Sprintf("tokens[%d]: blank entry", i))
		}
	}

	for _, name := range c.Exclude {
		if strings.ContainsAny(name, `/\`) {
			problems = append(problems, fmt.Sprintf("exclude: %q must be a directory name, not a path", name))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid %s: %s", DefaultConfigFile, strings.Join(problems, "; "))
	}
	return nil
}
