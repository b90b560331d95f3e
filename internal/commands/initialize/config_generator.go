package initialize

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/falcion/sigscan/internal/config"
)

// GenerateConfigWithComments renders a starter .sigscan.yaml: the active
// settings followed by commented examples for every optional section.
func GenerateConfigWithComments(root string) ([]byte, error) {
	if root == "" {
		root = "."
	}

	data, err := yaml.Marshal(&config.Config{Root: root})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder

	sb.WriteString("# sigscan configuration file\n")
	sb.WriteString("#\n")
	sb.WriteString("# Documentation: https://github.com/falcion/sigscan\n")
	sb.WriteString("#\n")
	sb.WriteString("# The scanner walks `root` and reports every line containing a\n")
	sb.WriteString("# signature token. All settings below `root` are optional.\n\n")
	sb.Write(data)

	sb.WriteString("\n# Extra tokens appended to the defaults (FALCION, PATTERNU, UNITADE):\n")
	sb.WriteString("# tokens:\n")
	sb.WriteString("#   - MYMARK\n")

	sb.WriteString("\n# Directory names excluded in addition to the defaults:\n")
	sb.WriteString("# exclude:\n")
	sb.WriteString("#   - coverage\n")

	sb.WriteString("\n# Manifest synchronizer settings:\n")
	sb.WriteString("# sync:\n")
	sb.WriteString("#   dir: .\n")
	sb.WriteString("#   package: package.json\n")

	return []byte(sb.String()), nil
}
