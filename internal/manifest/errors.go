package manifest

import (
	"fmt"
	"strings"
)

// DescriptorNotFoundError indicates that no known package descriptor
// exists in the sync directory.
type DescriptorNotFoundError struct {
	Dir string
}

func (e *DescriptorNotFoundError) Error() string {
	return fmt.Sprintf("no package descriptor found in %s", e.Dir)
}

// Suggestion returns a helpful message listing the files the
// synchronizer looks for.
func (e *DescriptorNotFoundError) Suggestion() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "No package descriptor found in: %s\n\n", e.Dir)
	sb.WriteString("The synchronizer reads project metadata from one of:\n\n")
	for _, src := range KnownSources {
		fmt.Fprintf(&sb, "  - %s\n", src.Name)
	}
	sb.WriteString("\nCreate one of these files, or point --package at the descriptor to use.\n")

	return sb.String()
}

// ParseError indicates that a descriptor or manifest file could not be
// decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Err
}
