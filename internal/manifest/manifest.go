// Package manifest keeps a project's manifest.json aligned with the
// identity fields of its package descriptor.
package manifest

import (
	"context"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/falcion/sigscan/internal/core"
)

// File names and default contents managed by the synchronizer.
const (
	ManifestFile = "manifest.json"
	BackupFile   = "manifest-backup.json"
	EnvFile      = ".env"

	DefaultManifest = "{}"
	DefaultEnv      = "EXAMPLE_API_KEY=\n"
)

// manifestStyle matches the four-space indentation manifests are
// published with.
var manifestStyle = &pretty.Options{Indent: "    "}

// RecordFromManifest extracts the identity fields tracked by the
// synchronizer from raw manifest.json bytes. Fields outside the record
// are ignored.
func RecordFromManifest(data []byte) (Record, error) {
	if !gjson.ValidBytes(data) {
		return Record{}, fmt.Errorf("invalid JSON")
	}

	return Record{
		ID:          gjson.GetBytes(data, "id").String(),
		Name:        gjson.GetBytes(data, "name").String(),
		Description: gjson.GetBytes(data, "description").String(),
		Author:      gjson.GetBytes(data, "author").String(),
		AuthorURL:   gjson.GetBytes(data, "authorUrl").String(),
		License:     gjson.GetBytes(data, "license").String(),
		Version:     gjson.GetBytes(data, "version").String(),
	}, nil
}

// ApplyRecord sets the identity fields on raw manifest bytes, leaving
// every other field and the existing key order untouched, and formats
// the result with four-space indentation and a trailing newline.
func ApplyRecord(data []byte, rec Record) ([]byte, error) {
	updated := data

	var err error
	for _, name := range FieldNames {
		updated, err = sjson.SetBytes(updated, name, rec.Field(name))
		if err != nil {
			return nil, fmt.Errorf("failed to set manifest field %q: %w", name, err)
		}
	}

	updated = pretty.PrettyOptions(updated, manifestStyle)
	if len(updated) > 0 && updated[len(updated)-1] != '\n' {
		updated = append(updated, '\n')
	}

	return updated, nil
}

// EnsureFile creates path with the given content when no file exists
// there yet. Existing files are never touched. It reports whether the
// file was written.
func EnsureFile(ctx context.Context, fs core.FileSystem, path, content string) (bool, error) {
	_, err := fs.Stat(ctx, path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat %q: %w", path, err)
	}

	if err := fs.WriteFile(ctx, path, []byte(content), core.PermOwnerRW); err != nil {
		return false, fmt.Errorf("failed to create %q: %w", path, err)
	}

	return true, nil
}

// ResetFile writes path with the given content unconditionally,
// replacing whatever is there.
func ResetFile(ctx context.Context, fs core.FileSystem, path, content string) error {
	if err := fs.WriteFile(ctx, path, []byte(content), core.PermOwnerRW); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
