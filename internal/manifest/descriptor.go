package manifest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"

	"github.com/falcion/sigscan/internal/core"
)

// Source describes one known package descriptor file.
type Source struct {
	// Name is the file name probed inside the sync directory.
	Name string
	// Format selects the decoder used for the file.
	Format Format
}

// KnownSources lists the descriptors the synchronizer understands, in
// probe order. The first file present in the directory wins.
var KnownSources = []Source{
	{Name: "package.json", Format: FormatJSON},
	{Name: "Cargo.toml", Format: FormatTOML},
	{Name: "pyproject.toml", Format: FormatTOML},
	{Name: "composer.json", Format: FormatJSON},
}

// sourceForFile resolves an explicitly chosen descriptor file to a
// Source, falling back to extension-based detection for file names not
// in KnownSources.
func sourceForFile(filename string) Source {
	base := filepath.Base(filename)

	for _, src := range KnownSources {
		if src.Name == base {
			return src
		}
	}

	return Source{Name: base, Format: FormatForFile(base)}
}

// Descriptor is a parsed package descriptor.
type Descriptor struct {
	Path   string
	Source Source
	Record Record
}

// Reader loads package descriptors through the injected file system.
type Reader struct {
	fs core.FileSystem
}

// NewReader creates a descriptor reader backed by the given file system.
func NewReader(fs core.FileSystem) *Reader {
	return &Reader{fs: fs}
}

// Find probes dir for the first known descriptor and parses it. It
// returns a DescriptorNotFoundError when none of the KnownSources files
// exist in dir.
func (r *Reader) Find(ctx context.Context, dir string) (*Descriptor, error) {
	for _, src := range KnownSources {
		path := filepath.Join(dir, src.Name)

		if _, err := r.fs.Stat(ctx, path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to stat %q: %w", path, err)
		}

		return r.read(ctx, path, src)
	}

	return nil, &DescriptorNotFoundError{Dir: dir}
}

// ReadFile parses an explicitly chosen descriptor file. File names not
// in KnownSources reuse the mapping of the closest known descriptor for
// their format.
func (r *Reader) ReadFile(ctx context.Context, path string) (*Descriptor, error) {
	return r.read(ctx, path, sourceForFile(path))
}

func (r *Reader) read(ctx context.Context, path string, src Source) (*Descriptor, error) {
	data, err := r.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor %q: %w", path, err)
	}

	var rec Record
	switch src.Name {
	case "package.json":
		rec, err = recordFromPackageJSON(data)
	case "Cargo.toml":
		rec, err = recordFromCargo(data)
	case "pyproject.toml":
		rec, err = recordFromPyproject(data)
	case "composer.json":
		rec, err = recordFromComposer(data)
	default:
		if src.Format == FormatTOML {
			rec, err = recordFromCargo(data)
		} else {
			rec, err = recordFromPackageJSON(data)
		}
	}
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	// Descriptors without a display-name concept fall back to the
	// package name.
	if rec.Name == "" {
		rec.Name = rec.ID
	}

	return &Descriptor{Path: path, Source: src, Record: rec}, nil
}

// recordFromPackageJSON maps package.json fields onto a Record. The
// author block may be an object with name/url keys or a plain string; a
// plain string fills Author and leaves AuthorURL empty.
func recordFromPackageJSON(data []byte) (Record, error) {
	if !gjson.ValidBytes(data) {
		return Record{}, fmt.Errorf("invalid JSON")
	}

	rec := Record{
		ID:          gjson.GetBytes(data, "name").String(),
		Name:        gjson.GetBytes(data, "displayName").String(),
		Description: gjson.GetBytes(data, "description").String(),
		License:     gjson.GetBytes(data, "license").String(),
		Version:     gjson.GetBytes(data, "version").String(),
	}

	author := gjson.GetBytes(data, "author")
	if author.IsObject() {
		rec.Author = author.Get("name").String()
		rec.AuthorURL = author.Get("url").String()
	} else {
		rec.Author = author.String()
	}

	return rec, nil
}

// recordFromComposer maps composer.json fields onto a Record. The first
// entry of the authors array supplies Author and AuthorURL; a license
// given as an array contributes its first entry.
func recordFromComposer(data []byte) (Record, error) {
	if !gjson.ValidBytes(data) {
		return Record{}, fmt.Errorf("invalid JSON")
	}

	rec := Record{
		ID:          gjson.GetBytes(data, "name").String(),
		Description: gjson.GetBytes(data, "description").String(),
		Version:     gjson.GetBytes(data, "version").String(),
	}

	if license := gjson.GetBytes(data, "license"); license.IsArray() {
		rec.License = license.Get("0").String()
	} else {
		rec.License = license.String()
	}

	author := gjson.GetBytes(data, "authors.0")
	rec.Author = author.Get("name").String()
	rec.AuthorURL = author.Get("homepage").String()

	return rec, nil
}

// recordFromCargo maps the [package] table of a Cargo.toml onto a
// Record. The first entry of the authors array fills Author with any
// trailing "<email>" part stripped, and the package homepage fills
// AuthorURL.
func recordFromCargo(data []byte) (Record, error) {
	var obj map[string]any
	if err := toml.Unmarshal(data, &obj); err != nil {
		return Record{}, err
	}

	rec := Record{
		ID:          nestedString(obj, "package.name"),
		Description: nestedString(obj, "package.description"),
		License:     nestedString(obj, "package.license"),
		Version:     nestedString(obj, "package.version"),
		AuthorURL:   nestedString(obj, "package.homepage"),
	}
	rec.Author = stripAuthorEmail(firstString(nestedValue(obj, "package.authors")))

	return rec, nil
}

// recordFromPyproject maps the [project] table of a pyproject.toml onto
// a Record. Authors follow PEP 621, an array of tables with name and
// email keys. The license may be a plain string or a table with a text
// key.
func recordFromPyproject(data []byte) (Record, error) {
	var obj map[string]any
	if err := toml.Unmarshal(data, &obj); err != nil {
		return Record{}, err
	}

	rec := Record{
		ID:          nestedString(obj, "project.name"),
		Description: nestedString(obj, "project.description"),
		Version:     nestedString(obj, "project.version"),
		AuthorURL:   nestedString(obj, "project.urls.Homepage"),
	}

	switch lic := nestedValue(obj, "project.license").(type) {
	case string:
		rec.License = lic
	case map[string]any:
		rec.License, _ = lic["text"].(string)
	}

	if authors, ok := nestedValue(obj, "project.authors").([]any); ok && len(authors) > 0 {
		if entry, ok := authors[0].(map[string]any); ok {
			rec.Author, _ = entry["name"].(string)
		}
	}

	return rec, nil
}

// nestedValue walks a decoded TOML document using dot notation and
// returns nil when any path segment is missing.
// Example: "package.name" accesses obj["package"]["name"]
func nestedValue(obj map[string]any, field string) any {
	current := any(obj)

	for _, part := range strings.Split(field, ".") {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil
		}

		current, ok = currentMap[part]
		if !ok {
			return nil
		}
	}

	return current
}

// nestedString returns the string at the dotted path, or "" when the
// path is missing or holds a non-string value.
func nestedString(obj map[string]any, field string) string {
	s, _ := nestedValue(obj, field).(string)
	return s
}

// firstString returns the first element of a decoded array when that
// element is a string.
func firstString(v any) string {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return ""
	}

	s, _ := items[0].(string)
	return s
}

// stripAuthorEmail removes a trailing "<email>" block from a
// Cargo-style author entry.
func stripAuthorEmail(author string) string {
	if i := strings.Index(author, "<"); i >= 0 {
		return strings.TrimSpace(author[:i])
	}
	return strings.TrimSpace(author)
}
