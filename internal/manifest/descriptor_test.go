package manifest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/falcion/sigscan/internal/core"
)

func TestReaderFindPackageJSON(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/project/package.json", []byte(`{
		"name": "sigscan",
		"displayName": "Signature Scanner",
		"description": "Scans trees for signature tokens",
		"author": {"name": "Falcion", "url": "https://example.com/falcion"},
		"license": "MIT",
		"version": "1.2.3"
	}`))

	desc, err := NewReader(fs).Find(context.Background(), "/project")
	if err != nil {
		t.Fatalf("Find() returned error: %v", err)
	}

	if desc.Path != "/project/package.json" {
		t.Errorf("Path = %q, want %q", desc.Path, "/project/package.json")
	}

	want := Record{
		ID:          "sigscan",
		Name:        "Signature Scanner",
		Description: "Scans trees for signature tokens",
		Author:      "Falcion",
		AuthorURL:   "https://example.com/falcion",
		License:     "MIT",
		Version:     "1.2.3",
	}
	if desc.Record != want {
		t.Errorf("Record = %+v, want %+v", desc.Record, want)
	}
}

func TestReaderAuthorAsString(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/project/package.json", []byte(`{"name": "sigscan", "author": "Falcion"}`))

	desc, err := NewReader(fs).Find(context.Background(), "/project")
	if err != nil {
		t.Fatalf("Find() returned error: %v", err)
	}

	if desc.Record.Author != "Falcion" {
		t.Errorf("Author = %q, want %q", desc.Record.Author, "Falcion")
	}
	if desc.Record.AuthorURL != "" {
		t.Errorf("AuthorURL = %q, want empty", desc.Record.AuthorURL)
	}
}

func TestReaderNameFallsBackToID(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/project/package.json", []byte(`{"name": "sigscan", "version": "0.1.0"}`))

	desc, err := NewReader(fs).Find(context.Background(), "/project")
	if err != nil {
		t.Fatalf("Find() returned error: %v", err)
	}

	if desc.Record.Name != "sigscan" {
		t.Errorf("Name = %q, want fallback to %q", desc.Record.Name, "sigscan")
	}
}

func TestReaderProbeOrder(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/project/Cargo.toml", []byte("[package]\nname = \"from-cargo\"\n"))
	fs.SetFile("/project/package.json", []byte(`{"name": "from-package-json"}`))

	desc, err := NewReader(fs).Find(context.Background(), "/project")
	if err != nil {
		t.Fatalf("Find() returned error: %v", err)
	}

	if desc.Record.ID != "from-package-json" {
		t.Errorf("ID = %q, want package.json to win the probe", desc.Record.ID)
	}
}

func TestReaderCargo(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/project/Cargo.toml", []byte(`[package]
name = "sigscan"
version = "0.4.2"
description = "Signature scanner"
license = "MIT OR Apache-2.0"
homepage = "https://example.com/sigscan"
authors = ["Jane Doe <jane@example.com>"]
`))

	desc, err := NewReader(fs).Find(context.Background(), "/project")
	if err != nil {
		t.Fatalf("Find() returned error: %v", err)
	}

	want := Record{
		ID:          "sigscan",
		Name:        "sigscan",
		Description: "Signature scanner",
		Author:      "Jane Doe",
		AuthorURL:   "https://example.com/sigscan",
		License:     "MIT OR Apache-2.0",
		Version:     "0.4.2",
	}
	if desc.Record != want {
		t.Errorf("Record = %+v, want %+v", desc.Record, want)
	}
}

func TestReaderPyproject(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/project/pyproject.toml", []byte(`[project]
name = "sigscan"
version = "1.2.3"
description = "Signature scanner"
authors = [{name = "Jane Doe", email = "jane@example.com"}]
license = {text = "Apache-2.0"}

[project.urls]
Homepage = "https://example.com/sigscan"
`))

	desc, err := NewReader(fs).Find(context.Background(), "/project")
	if err != nil {
		t.Fatalf("Find() returned error: %v", err)
	}

	want := Record{
		ID:          "sigscan",
		Name:        "sigscan",
		Description: "Signature scanner",
		Author:      "Jane Doe",
		AuthorURL:   "https://example.com/sigscan",
		License:     "Apache-2.0",
		Version:     "1.2.3",
	}
	if desc.Record != want {
		t.Errorf("Record = %+v, want %+v", desc.Record, want)
	}
}

func TestReaderComposer(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/project/composer.json", []byte(`{
		"name": "falcion/sigscan",
		"description": "Signature scanner",
		"license": ["MIT", "GPL-2.0-only"],
		"version": "2.0.0",
		"authors": [{"name": "Jane Doe", "homepage": "https://example.com/jane"}]
	}`))

	desc, err := NewReader(fs).Find(context.Background(), "/project")
	if err != nil {
		t.Fatalf("Find() returned error: %v", err)
	}

	want := Record{
		ID:          "falcion/sigscan",
		Name:        "falcion/sigscan",
		Description: "Signature scanner",
		Author:      "Jane Doe",
		AuthorURL:   "https://example.com/jane",
		License:     "MIT",
		Version:     "2.0.0",
	}
	if desc.Record != want {
		t.Errorf("Record = %+v, want %+v", desc.Record, want)
	}
}

func TestReaderNotFound(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetDir("/project")

	_, err := NewReader(fs).Find(context.Background(), "/project")

	var notFound *DescriptorNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected DescriptorNotFoundError, got %v", err)
	}
	if notFound.Dir != "/project" {
		t.Errorf("Dir = %q, want %q", notFound.Dir, "/project")
	}
	if !strings.Contains(notFound.Suggestion(), "package.json") {
		t.Errorf("Suggestion() should mention package.json, got %q", notFound.Suggestion())
	}
}

func TestReaderInvalidJSON(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/project/package.json", []byte("{not json"))

	_, err := NewReader(fs).Find(context.Background(), "/project")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.Path != "/project/package.json" {
		t.Errorf("Path = %q, want %q", parseErr.Path, "/project/package.json")
	}
}

func TestReaderInvalidTOML(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/project/Cargo.toml", []byte("[package\nname ="))

	_, err := NewReader(fs).Find(context.Background(), "/project")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if errors.Unwrap(parseErr) == nil {
		t.Error("ParseError should wrap the decoder error")
	}
}

func TestReaderReadFileCustomName(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/project/descriptor.toml", []byte(`[package]
name = "pinned"
version = "3.0.0"
`))

	desc, err := NewReader(fs).ReadFile(context.Background(), "/project/descriptor.toml")
	if err != nil {
		t.Fatalf("ReadFile() returned error: %v", err)
	}

	if desc.Source.Format != FormatTOML {
		t.Errorf("Format = %q, want %q", desc.Source.Format, FormatTOML)
	}
	if desc.Record.ID != "pinned" {
		t.Errorf("ID = %q, want %q", desc.Record.ID, "pinned")
	}
}

func TestSourceForFile(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"package.json", FormatJSON},
		{"Cargo.toml", FormatTOML},
		{"pyproject.toml", FormatTOML},
		{"composer.json", FormatJSON},
		{"custom.toml", FormatTOML},
		{"custom.json", FormatJSON},
		{"no-extension", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := sourceForFile(tt.filename); got.Format != tt.want {
				t.Errorf("sourceForFile(%q).Format = %q, want %q", tt.filename, got.Format, tt.want)
			}
		})
	}
}
