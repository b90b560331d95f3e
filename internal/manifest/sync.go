package manifest

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/falcion/sigscan/internal/core"
	"github.com/falcion/sigscan/internal/envfile"
)

// EnvLoaderFn loads an environment file into the process environment.
// It is a seam so tests can run without mutating the real environment.
type EnvLoaderFn func(path string) error

// Options configures a Syncer.
type Options struct {
	// Dir is the directory holding the descriptor, manifest.json and
	// .env. Empty means the current directory.
	Dir string
	// Package pins the descriptor file to use instead of probing
	// KnownSources. Relative names resolve inside Dir.
	Package string
	// Manifest overrides the manifest file name inside Dir. Empty
	// means manifest.json.
	Manifest string
	// DryRun reports what would change without writing anything.
	DryRun bool
}

// Result reports what a sync run found and did.
type Result struct {
	DescriptorPath  string
	ManifestPath    string
	Diffs           []FieldDiff
	CreatedEnv      bool
	CreatedManifest bool
	BackedUp        bool
	Wrote           bool
	DryRun          bool
}

// InSync reports whether the manifest already matched the descriptor.
func (r *Result) InSync() bool {
	return len(r.Diffs) == 0
}

// Syncer aligns manifest.json with the project's package descriptor.
type Syncer struct {
	fs      core.FileSystem
	reader  *Reader
	loadEnv EnvLoaderFn
	opts    Options
}

// NewSyncer creates a Syncer. A nil loader falls back to envfile.Load.
func NewSyncer(fs core.FileSystem, loadEnv EnvLoaderFn, opts Options) *Syncer {
	if loadEnv == nil {
		loadEnv = envfile.Load
	}
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Manifest == "" {
		opts.Manifest = ManifestFile
	}

	return &Syncer{
		fs:      fs,
		reader:  NewReader(fs),
		loadEnv: loadEnv,
		opts:    opts,
	}
}

// Sync runs the full synchronization pass: ensure the default .env and
// manifest.json exist, load .env into the process environment, read the
// descriptor and the manifest, and rewrite the manifest when the mapped
// fields drifted apart. The previous manifest bytes are copied to
// manifest-backup.json before any rewrite.
func (s *Syncer) Sync(ctx context.Context) (*Result, error) {
	res := &Result{
		ManifestPath: filepath.Join(s.opts.Dir, s.opts.Manifest),
		DryRun:       s.opts.DryRun,
	}

	envPath := filepath.Join(s.opts.Dir, EnvFile)

	var err error
	res.CreatedEnv, err = EnsureFile(ctx, s.fs, envPath, DefaultEnv)
	if err != nil {
		return nil, err
	}
	res.CreatedManifest, err = EnsureFile(ctx, s.fs, res.ManifestPath, DefaultManifest)
	if err != nil {
		return nil, err
	}

	if err := s.loadEnv(envPath); err != nil {
		return nil, err
	}

	desc, err := s.readDescriptor(ctx)
	if err != nil {
		return nil, err
	}
	res.DescriptorPath = desc.Path

	current, err := s.fs.ReadFile(ctx, res.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %q: %w", res.ManifestPath, err)
	}

	rec, err := RecordFromManifest(current)
	if err != nil {
		return nil, &ParseError{Path: res.ManifestPath, Err: err}
	}

	res.Diffs = Diff(rec, desc.Record)
	if res.InSync() || s.opts.DryRun {
		return res, nil
	}

	backupPath := filepath.Join(s.opts.Dir, BackupFile)
	if err := s.fs.WriteFile(ctx, backupPath, current, core.PermOwnerRW); err != nil {
		return nil, fmt.Errorf("failed to back up manifest to %q: %w", backupPath, err)
	}
	res.BackedUp = true

	updated, err := ApplyRecord(current, desc.Record)
	if err != nil {
		return nil, err
	}

	if err := s.fs.WriteFile(ctx, res.ManifestPath, updated, core.PermOwnerRW); err != nil {
		return nil, fmt.Errorf("failed to write manifest %q: %w", res.ManifestPath, err)
	}
	res.Wrote = true

	return res, nil
}

func (s *Syncer) readDescriptor(ctx context.Context) (*Descriptor, error) {
	if s.opts.Package == "" {
		return s.reader.Find(ctx, s.opts.Dir)
	}

	path := s.opts.Package
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.opts.Dir, path)
	}

	return s.reader.ReadFile(ctx, path)
}

// EnsureDefaults creates the default .env and manifest.json files in
// dir when they are missing. With force set, both files are replaced
// with their defaults regardless of what exists.
func EnsureDefaults(ctx context.Context, fs core.FileSystem, dir string, force bool) (createdEnv, createdManifest bool, err error) {
	if dir == "" {
		dir = "."
	}

	envPath := filepath.Join(dir, EnvFile)
	manifestPath := filepath.Join(dir, ManifestFile)

	if force {
		if err := ResetFile(ctx, fs, envPath, DefaultEnv); err != nil {
			return false, false, err
		}
		if err := ResetFile(ctx, fs, manifestPath, DefaultManifest); err != nil {
			return true, false, err
		}
		return true, true, nil
	}

	createdEnv, err = EnsureFile(ctx, fs, envPath, DefaultEnv)
	if err != nil {
		return false, false, err
	}

	createdManifest, err = EnsureFile(ctx, fs, manifestPath, DefaultManifest)
	if err != nil {
		return createdEnv, false, err
	}

	return createdEnv, createdManifest, nil
}
