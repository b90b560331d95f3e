package scanner

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/falcion/sigscan/internal/core"
)

// Options configures a Scanner.
type Options struct {
	// Tokens is the signature token set to match. Nil selects
	// DefaultTokens; entries are normalized to uppercase.
	Tokens []string
	// Excludes is the set of directory names never descended into. Nil
	// selects DefaultExcludes; an empty slice disables exclusion.
	Excludes []string
}

// Scanner walks a directory tree depth-first and matches signature tokens
// against every line of every regular file. Files are read one at a time;
// there is no parallelism and no result caching between runs.
type Scanner struct {
	fs       core.FileSystem
	tokens   []string
	excludes []string
}

// New creates a Scanner backed by the given filesystem.
func New(fs core.FileSystem, opts Options) *Scanner {
	tokens := opts.Tokens
	if tokens == nil {
		tokens = DefaultTokens
	}
	excludes := opts.Excludes
	if excludes == nil {
		excludes = DefaultExcludes
	}
	return &Scanner{
		fs:       fs,
		tokens:   MergeTokens(tokens, nil),
		excludes: excludes,
	}
}

// Tokens returns the normalized token set this Scanner matches.
func (s *Scanner) Tokens() []string {
	return slices.Clone(s.tokens)
}

// Scan walks root and returns the report. Traversal problems are recorded
// as diagnostics on the report and never abort the walk; the returned error
// is reserved for context cancellation.
func (s *Scanner) Scan(ctx context.Context, root string) (*Report, error) {
	start := time.Now()
	report := &Report{
		Root:    root,
		Tokens:  slices.Clone(s.tokens),
		Matches: make([]Match, 0),
	}

	info, err := s.fs.Stat(ctx, root)
	switch {
	case err != nil && os.IsNotExist(err):
		report.addDiagnostic(NewDiagnostic(SeverityError, CodeRootMissing,
			"scan root does not exist", root, err))
	case err != nil:
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		report.addDiagnostic(NewDiagnostic(SeverityError, CodeDirReadFailed,
			"cannot stat scan root", root, err))
	case !info.IsDir():
		report.addDiagnostic(NewDiagnostic(SeverityError, CodeRootMissing,
			"scan root is not a directory", root, nil))
	default:
		if err := s.walkDirectory(ctx, root, report); err != nil {
			return nil, err
		}
	}

	report.Duration = time.Since(start)
	return report, nil
}

// walkDirectory processes one directory: subdirectories recurse depth-first,
// regular files are scanned in place. A special entry or an unreadable file
// abandons the remaining entries of that directory only; sibling branches
// already visited keep their results.
func (s *Scanner) walkDirectory(ctx context.Context, dir string, report *Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := s.fs.ReadDir(ctx, dir)
	if err != nil {
		report.addDiagnostic(NewDiagnostic(SeverityError, CodeDirReadFailed,
			"cannot read directory", dir, err))
		return nil
	}
	report.DirsVisited++

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if entry.IsDir() {
			if s.shouldExclude(name) {
				continue
			}
			if err := s.walkDirectory(ctx, path, report); err != nil {
				return err
			}
			continue
		}

		if !entry.Type().IsRegular() {
			report.addDiagnostic(NewDiagnostic(SeverityWarning, CodeSpecialEntry,
				"entry is neither a file nor a directory", path, nil))
			break
		}

		data, err := s.fs.ReadFile(ctx, path)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			report.addDiagnostic(NewDiagnostic(SeverityError, CodeFileReadFailed,
				"cannot read file", path, err))
			break
		}
		s.scanContent(path, string(data), report)
		report.FilesScanned++
	}

	return nil
}

// shouldExclude checks if a directory name is in the exclusion set.
func (s *Scanner) shouldExclude(name string) bool {
	return slices.Contains(s.excludes, name)
}

// scanContent matches every token against each line of content. The line is
// uppercased once and each token is tested with substring containment, so a
// token occurring twice on one line still yields a single match.
func (s *Scanner) scanContent(path, content string, report *Report) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		upper := strings.ToUpper(line)
		for _, tok := range s.tokens {
			if strings.Contains(upper, tok) {
				report.Matches = append(report.Matches, Match{Token: tok, Line: i, Path: path})
			}
		}
	}
}
