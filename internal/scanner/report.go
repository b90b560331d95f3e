package scanner

import "time"

// Match is a single signature hit. Line is the zero-based index of the
// matching line within the file.
type Match struct {
	Token string `json:"token"`
	Line  int    `json:"line"`
	Path  string `json:"path"`
}

// Report is the outcome of one scan: every match in walk order, the
// diagnostics collected along the way, and traversal counters.
type Report struct {
	Root         string
	Tokens       []string
	Matches      []Match
	Diagnostics  []Diagnostic
	FilesScanned int
	DirsVisited  int
	Duration     time.Duration
}

// HasMatches reports whether any signature token was found.
func (r *Report) HasMatches() bool {
	return len(r.Matches) > 0
}

// HasDiagnostics reports whether any traversal problem was recorded.
func (r *Report) HasDiagnostics() bool {
	return len(r.Diagnostics) > 0
}

func (r *Report) addDiagnostic(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
}
