package manifest

// Record holds the identity fields shared between a package descriptor
// and manifest.json.
type Record struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Author      string `json:"author"`
	AuthorURL   string `json:"authorUrl"`
	License     string `json:"license"`
	Version     string `json:"version"`
}

// FieldNames lists the manifest keys backing a Record, in write order.
var FieldNames = []string{"id", "name", "description", "author", "authorUrl", "license", "version"}

// Field returns the record value stored under the given manifest key.
func (r Record) Field(name string) string {
	switch name {
	case "id":
		return r.ID
	case "name":
		return r.Name
	case "description":
		return r.Description
	case "author":
		return r.Author
	case "authorUrl":
		return r.AuthorURL
	case "license":
		return r.License
	case "version":
		return r.Version
	}
	return ""
}

// FieldDiff describes one manifest field whose value no longer matches
// the package descriptor.
type FieldDiff struct {
	Field   string
	Current string
	Want    string
}

// Diff compares the manifest record against the descriptor record and
// returns the fields that differ, in write order. An empty result means
// the manifest is in sync.
func Diff(current, want Record) []FieldDiff {
	var diffs []FieldDiff

	for _, name := range FieldNames {
		cur, w := current.Field(name), want.Field(name)
		if cur != w {
			diffs = append(diffs, FieldDiff{Field: name, Current: cur, Want: w})
		}
	}

	return diffs
}
