package scanner

const (
	// SeverityWarning indicates a recoverable traversal warning.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a non-fatal traversal error diagnostic.
	SeverityError Severity = "error"
)

// Diagnostic codes emitted by the scanner. Codes are stable identifiers so
// callers can branch on them without parsing messages.
const (
	// CodeRootMissing marks a scan root that does not exist or is not a
	// directory.
	CodeRootMissing = "root_missing"
	// CodeDirReadFailed marks a directory whose entries could not be listed.
	CodeDirReadFailed = "dir_read_failed"
	// CodeSpecialEntry marks an entry that is neither a regular file nor a
	// directory, such as a socket or broken symlink.
	CodeSpecialEntry = "special_entry"
	// CodeFileReadFailed marks a file whose content could not be read.
	CodeFileReadFailed = "file_read_failed"
)

type (
	// Severity represents traversal diagnostic severity.
	Severity string

	// Diagnostic represents a structured traversal problem. A diagnostic
	// never aborts the scan; the affected branch is skipped and the walk
	// continues.
	Diagnostic struct {
		// Severity is the diagnostic level (warning or error).
		Severity Severity
		// Code is a machine-readable identifier (e.g., "dir_read_failed").
		Code string
		// Message is the human-readable description.
		Message string
		// Path is the file or directory associated with this diagnostic.
		Path string
		// Cause is the underlying error (optional, for programmatic inspection).
		Cause error
	}
)

// NewDiagnostic builds a Diagnostic. Path and cause may be empty when the
// problem is not tied to a single filesystem entry.
func NewDiagnostic(severity Severity, code, message, path string, cause error) Diagnostic {
	return Diagnostic{
		Severity: severity,
		Code:     code,
		Message:  message,
		Path:     path,
		Cause:    cause,
	}
}
