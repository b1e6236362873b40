package dbgrep

// Exit codes. The CLI surface defines exactly two outcomes:
//   - 0: scan completed (matches found or not)
//   - 1: missing path, invalid pattern, or any other unrecoverable error
const (
	ExitSuccess = 0 // Scan completed successfully
	ExitError   = 1 // Missing path or any uncaught top-level error
)

// Extensions routed to the database reader. Everything else recognized is
// read as text.
var databaseExtensions = map[string]struct{}{
	".db":      {},
	".sqlite":  {},
	".sqlite3": {},
}

// textExtensions are the line-based file types admitted during directory
// traversal.
var textExtensions = map[string]struct{}{
	".log":  {},
	".txt":  {},
	".sql":  {},
	".json": {},
	".csv":  {},
	".py":   {},
}

// DefaultExtensions returns the full set of recognized extensions, text and
// database alike. The returned map is a fresh copy; callers may modify it.
func DefaultExtensions() map[string]struct{} {
	exts := make(map[string]struct{}, len(textExtensions)+len(databaseExtensions))
	for ext := range textExtensions {
		exts[ext] = struct{}{}
	}
	for ext := range databaseExtensions {
		exts[ext] = struct{}{}
	}
	return exts
}

// IsDatabaseExtension reports whether files with the given extension are
// scanned through the database reader. The check is case-insensitive.
func IsDatabaseExtension(ext string) bool {
	_, ok := databaseExtensions[NormalizeExtension(ext)]
	return ok
}
