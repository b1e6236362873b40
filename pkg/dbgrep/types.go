package dbgrep

import (
	"errors"
	"fmt"
	"strings"
)

// MatchRecord is one located occurrence of the search pattern. It is a tagged
// variant with exactly two concrete implementations: TextMatch for matches
// found in text-file lines, and DatabaseMatch for matches found in database
// cell segments. Records are immutable once created.
type MatchRecord interface {
	// Source returns the path of the file the match came from.
	Source() string

	// MatchedText returns the full line or cell segment containing the match.
	MatchedText() string

	// Span returns the byte offsets [start, end) of the match within MatchedText.
	Span() (start, end int)
}

// ContextLine is a single unmatched line surrounding a text match, carried
// when context display is requested.
type ContextLine struct {
	// LineNum is the 1-based line number within the source file
	LineNum int

	// Text is the sanitized line content
	Text string
}

// TextMatch is a match found in a line of a text file.
type TextMatch struct {
	// File is the path of the scanned file
	File string

	// LineNum is the 1-based line number of the matched line
	LineNum int

	// Line is the full sanitized text of the matched line
	Line string

	// Start and End are byte offsets of the match within Line
	Start int
	End   int

	// Before and After hold surrounding lines when context was requested;
	// both are nil otherwise
	Before []ContextLine
	After  []ContextLine
}

// Source returns the path of the scanned file.
func (m TextMatch) Source() string { return m.File }

// MatchedText returns the full matched line.
func (m TextMatch) MatchedText() string { return m.Line }

// Span returns the byte offsets of the match within the line.
func (m TextMatch) Span() (int, int) { return m.Start, m.End }

// DatabaseMatch is a match found in a cell segment of a database table.
type DatabaseMatch struct {
	// File is the path of the scanned database file
	File string

	// Table and Column locate the cell within the database
	Table  string
	Column string

	// Row is the 1-based row index in table order
	Row int

	// Segment is the cell segment (one logical line of the cell value)
	// containing the match
	Segment string

	// Start and End are byte offsets of the match within Segment
	Start int
	End   int
}

// Source returns the path of the scanned database file.
func (m DatabaseMatch) Source() string { return m.File }

// MatchedText returns the matched cell segment.
func (m DatabaseMatch) MatchedText() string { return m.Segment }

// Span returns the byte offsets of the match within the segment.
func (m DatabaseMatch) Span() (int, int) { return m.Start, m.End }

// ScanConfig contains all parameters needed for a scan. It is constructed
// once from command-line input and read-only for the duration of the scan.
type ScanConfig struct {
	// Keyword is the search term, literal or regular expression
	Keyword string

	// IsRegex interprets Keyword as a regular expression instead of a literal
	IsRegex bool

	// IgnoreCase makes every comparison case-insensitive
	IgnoreCase bool

	// FileTypeFilter restricts directory scans to a single extension
	// (e.g. ".log"). Empty means all supported extensions.
	FileTypeFilter string

	// SupportedExtensions is the set of extensions admitted during directory
	// traversal. Nil means DefaultExtensions().
	SupportedExtensions map[string]struct{}

	// ContextLines is the number of surrounding lines to display around each
	// text-file match
	ContextLines int
}

// Normalize fills defaults and canonicalizes user-supplied fields: the
// extension filter is lowercased and given a leading dot, and a nil extension
// set becomes DefaultExtensions(). Safe to call more than once.
func (c *ScanConfig) Normalize() {
	if c.SupportedExtensions == nil {
		c.SupportedExtensions = DefaultExtensions()
	}
	if c.FileTypeFilter != "" {
		c.FileTypeFilter = NormalizeExtension(c.FileTypeFilter)
	}
}

// Validate checks the ScanConfig for values that cannot produce a meaningful
// scan. It returns a multi-error when several fields are invalid.
func (c *ScanConfig) Validate() error {
	var errs []error

	if c.Keyword == "" {
		errs = append(errs, fmt.Errorf("keyword is required: %w", ErrInvalidConfig))
	}

	if c.ContextLines < 0 {
		errs = append(errs, fmt.Errorf("context lines cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// NormalizeExtension lowercases ext and ensures a leading dot, so ".LOG",
// "log" and ".log" all compare equal.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
