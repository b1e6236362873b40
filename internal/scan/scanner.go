package scan

import (
	"fmt"
	"path/filepath"

	"github.com/vvka-141/dbgrep/internal/files/filesystem"
	"github.com/vvka-141/dbgrep/internal/match"
	"github.com/vvka-141/dbgrep/pkg/dbgrep"
)

// DatabaseReader scans one database file and returns its match records.
type DatabaseReader interface {
	ScanFile(path string) ([]dbgrep.MatchRecord, error)
}

// Scanner walks a root path and collects match records from every candidate
// file. It holds no state across files; scanning one file never affects
// another.
type Scanner struct {
	cfg     dbgrep.ScanConfig
	matcher *match.Matcher
	fs      filesystem.Provider
	db      DatabaseReader
	log     dbgrep.Logger
}

// New creates a Scanner over the OS filesystem with the SQLite database
// reader. The keyword is compiled once here; an invalid regular expression
// surfaces as dbgrep.ErrInvalidPattern.
func New(cfg dbgrep.ScanConfig, logger dbgrep.Logger) (*Scanner, error) {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	matcher, err := match.Compile(cfg.Keyword, cfg.IsRegex, cfg.IgnoreCase)
	if err != nil {
		return nil, err
	}

	return &Scanner{
		cfg:     cfg,
		matcher: matcher,
		fs:      filesystem.NewOSFileSystem(),
		db:      NewSQLiteReader(matcher),
		log:     logger,
	}, nil
}

// NewWithProviders creates a Scanner with a custom filesystem provider and
// database reader. This is primarily useful for testing.
// Panics if fs, db, or logger is nil.
func NewWithProviders(cfg dbgrep.ScanConfig, fs filesystem.Provider, db DatabaseReader, logger dbgrep.Logger) (*Scanner, error) {
	if fs == nil {
		panic("fs cannot be nil")
	}
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	matcher, err := match.Compile(cfg.Keyword, cfg.IsRegex, cfg.IgnoreCase)
	if err != nil {
		return nil, err
	}

	return &Scanner{
		cfg:     cfg,
		matcher: matcher,
		fs:      fs,
		db:      db,
		log:     logger,
	}, nil
}

// Scan enumerates candidate files under root and returns every match found,
// in file-visit order. A missing root is dbgrep.ErrPathNotFound; per-file
// failures are logged to the error stream and skipped.
func (s *Scanner) Scan(root string) ([]dbgrep.MatchRecord, error) {
	info, err := s.fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", dbgrep.ErrPathNotFound, root)
	}

	// A single-file root is always attempted, recognized extension or not.
	if !info.IsDir() {
		return s.scanFile(root), nil
	}

	var records []dbgrep.MatchRecord
	err = s.fs.Walk(root, func(path string, info filesystem.FileInfo, err error) error {
		if err != nil {
			s.log.Error("cannot access %s: %v", path, err)
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if !s.isCandidate(path) {
			return nil
		}
		records = append(records, s.scanFile(path)...)
		return nil
	})
	if err != nil {
		return records, fmt.Errorf("scan of %s failed: %w", root, err)
	}
	return records, nil
}

// scanFile dispatches one candidate by extension and absorbs its failures.
func (s *Scanner) scanFile(path string) []dbgrep.MatchRecord {
	s.log.Verbose("scanning %s", path)

	var records []dbgrep.MatchRecord
	var err error
	if dbgrep.IsDatabaseExtension(filepath.Ext(path)) {
		records, err = s.db.ScanFile(path)
	} else {
		records, err = s.scanTextFile(path)
	}
	if err != nil {
		s.log.Error("reading %s: %v", path, err)
		return nil
	}
	return records
}

// isCandidate applies the extension filter to files reached during a
// directory walk. The filter narrows the recognized set, never extends it:
// a filter outside the recognized extensions selects nothing. Single-file
// roots bypass this check.
func (s *Scanner) isCandidate(path string) bool {
	ext := dbgrep.NormalizeExtension(filepath.Ext(path))
	if _, ok := s.cfg.SupportedExtensions[ext]; !ok {
		return false
	}
	return s.cfg.FileTypeFilter == "" || ext == s.cfg.FileTypeFilter
}
