package scan

import (
	"database/sql"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vvka-141/dbgrep/internal/match"
	"github.com/vvka-141/dbgrep/pkg/dbgrep"
)

// SQLiteReader scans SQLite database files: every table, every column,
// every non-null cell, with cell values split into logical lines before
// matching. The database is opened read-only and closed as soon as the
// file's scan completes.
type SQLiteReader struct {
	matcher *match.Matcher
}

// NewSQLiteReader creates a database reader using the given matcher.
// Panics if matcher is nil.
func NewSQLiteReader(matcher *match.Matcher) *SQLiteReader {
	if matcher == nil {
		panic("matcher cannot be nil")
	}
	return &SQLiteReader{matcher: matcher}
}

// ScanFile opens the database at path and returns one record per first
// match per cell segment, carrying the table name, column name, and 1-based
// row index. A table that fails to query is skipped without logging; the
// remaining tables are still scanned. An unopenable or unenumerable
// database is an error for the caller to log.
func (r *SQLiteReader) ScanFile(path string) ([]dbgrep.MatchRecord, error) {
	db, err := sql.Open("sqlite", readOnlyDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	tables, err := listTables(db)
	if err != nil {
		return nil, fmt.Errorf("enumerate tables: %w", err)
	}

	var records []dbgrep.MatchRecord
	for _, table := range tables {
		recs, err := r.scanTable(db, path, table)
		if err != nil {
			// One failing table does not spoil the database.
			continue
		}
		records = append(records, recs...)
	}
	return records, nil
}

// listTables returns user table names in declared order, excluding SQLite's
// internal tables.
func listTables(db *sql.DB) ([]string, error) {
	rows, err := db.Query(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// scanTable walks every row of one table in natural order and matches each
// cell segment.
func (r *SQLiteReader) scanTable(db *sql.DB, path, table string) ([]dbgrep.MatchRecord, error) {
	rows, err := db.Query(`SELECT * FROM ` + quoteIdent(table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var records []dbgrep.MatchRecord
	rowIdx := 0
	for rows.Next() {
		rowIdx++
		vals := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		for i, v := range vals {
			if v == nil {
				continue
			}
			for _, seg := range splitSegments(cellString(v)) {
				start, end, ok := r.matcher.Find(seg)
				if !ok {
					continue
				}
				records = append(records, dbgrep.DatabaseMatch{
					File:    path,
					Table:   table,
					Column:  cols[i],
					Row:     rowIdx,
					Segment: seg,
					Start:   start,
					End:     end,
				})
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// cellString renders a scanned cell value as text. BLOB content goes
// through the same lenient decoding as text files.
func cellString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return sanitizeLine(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}

// splitSegments breaks a cell value into logical lines. All line-break
// conventions collapse to \n before splitting.
func splitSegments(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// readOnlyDSN builds a read-only SQLite URI for path. The path is
// percent-escaped so filenames containing URI metacharacters (?, #) cannot
// corrupt the query string carrying mode=ro.
func readOnlyDSN(path string) string {
	escaped := (&url.URL{Path: path}).EscapedPath()
	return "file:" + escaped + "?mode=ro"
}

// quoteIdent quotes a SQLite identifier for interpolation into SQL. Table
// names come from sqlite_master, not from user input, but quoting keeps
// unusual names (spaces, keywords) working.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Verify SQLiteReader implements the interface at compile time
var _ DatabaseReader = (*SQLiteReader)(nil)
