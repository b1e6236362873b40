package scan

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/vvka-141/dbgrep/pkg/dbgrep"
)

// maxLineSize caps the line buffer for text files. Lines beyond this are a
// read error for that file, not a crash.
const maxLineSize = 1 << 20

// scanTextFile reads every line of a text file and returns one record per
// matched line, carrying the 1-based line number. At most one match is
// reported per line.
func (s *Scanner) scanTextFile(path string) ([]dbgrep.MatchRecord, error) {
	rc, err := s.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	lines, err := readLines(rc)
	if err != nil {
		return nil, err
	}

	var records []dbgrep.MatchRecord
	for i, line := range lines {
		start, end, ok := s.matcher.Find(line)
		if !ok {
			continue
		}
		m := dbgrep.TextMatch{
			File:    path,
			LineNum: i + 1,
			Line:    line,
			Start:   start,
			End:     end,
		}
		if s.cfg.ContextLines > 0 {
			m.Before, m.After = contextAround(lines, i, s.cfg.ContextLines)
		}
		records = append(records, m)
	}
	return records, nil
}

// readLines splits r into lines, sanitizing each one. Decoding is lenient:
// bytes that are not valid UTF-8 are dropped rather than failing the file.
func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sanitizeLine(sc.Bytes()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read failed: %w", err)
	}
	return lines, nil
}

// sanitizeLine drops bytes that do not form valid UTF-8. This is a
// deliberate policy: undecodable input is silently discarded so binary junk
// inside an otherwise-text file cannot abort the scan.
func sanitizeLine(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	out := make([]byte, 0, len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			b = b[1:]
			continue
		}
		out = append(out, b[:size]...)
		b = b[size:]
	}
	return string(out)
}

// contextAround collects up to n lines on each side of the match at idx.
func contextAround(lines []string, idx, n int) (before, after []dbgrep.ContextLine) {
	for i := idx - n; i < idx; i++ {
		if i < 0 {
			continue
		}
		before = append(before, dbgrep.ContextLine{LineNum: i + 1, Text: lines[i]})
	}
	for i := idx + 1; i <= idx+n && i < len(lines); i++ {
		after = append(after, dbgrep.ContextLine{LineNum: i + 1, Text: lines[i]})
	}
	return before, after
}
