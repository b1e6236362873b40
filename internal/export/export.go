// Package export writes scan results to a file. The format is chosen by the
// destination's extension: .csv, .json, .yaml/.yml, and plain text for
// anything else.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/dbgrep/pkg/dbgrep"
)

// Document is the exported representation of one scan run.
type Document struct {
	RunID       string    `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Keyword     string    `json:"keyword" yaml:"keyword"`
	Total       int       `json:"total" yaml:"total"`
	Records     []Record  `json:"records" yaml:"records"`
}

// Record is the flattened form of a match. Line is set for text matches;
// Table, Column and Row are set for database matches. Exactly one of the
// two groups is populated, mirroring the MatchRecord variants.
type Record struct {
	File   string `json:"file" yaml:"file"`
	Table  string `json:"table,omitempty" yaml:"table,omitempty"`
	Column string `json:"column,omitempty" yaml:"column,omitempty"`
	Row    int    `json:"row,omitempty" yaml:"row,omitempty"`
	Line   int    `json:"line,omitempty" yaml:"line,omitempty"`
	Text   string `json:"text" yaml:"text"`
	Start  int    `json:"start" yaml:"start"`
	End    int    `json:"end" yaml:"end"`
}

// NewDocument builds a Document for the given results, stamped with a fresh
// run ID and the current time. Zero matches yield an empty but valid
// document.
func NewDocument(keyword string, records []dbgrep.MatchRecord) Document {
	doc := Document{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Keyword:     keyword,
		Total:       len(records),
		Records:     make([]Record, 0, len(records)),
	}
	for _, rec := range records {
		doc.Records = append(doc.Records, flatten(rec))
	}
	return doc
}

func flatten(rec dbgrep.MatchRecord) Record {
	start, end := rec.Span()
	out := Record{
		File:  rec.Source(),
		Text:  rec.MatchedText(),
		Start: start,
		End:   end,
	}
	switch m := rec.(type) {
	case dbgrep.TextMatch:
		out.Line = m.LineNum
	case dbgrep.DatabaseMatch:
		out.Table = m.Table
		out.Column = m.Column
		out.Row = m.Row
	}
	return out
}

// Write persists doc to path, choosing the encoding from the path's
// extension. All failures wrap dbgrep.ErrExportFailed.
func Write(path string, doc Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", dbgrep.ErrExportFailed, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		err = writeCSV(f, doc)
	case ".json":
		err = writeJSON(f, doc)
	case ".yaml", ".yml":
		err = writeYAML(f, doc)
	default:
		err = writeText(f, doc)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", dbgrep.ErrExportFailed, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", dbgrep.ErrExportFailed, err)
	}
	return nil
}

func writeCSV(w io.Writer, doc Document) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"file", "table", "column", "row", "line", "text", "start", "end"}); err != nil {
		return err
	}
	for _, r := range doc.Records {
		row := []string{
			r.File,
			r.Table,
			r.Column,
			optionalInt(r.Row),
			optionalInt(r.Line),
			r.Text,
			strconv.Itoa(r.Start),
			strconv.Itoa(r.End),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func writeYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

func writeText(w io.Writer, doc Document) error {
	if _, err := fmt.Fprintf(w, "# dbgrep run %s generated %s\n",
		doc.RunID, doc.GeneratedAt.Format(time.RFC3339)); err != nil {
		return err
	}
	for _, r := range doc.Records {
		if _, err := fmt.Fprintf(w, "%s %s\n", textLocation(r), r.Text); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nTotal matches found: %d\n", doc.Total)
	return err
}

// textLocation mirrors the display prefix: [basename:line] for text
// matches, [basename:table.column:rowN] for database matches.
func textLocation(r Record) string {
	base := filepath.Base(r.File)
	if r.Line > 0 {
		return fmt.Sprintf("[%s:%d]", base, r.Line)
	}
	return fmt.Sprintf("[%s:%s.%s:row%d]", base, r.Table, r.Column, r.Row)
}

func optionalInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
