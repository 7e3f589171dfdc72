package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cardcycle/cardcycle/internal/calendar"
)

// DayLogDocumentVersion is the current export format version.
const DayLogDocumentVersion = 1

// ErrLogNotEmpty is returned when importing into a store that already has
// day log entries.
var ErrLogNotEmpty = errors.New("store: day log is not empty")

// DayLogDocument is the portable form of the day log.
type DayLogDocument struct {
	Version       int       `json:"version" yaml:"version"`
	ExportedAt    time.Time `json:"exported_at" yaml:"exported_at"`
	CompletedDays []string  `json:"completed_days" yaml:"completed_days"`
	SkippedDays   []string  `json:"skipped_days" yaml:"skipped_days"`
}

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FormatForPath picks the document format from a file extension. Anything
// other than .yaml or .yml is JSON.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Export captures the whole day log.
func (r *DayLogRepo) Export(ctx context.Context) (*DayLogDocument, error) {
	doc := &DayLogDocument{
		Version:       DayLogDocumentVersion,
		ExportedAt:    time.Now().UTC().Truncate(time.Second),
		CompletedDays: []string{},
		SkippedDays:   []string{},
	}
	entries, err := r.Entries(ctx, QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("export day log: %w", err)
	}
	for _, e := range entries {
		switch e.Kind {
		case KindCompleted:
			doc.CompletedDays = append(doc.CompletedDays, e.Day)
		case KindSkipped:
			doc.SkippedDays = append(doc.SkippedDays, e.Day)
		}
	}
	return doc, nil
}

// Import appends every day of doc to an empty log. The document is fully
// validated before anything is written, and the appends share one
// transaction: a failure leaves the log as it was.
func (r *DayLogRepo) Import(ctx context.Context, doc *DayLogDocument) error {
	completed, skipped, err := doc.Days()
	if err != nil {
		return err
	}

	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("import day log: begin: %w", err)
	}
	defer tx.Rollback() // No-op once committed

	n, err := r.lenIn(ctx, tx)
	if err != nil {
		return fmt.Errorf("import day log: %w", err)
	}
	if n > 0 {
		return ErrLogNotEmpty
	}

	for _, d := range completed {
		if err := r.appendIn(ctx, tx, KindCompleted, d); err != nil {
			return fmt.Errorf("import day log: %w", err)
		}
	}
	for _, d := range skipped {
		if err := r.appendIn(ctx, tx, KindSkipped, d); err != nil {
			return fmt.Errorf("import day log: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("import day log: commit: %w", err)
	}
	return nil
}

// Days parses and validates the document's days: each must be well formed
// and appear at most once across both lists.
func (doc *DayLogDocument) Days() (completed, skipped []calendar.Day, err error) {
	if doc.Version != DayLogDocumentVersion {
		return nil, nil, fmt.Errorf("unsupported day log version %d (want %d)", doc.Version, DayLogDocumentVersion)
	}

	seen := make(map[calendar.Day]string)
	parse := func(list []string, kind string) ([]calendar.Day, error) {
		days := make([]calendar.Day, 0, len(list))
		for _, s := range list {
			d, err := calendar.Parse(s)
			if err != nil {
				return nil, err
			}
			if prev, ok := seen[d]; ok {
				return nil, fmt.Errorf("day %s listed as %s and %s", d, prev, kind)
			}
			seen[d] = kind
			days = append(days, d)
		}
		return days, nil
	}

	if completed, err = parse(doc.CompletedDays, KindCompleted); err != nil {
		return nil, nil, err
	}
	if skipped, err = parse(doc.SkippedDays, KindSkipped); err != nil {
		return nil, nil, err
	}
	return completed, skipped, nil
}

// EncodeDayLogAs writes doc in format.
func EncodeDayLogAs(w io.Writer, doc *DayLogDocument, format string) error {
	switch format {
	case FormatJSON, "":
		return EncodeDayLog(w, doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode day log: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown day log format %q", format)
	}
}

// DecodeDayLogAs reads a document written by EncodeDayLogAs.
func DecodeDayLogAs(rd io.Reader, format string) (*DayLogDocument, error) {
	switch format {
	case FormatJSON, "":
		return DecodeDayLog(rd)
	case FormatYAML:
		var doc DayLogDocument
		if err := yaml.NewDecoder(rd).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode day log: %w", err)
		}
		return &doc, nil
	default:
		return nil, fmt.Errorf("unknown day log format %q", format)
	}
}

// EncodeDayLog writes doc as indented JSON.
func EncodeDayLog(w io.Writer, doc *DayLogDocument) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode day log: %w", err)
	}
	return nil
}

// DecodeDayLog reads a document written by EncodeDayLog.
func DecodeDayLog(rd io.Reader) (*DayLogDocument, error) {
	var doc DayLogDocument
	if err := json.NewDecoder(rd).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode day log: %w", err)
	}
	return &doc, nil
}
