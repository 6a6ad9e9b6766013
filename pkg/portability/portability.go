// Package portability reads and writes the portable JSON snapshot of the
// diary entries.
package portability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"tableflip.dev/diary/pkg/entry"
)

// FormatVersion is stamped into every export.
const FormatVersion = "1.0.0"

var (
	// ErrInvalidFormat is returned for documents that do not carry a usable
	// diaryEntries array. Nothing is written when it is returned.
	ErrInvalidFormat = errors.New("portability: invalid export document")
	// ErrConflict is returned in ModeFail when an imported id already exists.
	ErrConflict = errors.New("portability: entry id already exists")
)

// Snapshot is the exported document.
type Snapshot struct {
	DiaryEntries []*entry.Entry `json:"diaryEntries"`
	ExportDate   string         `json:"exportDate"`
	Version      string         `json:"version"`
}

// Source lists the entries to export.
type Source interface {
	ListEntries(ctx context.Context) ([]*entry.Entry, error)
}

// Sink is where imported entries land.
type Sink interface {
	GetEntry(ctx context.Context, id string) (*entry.Entry, error)
	PutEntry(ctx context.Context, e *entry.Entry) error
}

// NewSnapshot collects every entry, newest first, into a Snapshot.
func NewSnapshot(ctx context.Context, src Source, now time.Time) (*Snapshot, error) {
	entries, err := src.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*entry.Entry{}
	}
	return &Snapshot{
		DiaryEntries: entries,
		ExportDate:   entry.FormatTime(now),
		Version:      FormatVersion,
	}, nil
}

// Export writes the snapshot of src to w as indented JSON and returns the
// number of entries written.
func Export(ctx context.Context, src Source, w io.Writer, now time.Time) (int, error) {
	snap, err := NewSnapshot(ctx, src, now)
	if err != nil {
		return 0, err
	}
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("marshal export: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return 0, fmt.Errorf("write export: %w", err)
	}
	return len(snap.DiaryEntries), nil
}

// FileName is the suggested download name for an export made at now.
func FileName(now time.Time) string {
	return fmt.Sprintf("个人成长日记_%d-%d-%d.json", now.Year(), int(now.Month()), now.Day())
}

// Mode selects what happens when an imported id is already stored.
type Mode string

const (
	// ModeSkip leaves stored entries untouched and reports the collision.
	ModeSkip Mode = "skip"
	// ModeFail aborts the whole import before anything is written.
	ModeFail Mode = "fail"
)

// ParseMode accepts "", "skip" and "fail".
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeSkip:
		return ModeSkip, nil
	case ModeFail:
		return ModeFail, nil
	}
	return "", fmt.Errorf("unsupported import mode %q (use skip or fail)", s)
}

// Options tune Import.
type Options struct {
	Mode   Mode
	DryRun bool
}

// Report summarizes an import.
type Report struct {
	Version   string   `json:"version,omitempty"`
	Total     int      `json:"total"`
	Inserted  int      `json:"inserted"`
	Skipped   int      `json:"skipped"`
	Conflicts []string `json:"conflicts,omitempty"`
	DryRun    bool     `json:"dryRun,omitempty"`
}

// Decode parses and validates an export document. Every entry must carry a
// usable id and a positive createdAt; a missing updatedAt takes createdAt.
func Decode(r io.Reader) (*Snapshot, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read import: %w", err)
	}
	var doc struct {
		DiaryEntries json.RawMessage `json:"diaryEntries"`
		ExportDate   string          `json:"exportDate"`
		Version      string          `json:"version"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	body := bytes.TrimSpace(doc.DiaryEntries)
	if len(body) == 0 || body[0] != '[' {
		return nil, fmt.Errorf("%w: diaryEntries must be an array", ErrInvalidFormat)
	}

	var entries []*entry.Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	for i, e := range entries {
		if e == nil {
			return nil, fmt.Errorf("%w: entry %d is null", ErrInvalidFormat, i)
		}
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidFormat, i, err)
		}
		if e.CreatedAt.Millis() <= 0 {
			return nil, fmt.Errorf("%w: entry %d: createdAt must be positive", ErrInvalidFormat, i)
		}
		if e.UpdatedAt.IsZero() {
			e.UpdatedAt = e.CreatedAt
		}
		e.Tags = entry.NormalizeTags(e.Tags)
	}
	return &Snapshot{DiaryEntries: entries, ExportDate: doc.ExportDate, Version: doc.Version}, nil
}

// Import merges snap into sink. Entries whose id is not stored are written
// with their original id and timestamps. Collisions follow opts.Mode; ids
// repeated inside the document collide with their first occurrence.
func Import(ctx context.Context, sink Sink, snap *Snapshot, opts Options) (*Report, error) {
	if snap == nil {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidFormat)
	}
	if opts.Mode == "" {
		opts.Mode = ModeSkip
	}
	report := &Report{Version: snap.Version, Total: len(snap.DiaryEntries), DryRun: opts.DryRun}

	seen := make(map[string]struct{}, len(snap.DiaryEntries))
	var fresh []*entry.Entry
	for _, e := range snap.DiaryEntries {
		if _, dup := seen[e.ID]; dup {
			report.Conflicts = append(report.Conflicts, e.ID)
			continue
		}
		seen[e.ID] = struct{}{}

		existing, err := sink.GetEntry(ctx, e.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			report.Conflicts = append(report.Conflicts, e.ID)
			continue
		}
		fresh = append(fresh, e)
	}
	report.Skipped = len(report.Conflicts)

	if opts.Mode == ModeFail && len(report.Conflicts) > 0 {
		return report, fmt.Errorf("%w: %s", ErrConflict, strings.Join(report.Conflicts, ", "))
	}
	if opts.DryRun {
		report.Inserted = len(fresh)
		return report, nil
	}
	for _, e := range fresh {
		if err := sink.PutEntry(ctx, e); err != nil {
			return report, err
		}
		report.Inserted++
	}
	return report, nil
}
