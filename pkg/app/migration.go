package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"tableflip.dev/diary/pkg/portability"
)

// Export writes every entry as a portable JSON document to w.
func (s *Service) Export(ctx context.Context, w io.Writer) (int, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	return portability.Export(ctx, s.Persistence, w, s.now())
}

// ExportFile writes the export into dir under the dated file name and returns
// the path written. An empty dir means the working directory.
func (s *Service) ExportFile(ctx context.Context, dir string) (string, int, error) {
	if err := s.ready(); err != nil {
		return "", 0, err
	}
	path := filepath.Join(dir, portability.FileName(s.now()))
	n, err := s.exportTo(ctx, path)
	if err != nil {
		return "", 0, err
	}
	return path, n, nil
}

// exportTo writes a temp file and renames it; path only ever holds a
// complete document.
func (s *Service) exportTo(ctx context.Context, path string) (n int, err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*")
	if err != nil {
		return 0, fmt.Errorf("create export: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if n, err = s.Export(ctx, tmp); err != nil {
		_ = tmp.Close()
		return 0, err
	}
	if err = tmp.Close(); err != nil {
		return 0, fmt.Errorf("close export: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return 0, fmt.Errorf("write export: %w", err)
	}
	return n, nil
}

// Import validates the whole document before merging it. A malformed
// document writes nothing.
func (s *Service) Import(ctx context.Context, r io.Reader, opts portability.Options) (*portability.Report, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	snap, err := portability.Decode(r)
	if err != nil {
		return nil, err
	}
	report, err := portability.Import(ctx, s.Persistence, snap, opts)
	if err != nil {
		return report, err
	}
	s.log().Info("app: import finished",
		"inserted", report.Inserted, "skipped", report.Skipped, "dryRun", report.DryRun)
	return report, nil
}

// ImportFile is Import reading from path.
func (s *Service) ImportFile(ctx context.Context, path string, opts portability.Options) (*portability.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open import: %w", err)
	}
	defer f.Close()
	return s.Import(ctx, f, opts)
}
