package pipeline

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/nao1215/neuroscan/internal/model"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/errgroup"
)

// DefaultWriteConcurrency is the number of files written at once when no
// limit is configured.
const DefaultWriteConcurrency = 2

// File is a generated file waiting to be written.
type File struct {
	// Path is relative to the output directory, slash separated.
	Path string

	// Data is the file content.
	Data []byte
}

// Fingerprint returns the hex BLAKE2b-256 digest of data.
func Fingerprint(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// FingerprintedPath inserts the first eight digest characters before the
// extension: "assets/app.css" becomes "assets/app.1a2b3c4d.css".
func FingerprintedPath(name string, data []byte) string {
	ext := path.Ext(name)
	return name[:len(name)-len(ext)] + "." + Fingerprint(data)[:8] + ext
}

// FileWriter writes many files into one directory concurrently.
// It uses errgroup to bound the number of goroutines.
type FileWriter struct {
	// dir is the output directory.
	dir string

	// concurrency is the maximum number of concurrent writes.
	concurrency int

	// logger is used for write-level logging.
	logger *slog.Logger

	// mu guards report updates made from worker goroutines.
	mu sync.Mutex
}

// WriterOption configures a FileWriter.
type WriterOption func(*FileWriter)

// WithWriterLogger sets a custom logger for the writer.
func WithWriterLogger(logger *slog.Logger) WriterOption {
	return func(w *FileWriter) {
		w.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent writes.
// Non-positive values keep the default.
func WithConcurrency(n int) WriterOption {
	return func(w *FileWriter) {
		if n > 0 {
			w.concurrency = n
		}
	}
}

// NewFileWriter creates a FileWriter for dir.
func NewFileWriter(dir string, opts ...WriterOption) *FileWriter {
	w := &FileWriter{
		dir:         dir,
		concurrency: DefaultWriteConcurrency,
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.logger == nil {
		w.logger = slog.Default()
	}

	return w
}

// WriteAll writes files concurrently and records each one in report.
// Each goroutine writes a distinct path. The first failure cancels the
// remaining writes and is returned.
func (w *FileWriter) WriteAll(ctx context.Context, files []File, report *model.BuildReport) error {
	w.logger.Debug("writing files",
		"total_files", len(files),
		"concurrency", w.concurrency,
	)

	startTime := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)

	for _, f := range files {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			out, err := w.write(f)
			if err != nil {
				return err
			}

			w.mu.Lock()
			report.AddFile(out)
			w.mu.Unlock()

			w.logger.Debug("file written",
				"path", out.Path,
				"size", out.Size,
				"hash", out.Hash,
			)
			return nil
		})
	}

	err := g.Wait()

	w.logger.Debug("files written",
		"total_files", len(files),
		"elapsed", time.Since(startTime),
	)

	return err
}

// Write writes a single file and records it in report.
func (w *FileWriter) Write(f File, report *model.BuildReport) error {
	out, err := w.write(f)
	if err != nil {
		return err
	}
	w.mu.Lock()
	report.AddFile(out)
	w.mu.Unlock()
	return nil
}

func (w *FileWriter) write(f File) (model.OutputFile, error) {
	target := filepath.Join(w.dir, filepath.FromSlash(f.Path))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil { //nolint:gosec // site output is world readable
		return model.OutputFile{}, fmt.Errorf("failed to create directory for %s: %w", f.Path, err)
	}
	if err := os.WriteFile(target, f.Data, 0o644); err != nil { //nolint:gosec // site output is world readable
		return model.OutputFile{}, fmt.Errorf("failed to write %s: %w", f.Path, err)
	}
	return model.OutputFile{
		Path: f.Path,
		Size: int64(len(f.Data)),
		Hash: Fingerprint(f.Data),
	}, nil
}
