package scan

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/go-faster/logtime/internal/compress"
)

// File scans single file into h, decompressing it by name extension.
func (s *Scanner) File(ctx context.Context, name string, h *Histogram) (rerr error) {
	f, err := os.Open(name) // #nosec G304
	if err != nil {
		return errors.Wrap(err, "open")
	}
	defer func() {
		multierr.AppendInto(&rerr, f.Close())
	}()

	m := compress.MethodOf(name)
	r, err := compress.NewReader(f, m)
	if err != nil {
		return errors.Wrap(err, "decompress")
	}
	defer func() {
		multierr.AppendInto(&rerr, r.Close())
	}()

	start := time.Now()
	if err := s.Scan(ctx, r, h); err != nil {
		return err
	}
	s.lg.Debug("Scanned",
		zap.String("file", name),
		zap.Stringer("compression", m),
		zap.Int64("lines", h.Lines),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

// Files scans files concurrently, returning merged Histogram.
func (s *Scanner) Files(ctx context.Context, names []string) (*Histogram, error) {
	var (
		mux    sync.Mutex
		result = &Histogram{}
		sem    = semaphore.NewWeighted(int64(s.opt.Workers))
	)
	g, gCtx := errgroup.WithContext(ctx)
	for _, name := range names {
		name := name
		if err := sem.Acquire(gCtx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)

			var h Histogram
			if err := s.File(gCtx, name, &h); err != nil {
				return errors.Wrap(err, name)
			}

			mux.Lock()
			result.Merge(&h)
			mux.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ScanFiles is shorthand for New(opt).Files(ctx, names).
func ScanFiles(ctx context.Context, names []string, opt Options) (*Histogram, error) {
	return New(opt).Files(ctx, names)
}
