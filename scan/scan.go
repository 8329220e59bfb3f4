// Package scan implements histogram of log files by leading timestamp date.
package scan

import (
	"bufio"
	"context"
	"io"

	"github.com/go-faster/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/go-faster/logtime"
)

// Options for Scanner.
type Options struct {
	Logger *zap.Logger

	// MaxLineSize is maximum length of line. Longer lines fail the scan.
	// Non-positive means default.
	MaxLineSize int
	// Workers is maximum number of files scanned concurrently by ScanFiles.
	// Non-positive means default.
	Workers int

	// Since and Until are inclusive date bounds of accepted lines.
	// Zero value means no bound.
	Since logtime.Date
	Until logtime.Date
}

const (
	defaultMaxLineSize = 1024 * 1024 // 1MB
	defaultWorkers     = 4
)

func (o *Options) setDefaults() {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.MaxLineSize <= 0 {
		o.MaxLineSize = defaultMaxLineSize
	}
	if o.Workers <= 0 {
		o.Workers = defaultWorkers
	}
}

// Scanner aggregates log lines into Histogram.
//
// Scanner is safe for concurrent use, Histogram is not.
type Scanner struct {
	lg  *zap.Logger
	opt Options

	lines atomic.Int64
}

// New returns new Scanner.
func New(opt Options) *Scanner {
	opt.setDefaults()
	return &Scanner{
		lg:  opt.Logger,
		opt: opt,
	}
}

// Lines returns number of lines processed so far by all Scan calls.
func (s *Scanner) Lines() int64 {
	return s.lines.Load()
}

// ParseLine returns date of leading timestamp in line.
//
// Full DateTime is tried first, falling back to bare Date, so lines with
// date-only prefix are accepted too.
func ParseLine(line []byte) (logtime.Date, error) {
	if ts, err := logtime.ParseDateTimeBytes(line); err == nil {
		return ts.Date(), nil
	}
	return logtime.ParseDateBytes(line)
}

func (s *Scanner) inBounds(d logtime.Date) bool {
	if s.opt.Since.Valid() && d.Before(s.opt.Since) {
		return false
	}
	if s.opt.Until.Valid() && d.After(s.opt.Until) {
		return false
	}
	return true
}

// Line adds single line to h.
func (s *Scanner) Line(h *Histogram, line []byte) {
	s.lines.Inc()

	d, err := ParseLine(line)
	if err != nil {
		k, _ := logtime.KindOf(err)
		if ce := s.lg.Check(zap.DebugLevel, "Rejected"); ce != nil {
			ce.Write(
				zap.ByteString("line", line),
				zap.Stringer("kind", k),
				zap.Error(err),
			)
		}
		h.Reject(k)
		return
	}
	if !s.inBounds(d) {
		h.Filter()
		return
	}
	h.Add(d)
}

// Scan reads lines from r until EOF, adding them to h.
func (s *Scanner) Scan(ctx context.Context, r io.Reader, h *Histogram) error {
	size := 4096
	if s.opt.MaxLineSize < size {
		size = s.opt.MaxLineSize
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, size), s.opt.MaxLineSize)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Line(h, sc.Bytes())
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "scan")
	}
	return nil
}
