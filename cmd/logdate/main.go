// Binary logdate prints histogram of log lines per day of leading timestamp.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/go-faster/logtime"
	"github.com/go-faster/logtime/internal/app"
	"github.com/go-faster/logtime/scan"
)

type dateFlag struct {
	v logtime.Date
}

func (f *dateFlag) String() string {
	if !f.v.Valid() {
		return ""
	}
	return f.v.String()
}

func (f *dateFlag) Set(s string) error {
	if len(s) != logtime.DateLen {
		return errors.Errorf("expected %s layout", logtime.DateLayout)
	}
	return f.v.UnmarshalText([]byte(s))
}

func main() {
	var arg struct {
		Since   dateFlag
		Until   dateFlag
		Workers int
		Verbose bool
	}
	flag.Var(&arg.Since, "since", "first day to count (YYYY-MM-DD)")
	flag.Var(&arg.Until, "until", "last day to count (YYYY-MM-DD)")
	flag.IntVar(&arg.Workers, "j", 4, "files to scan concurrently")
	flag.BoolVar(&arg.Verbose, "v", false, "log rejected lines")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [file ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := zapcore.InfoLevel
	if arg.Verbose {
		level = zapcore.DebugLevel
	}
	app.Run(app.Options{Level: level}, func(ctx context.Context, lg *zap.Logger) error {
		if arg.Workers < 1 {
			return errors.Errorf("-j %d: at least one worker required", arg.Workers)
		}
		if arg.Since.v.Valid() && arg.Until.v.Valid() && arg.Until.v.Before(arg.Since.v) {
			return errors.Errorf("until %s is before since %s", arg.Until.v, arg.Since.v)
		}
		s := scan.New(scan.Options{
			Logger:  lg,
			Workers: arg.Workers,
			Since:   arg.Since.v,
			Until:   arg.Until.v,
		})

		start := time.Now()
		var h *scan.Histogram
		if flag.NArg() == 0 {
			h = &scan.Histogram{}
			if err := s.Scan(ctx, os.Stdin, h); err != nil {
				return errors.Wrap(err, "stdin")
			}
		} else {
			var err error
			if h, err = s.Files(ctx, flag.Args()); err != nil {
				return errors.Wrap(err, "scan")
			}
		}
		lg.Debug("Done",
			zap.Int("files", flag.NArg()),
			zap.Int64("lines", s.Lines()),
			zap.Duration("duration", time.Since(start)),
		)

		return h.WriteReport(os.Stdout)
	})
}
