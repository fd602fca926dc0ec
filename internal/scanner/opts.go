package scanner

import (
	"io"
	"log/slog"

	"github.com/leonardinius/loxparse/internal/loxerrors"
)

type scannerOpts struct {
	reporter loxerrors.ErrReporter
	logger   *slog.Logger
}

type ScannerOption func(*scannerOpts)

// WithErrorReporter sets the sink lexical errors are reported to.
func WithErrorReporter(r loxerrors.ErrReporter) ScannerOption {
	return func(opts *scannerOpts) {
		opts.reporter = r
	}
}

func WithLogger(logger *slog.Logger) ScannerOption {
	return func(opts *scannerOpts) {
		opts.logger = logger
	}
}

func newScannerOpts(options ...ScannerOption) *scannerOpts {
	opts := &scannerOpts{}
	for _, opt := range options {
		opt(opts)
	}

	if opts.reporter == nil {
		opts.reporter = loxerrors.NewDiscardReporter()
	}
	if opts.logger == nil {
		opts.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return opts
}
