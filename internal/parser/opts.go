package parser

import (
	"io"
	"log/slog"

	"github.com/leonardinius/loxparse/internal/loxerrors"
)

type parserOpts struct {
	reporter loxerrors.ErrReporter
	logger   *slog.Logger
}

type ParserOption func(*parserOpts)

// WithErrorReporter sets the sink syntax errors are reported to.
func WithErrorReporter(r loxerrors.ErrReporter) ParserOption {
	return func(opts *parserOpts) {
		opts.reporter = r
	}
}

func WithLogger(logger *slog.Logger) ParserOption {
	return func(opts *parserOpts) {
		opts.logger = logger
	}
}

func newParserOpts(options ...ParserOption) *parserOpts {
	opts := &parserOpts{}
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
