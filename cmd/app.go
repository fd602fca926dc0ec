package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leonardinius/loxparse/internal/config"
	"github.com/leonardinius/loxparse/internal/loxerrors"
	"github.com/leonardinius/loxparse/internal/parser"
	"github.com/leonardinius/loxparse/internal/scanner"
)

// Version is set at build time.
var Version = "0.1.0"

// Exit codes, following sysexits.h.
const (
	ExitOK       = 0
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitNoInput  = 66
	ExitSoftware = 70
	ExitConfig   = 78
)

var (
	errUsage    = errors.New("Usage: loxparse [script]")
	errHadError = errors.New("source had errors")
	errNoInput  = errors.New("cannot read script")
	errConfig   = errors.New("invalid configuration")
)

type LoxApp struct {
	stdin    io.ReadCloser
	stdout   io.Writer
	stderr   io.Writer
	cfg      *config.Config
	logger   *slog.Logger
	reporter loxerrors.ErrReporter

	newLineReader func(cfg *config.Config) (lineReader, error)
}

func NewLoxApp(options ...AppOption) *LoxApp {
	app := &LoxApp{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	app.newLineReader = app.newReadline
	for _, opt := range options {
		opt(app)
	}
	return app
}

// Main runs the command line and returns the process exit code.
func (app *LoxApp) Main(args []string) int {
	root := app.newRootCmd()
	root.SetArgs(args)

	err := root.Execute()
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errHadError):
		// already reported line by line
		return ExitDataErr
	case errors.Is(err, errUsage):
		fmt.Fprintln(app.stderr, err)
		return ExitUsage
	case errors.Is(err, errNoInput):
		fmt.Fprintln(app.stderr, err)
		return ExitNoInput
	case errors.Is(err, errConfig):
		fmt.Fprintln(app.stderr, err)
		return ExitConfig
	default:
		fmt.Fprintln(app.stderr, err)
		return ExitSoftware
	}
}

func (app *LoxApp) newRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "loxparse [script]",
		Short: "Scan and parse Lox expressions",
		Long: `loxparse turns Lox expression source into tokens and a syntax tree.

With a script argument the whole file is processed once. Without one an
interactive prompt reads one line at a time until an empty line or EOF.`,
		Version: Version,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errUsage
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return fmt.Errorf("%w: %w", errConfig, err)
			}
			app.configure(cfg)
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 1 {
				return app.runFile(args[0])
			}
			return app.runPrompt()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetIn(app.stdin)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	flags := rootCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./loxparse.yaml)")
	flags.StringP("mode", "m", config.DefaultMode, "Output mode (tokens|ast|rpn|all)")
	flags.StringP("format", "f", config.DefaultFormat, "Token output format (text|table)")
	flags.Bool("sequence", false, "Parse a list of ';' terminated expressions")
	flags.BoolP("verbose", "v", false, "Verbose logging")
	flags.String("prompt", config.DefaultPrompt, "Interactive prompt")
	flags.String("history-file", "", "Interactive history file")

	_ = rootCmd.RegisterFlagCompletionFunc("mode", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.ModeTokens, config.ModeAST, config.ModeRPN, config.ModeAll}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.FormatText, config.FormatTable}, cobra.ShellCompDirectiveNoFileComp
	})

	return rootCmd
}

func (app *LoxApp) configure(cfg *config.Config) {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	app.cfg = cfg
	app.logger = slog.New(slog.NewTextHandler(app.stderr, &slog.HandlerOptions{Level: level}))
	app.reporter = loxerrors.NewErrReporter(app.stderr)

	if cfg.File != "" {
		app.logger.Debug("using config file", slog.String("path", cfg.File))
	}
}

func (app *LoxApp) runFile(scriptPath string) error {
	bytes, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("%w: %w", errNoInput, err)
	}

	app.run(string(bytes))

	if app.reporter.HadError() {
		return errHadError
	}
	return nil
}

// run pushes source through the scanner and the parser and prints the
// requested renderings. Errors go to the error sink; the caller inspects it.
func (app *LoxApp) run(source string) {
	s := scanner.NewScanner(source,
		scanner.WithErrorReporter(app.reporter),
		scanner.WithLogger(app.logger))

	// Lexical errors only drop the offending characters, parsing still runs.
	tokens, _ := s.Scan()

	if app.cfg.Mode == config.ModeTokens || app.cfg.Mode == config.ModeAll {
		app.printTokens(tokens)
	}
	if app.cfg.Mode == config.ModeTokens {
		return
	}

	p := parser.NewParser(tokens,
		parser.WithErrorReporter(app.reporter),
		parser.WithLogger(app.logger))

	if app.cfg.Sequence {
		exprs, err := p.ParseExpressions()
		if err != nil {
			return
		}
		for _, expr := range exprs {
			app.printExpr(expr)
		}
		return
	}

	expr, err := p.Parse()
	if err != nil {
		return
	}
	app.printExpr(expr)
}
