package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/chzyer/readline"

	"github.com/leonardinius/loxparse/internal/config"
	"github.com/leonardinius/loxparse/internal/token"
)

type lineReader interface {
	Readline() (string, error)
	Close() error
}

func (app *LoxApp) newReadline(cfg *config.Config) (lineReader, error) {
	items := make([]readline.PrefixCompleterInterface, 0, len(token.Keywords()))
	for _, keyword := range token.Keywords() {
		items = append(items, readline.PcItem(keyword))
	}

	rlCfg := &readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    readline.NewPrefixCompleter(items...),
		InterruptPrompt: "^C",
		Stdin:           app.stdin,
		Stdout:          app.stdout,
		Stderr:          app.stderr,
	}
	// Raw mode always targets the process terminal, leave it alone when
	// lines come from somewhere else.
	if app.stdin != os.Stdin {
		rlCfg.FuncIsTerminal = func() bool { return false }
		rlCfg.FuncMakeRaw = func() error { return nil }
		rlCfg.FuncExitRaw = func() error { return nil }
	}

	return readline.NewEx(rlCfg)
}

// runPrompt reads one line at a time until an empty line or EOF.
// Each line is an independent run: the error sink is reset after it.
func (app *LoxApp) runPrompt() error {
	rl, err := app.newLineReader(app.cfg)
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			return nil
		}

		app.run(line)
		app.reporter.Reset()
	}
}
