// Package repl is the interactive front of the compiler: it reads
// declarations line by line, checks them and keeps them for later commands.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mint-lang/mint/internal/parser"
	"github.com/peterh/liner"
)

const (
	BANNER      = "Mint REPL. Type :help for commands, :quit to leave."
	PROMPT_MAIN = "mint> "
	PROMPT_CONT = "  ... "
)

// Run drives a session on the terminal. History is read from and written to
// historyPath when it is not empty.
func Run(historyPath string) error {
	fmt.Println(BANNER)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	done := make(chan struct{})
	defer func() {
		signal.Stop(sigc)
		close(done)
	}()
	go watchSignals(sigc, done, func() {
		ln.Close()
		os.Exit(130)
	})

	session := NewSession(os.Stdout, os.Stderr)
	for {
		input, ok := readByParseProbe(ln, PROMPT_MAIN, PROMPT_CONT)
		if !ok {
			fmt.Println()
			return nil
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(input, "\n", " "))
		if session.Eval(input) {
			return nil
		}
	}
}

// watchSignals calls onSignal on the first signal, unless done is closed
// first
func watchSignals(sigc <-chan os.Signal, done <-chan struct{}, onSignal func()) {
	select {
	case <-sigc:
		onSignal()
	case <-done:
	}
}

// readByParseProbe keeps prompting while the input so far fails to parse only
// because it ended too early. ok is false at end of input.
func readByParseProbe(ln *liner.State, prompt, cont string) (input string, ok bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if !NeedsMore(src) {
			return src, true
		}
	}
}

// NeedsMore reports whether src is source that would parse with more lines
func NeedsMore(src string) bool {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" || strings.HasPrefix(trimmed, ":") {
		return false
	}
	_, err := parser.ParseFrom(src)
	return parser.IsIncomplete(err)
}
