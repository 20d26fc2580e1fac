package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/rg/tgcli/internal/session"
)

// Loop owns the readline instance: the prompt, line editing, and
// completion. Output written to Stdout() is synchronized with the
// prompt so asynchronous notifications don't garble the input line.
type Loop struct {
	rl    *readline.Instance
	state *session.State
	theme Theme
}

func NewLoop(state *session.State, completer *Completer, theme Theme) (*Loop, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}

	return &Loop{
		rl:    rl,
		state: state,
		theme: theme,
	}, nil
}

// Stdout returns the prompt-aware writer the console should print to.
func (l *Loop) Stdout() io.Writer {
	return l.rl.Stdout()
}

func (l *Loop) Close() error {
	return l.rl.Close()
}

// Run reads lines and feeds them to handle until it returns true, the
// user hits EOF, or interrupts an empty line.
func (l *Loop) Run(handle func(line string) bool) {
	for {
		l.rl.SetPrompt(l.prompt())

		line, err := l.rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return
			}
			continue
		}
		if err == io.EOF {
			return
		}

		if handle(line) {
			return
		}
	}
}

// prompt reflects the session state: active peer, language, and mode
// flags, e.g. "TG (JAVA) [CODE] > " or "Alice (C) > ".
func (l *Loop) prompt() string {
	snap := l.state.Snapshot()

	head := "TG"
	if snap.Target != nil {
		head = snap.Target.Name
	}

	var sb strings.Builder
	sb.WriteString(l.theme.PromptStatic.Render(
		fmt.Sprintf("%s (%s)", head, strings.ToUpper(string(snap.Language)))))
	if snap.CodeMode {
		sb.WriteString(" " + l.theme.PromptFlag.Render("[CODE]"))
	}
	if snap.CloakMode {
		sb.WriteString(" " + l.theme.PromptFlag.Render("[CLOAK]"))
	}
	sb.WriteString(" > ")
	return sb.String()
}
