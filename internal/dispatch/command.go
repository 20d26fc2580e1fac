package dispatch

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is the closed set of things one input line can mean. The
// dispatcher matches it exhaustively, so adding a command is a
// compile-time-checked change.
type Command interface {
	isCommand()
}

type ChatCmd struct{ Target string }
type ToggleCodeCmd struct{}
type ToggleCloakCmd struct{}
type LangCmd struct{ Name string }
type PhotoCmd struct{ Path string }
type HistoryCmd struct{ Limit int }
type BackCmd struct{}
type HelpCmd struct{}
type ExitCmd struct{}

// PlainCmd is a non-command line: a message for the active chat.
type PlainCmd struct{ Text string }

func (ChatCmd) isCommand()        {}
func (ToggleCodeCmd) isCommand()  {}
func (ToggleCloakCmd) isCommand() {}
func (LangCmd) isCommand()        {}
func (PhotoCmd) isCommand()       {}
func (HistoryCmd) isCommand()     {}
func (BackCmd) isCommand()        {}
func (HelpCmd) isCommand()        {}
func (ExitCmd) isCommand()        {}
func (PlainCmd) isCommand()       {}

const defaultHistoryLimit = 20

// CommandNames lists the slash commands, for completion and help.
func CommandNames() []string {
	return []string{
		"/chat", "/togglecode", "/togglecloak", "/lang",
		"/photo", "/history", "/back", "/help", "/exit",
	}
}

// ParseLine turns one input line into a Command. An empty line parses
// to nil. Lines starting with "/" must name a known command with the
// right arguments; anything else is a PlainCmd.
func ParseLine(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	if !strings.HasPrefix(line, "/") {
		return PlainCmd{Text: line}, nil
	}

	name, rest, _ := strings.Cut(line, " ")
	arg := strings.TrimSpace(rest)

	switch strings.ToLower(name) {
	case "/chat":
		if arg == "" {
			return nil, usageErr("/chat <username/phone>")
		}
		return ChatCmd{Target: arg}, nil
	case "/togglecode":
		return ToggleCodeCmd{}, nil
	case "/togglecloak":
		return ToggleCloakCmd{}, nil
	case "/lang":
		if arg == "" {
			return nil, usageErr("/lang <c|cpp|java|python>")
		}
		return LangCmd{Name: arg}, nil
	case "/photo":
		if arg == "" {
			return nil, usageErr("/photo <file_path>")
		}
		return PhotoCmd{Path: arg}, nil
	case "/history":
		limit := defaultHistoryLimit
		if arg != "" {
			n, err := strconv.Atoi(arg)
			if err != nil || n <= 0 {
				return nil, usageErr("/history [count]")
			}
			limit = n
		}
		return HistoryCmd{Limit: limit}, nil
	case "/back":
		return BackCmd{}, nil
	case "/help":
		return HelpCmd{}, nil
	case "/exit":
		return ExitCmd{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
}
