package ui

import (
	"sort"
	"strings"

	"github.com/rg/tgcli/internal/decor"
	"github.com/rg/tgcli/internal/dispatch"
)

// Completer provides context-aware completion: slash commands at the
// start of a line, language names after /lang, and emoji shortcuts
// anywhere a word starts with a colon. It implements readline's
// AutoCompleter interface.
type Completer struct {
	commands  []string
	languages []string
	shortcuts []string
}

func NewCompleter(table decor.Table) *Completer {
	shortcuts := table.Tokens()
	sort.Strings(shortcuts)

	return &Completer{
		commands:  dispatch.CommandNames(),
		languages: decor.LanguageNames(),
		shortcuts: shortcuts,
	}
}

func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	before := string(line[:pos])

	if strings.HasPrefix(before, "/") && !strings.Contains(before, " ") {
		return complete(c.commands, before)
	}

	if rest, ok := strings.CutPrefix(before, "/lang "); ok && !strings.Contains(rest, " ") {
		return complete(c.languages, rest)
	}

	word := lastWord(before)
	if strings.HasPrefix(word, ":") {
		return complete(c.shortcuts, word)
	}

	return nil, 0
}

// complete returns the suffixes of candidates that extend prefix, in
// the shape readline expects.
func complete(candidates []string, prefix string) ([][]rune, int) {
	var out [][]rune
	for _, cand := range candidates {
		if len(cand) > len(prefix) && strings.HasPrefix(cand, prefix) {
			out = append(out, []rune(cand[len(prefix):]))
		}
	}
	return out, len([]rune(prefix))
}

func lastWord(s string) string {
	if i := strings.LastIndexByte(s, ' '); i >= 0 {
		return s[i+1:]
	}
	return s
}
