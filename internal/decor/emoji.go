package decor

import (
	"strings"

	"github.com/kyokomi/emoji/v2"
)

// Table maps shortcut tokens (with surrounding colons, e.g. ":smile:")
// to emoji glyphs.
type Table map[string]string

// curatedShortcuts is the built-in shortcut set. Entries here win over
// the extended table so the client's glyphs stay stable across
// dependency upgrades.
var curatedShortcuts = Table{
	":smile:":    "😊",
	":happy:":    "😀",
	":sad:":      "😔",
	":lol:":      "😂",
	":thumbsup:": "👍",
	":shrug:":    "🤷",
	":rocket:":   "🚀",
	":fire:":     "🔥",
	":cool:":     "😎",
	":hot:":      "🥵",
	":party:":    "🥳",

	":heart:":             "❤️",
	":broken_heart:":      "💔",
	":two_hearts:":        "💕",
	":sparkling_heart:":   "💖",
	":revolving_hearts:":  "💞",
	":cupid:":             "💘",
	":heartbeat:":         "💓",
	":heart_decoration:":  "💟",
	":love_letter:":       "💌",
	":kiss:":              "😘",
	":kiss-mark:":         "💋",
	":couple_with_heart:": "💑",

	":wink:":        "😉",
	":crying:":      "😢",
	":laughing:":    "😆",
	":star_struck:": "🤩",
	":thinking:":    "🤔",
	":tada:":        "🎉",
	":100:":         "💯",
	":eyes:":        "👀",
	":pray:":        "🙏",
	":ok_hand:":     "👌",
}

// NewTable returns the shortcut table. With extended set, the curated
// entries are merged over the full kyokomi shortcode map, so tokens like
// :sunflower: work without being listed here.
func NewTable(extended bool) Table {
	if !extended {
		t := make(Table, len(curatedShortcuts))
		for k, v := range curatedShortcuts {
			t[k] = v
		}
		return t
	}

	code := emoji.CodeMap()
	t := make(Table, len(code)+len(curatedShortcuts))
	for k, v := range code {
		if isShortcutToken(k) {
			t[k] = v
		}
	}
	for k, v := range curatedShortcuts {
		t[k] = v
	}
	return t
}

// isShortcutToken reports whether s has the ":word:" shape the
// completer and the expander agree on.
func isShortcutToken(s string) bool {
	if len(s) < 3 || s[0] != ':' || s[len(s)-1] != ':' {
		return false
	}
	for _, r := range s[1 : len(s)-1] {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-' || r == '+':
		default:
			return false
		}
	}
	return true
}

// Expand replaces every recognized shortcut token in s with its glyph.
// Matching is non-overlapping, left-to-right, and case-sensitive.
// Unrecognized tokens pass through unchanged.
func (t Table) Expand(s string) string {
	if !strings.Contains(s, ":") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	i := 0
	for i < len(s) {
		open := strings.IndexByte(s[i:], ':')
		if open < 0 {
			b.WriteString(s[i:])
			break
		}
		open += i
		b.WriteString(s[i:open])

		end := strings.IndexByte(s[open+1:], ':')
		if end < 0 {
			b.WriteString(s[open:])
			break
		}
		end += open + 1

		if glyph, ok := t[s[open:end+1]]; ok {
			b.WriteString(glyph)
			i = end + 1
			continue
		}

		// Not a shortcut. The closing colon may still open the next
		// token (":nope:smile:"), so rescan from it.
		b.WriteByte(':')
		i = open + 1
	}

	return b.String()
}

// Tokens returns all shortcut tokens, for completion.
func (t Table) Tokens() []string {
	tokens := make([]string, 0, len(t))
	for k := range t {
		tokens = append(tokens, k)
	}
	return tokens
}
