package decor

import (
	"encoding/base64"
	"math/rand"
)

// Decorator is the outgoing-message decoration pipeline: emoji shortcut
// expansion followed by optional code-template wrapping. It performs no
// I/O; the random source is injected so template selection is
// deterministic under test.
type Decorator struct {
	table Table
	rng   *rand.Rand
}

func NewDecorator(table Table, rng *rand.Rand) *Decorator {
	return &Decorator{
		table: table,
		rng:   rng,
	}
}

// Emojify expands emoji shortcuts only.
func (d *Decorator) Emojify(text string) string {
	return d.table.Expand(text)
}

// Decorate runs the full pipeline. With codeMode off it is emoji
// expansion alone; with codeMode on the expanded text is embedded in a
// randomly selected template for lang.
func (d *Decorator) Decorate(text string, codeMode bool, lang Language) string {
	text = d.table.Expand(text)
	if !codeMode {
		return text
	}
	return WrapCode(d.rng, lang, text)
}

// Table exposes the shortcut table for completion.
func (d *Decorator) Table() Table {
	return d.table
}

// Cloak encodes text for local display in cloak mode. The encoding is
// plain base64, reversible on sight with any decoder.
func Cloak(text string) string {
	return "Encoded Phrase: " + base64.StdEncoding.EncodeToString([]byte(text))
}
