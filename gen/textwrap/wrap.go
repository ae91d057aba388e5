// Package textwrap reflows documentation text to a fixed column width.
//
// Break points are whitespace only: a word is never split, whatever its
// length. Renderers rely on this to keep atomic tokens (link markup,
// qualified call references) on one line — they join such tokens into a
// single whitespace-free word before wrapping.
package textwrap

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultWidth is the column width used for generated comments.
const DefaultWidth = 80

// Options controls one wrapping run.
type Options struct {
	// Width is the maximum line width in display cells; DefaultWidth when
	// zero. A line may exceed it only when a single word already does.
	Width int
	// InitialIndent is prepended to the first output line.
	InitialIndent string
	// SubsequentIndent is prepended to every following line.
	SubsequentIndent string
}

// Wrap greedily fills lines with whitespace-separated words. Whitespace
// runs in the input collapse to single spaces. Returns nil for text with
// no words, so callers emit nothing for blank input.
func Wrap(text string, opts Options) []string {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := opts.InitialIndent + words[0]

	for _, word := range words[1:] {
		if runewidth.StringWidth(current)+1+runewidth.StringWidth(word) > width {
			lines = append(lines, current)
			current = opts.SubsequentIndent + word
		} else {
			current += " " + word
		}
	}

	return append(lines, current)
}
