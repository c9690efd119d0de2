package formatters

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Center pads text on the left so it sits in the middle of width columns.
// Width is measured in display cells. Text wider than width is returned
// unchanged.
func Center(text string, width int) string {
	textWidth := runewidth.StringWidth(text)
	if textWidth >= width {
		return text
	}
	return strings.Repeat(" ", (width-textWidth)/2) + text
}

// Underline returns a rule of ch as wide as text.
func Underline(text string, ch string) string {
	return strings.Repeat(ch, runewidth.StringWidth(text))
}
