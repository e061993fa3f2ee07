package query

import "strings"

// MaxLabelLen is the number of characters shown before a title is cut.
const MaxLabelLen = 20

// Ellipsis marks a truncated label.
const Ellipsis = "..."

// Label returns the display label for title: the title itself when it has
// at most MaxLabelLen characters, otherwise its first MaxLabelLen characters
// followed by Ellipsis. The full title is left to the caller to expose.
func Label(title string) string {
	runes := []rune(title)
	if len(runes) <= MaxLabelLen {
		return title
	}
	return string(runes[:MaxLabelLen]) + Ellipsis
}

// Truncated reports whether Label(title) differs from title.
func Truncated(title string) bool {
	return len([]rune(title)) > MaxLabelLen
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// SingleLine replaces line breaks in title with spaces so it fits one row.
func SingleLine(title string) string {
	return lineBreaks.Replace(title)
}
