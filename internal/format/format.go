// Package format implements the text formatting shared by all documentation elements:
// indentation, re-wrapping of prose and the final whitespace cleanup.
package format

import (
	"regexp"
	"strings"
)

// LineWidth is the maximum width of re-wrapped lines, padding included.
const LineWidth = 78

var (
	leadingSpacesRegex    = regexp.MustCompile(`^( +)`)
	whitespaceOnlyRegex   = regexp.MustCompile(`(?m)^[ \t\r\f\v]+$`)
	trailingSpacesRegex   = regexp.MustCompile(`(?m) +$`)
	leadingSpacesLineWise = regexp.MustCompile(`(?m)^ +`)
)

// Indent prefixes every line of text with the given number of spaces.
//
// If rewrap is true, the leading indentation of the first line is added to the padding,
// all lines are dedented and the text is word-wrapped to [LineWidth] minus the padding width.
// Empty text yields an empty string.
func Indent(text string, spaces int, rewrap bool) string {
	if text == "" {
		return ""
	}
	padding := strings.Repeat(" ", max(spaces, 0))
	if rewrap {
		if matches := leadingSpacesRegex.FindStringSubmatch(text); len(matches) > 1 {
			padding += matches[1]
		}
		text = leadingSpacesLineWise.ReplaceAllString(text, "")
		text = Wrap(text, LineWidth-len(padding))
	}
	lines := strings.Split(text, "\n")
	// A trailing newline terminates the last line, it does not open a new one.
	last := len(lines)
	if strings.HasSuffix(text, "\n") {
		last--
	}
	for i := range last {
		lines[i] = padding + lines[i]
	}
	return strings.Join(lines, "\n")
}

// Wrap breaks every line of text at spaces so that no line exceeds width characters.
// Existing line breaks are kept and words longer than width are never split.
func Wrap(text string, width int) string {
	if width < 1 {
		width = 1
	}
	lines := strings.Split(text, "\n")
	wrapped := make([]string, 0, len(lines))
	for _, line := range lines {
		wrapped = append(wrapped, wrapLine(line, width)...)
	}
	return strings.Join(wrapped, "\n")
}

func wrapLine(line string, width int) []string {
	if len(line) <= width {
		return []string{line}
	}
	words := strings.Split(line, " ")
	var (
		result  []string
		current = words[0]
	)
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= width {
			current += " " + word
			continue
		}
		result = append(result, current)
		current = word
	}
	return append(result, current)
}

// Normalize blanks out whitespace-only lines and strips trailing spaces from every line.
func Normalize(text string) string {
	text = whitespaceOnlyRegex.ReplaceAllString(text, "")
	return trailingSpacesRegex.ReplaceAllString(text, "")
}
