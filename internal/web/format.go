package web

import "strings"

type LineKind string

const (
	LineBlank    LineKind = "blank"
	LineText     LineKind = "text"
	LineListItem LineKind = "item"
	LineHeading  LineKind = "heading"
)

// Segment is a run of text; Bold runs were wrapped in ** in the source.
type Segment struct {
	Text string
	Bold bool
}

type Line struct {
	Kind     LineKind
	Segments []Segment
}

// FormatSection splits section content into display lines. A line starting
// with "-", "*" or "N." is a list item; any other line ending in ":" is a
// heading. Text between ** pairs is bold, and an unmatched ** leaves the rest
// of the line bold.
func FormatSection(content string) []Line {
	raw := strings.Split(content, "\n")
	lines := make([]Line, 0, len(raw))
	for _, l := range raw {
		trimmed := strings.TrimSpace(l)
		if trimmed == "" {
			lines = append(lines, Line{Kind: LineBlank})
			continue
		}

		kind := LineText
		switch {
		case isListItem(trimmed):
			kind = LineListItem
		case strings.HasSuffix(trimmed, ":"):
			kind = LineHeading
		}
		lines = append(lines, Line{Kind: kind, Segments: boldSegments(trimmed)})
	}
	return lines
}

func isListItem(s string) bool {
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "*") {
		return true
	}
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i > 0 && i < len(s) && s[i] == '.'
}

func boldSegments(s string) []Segment {
	parts := strings.Split(s, "**")
	segs := make([]Segment, 0, len(parts))
	for i, p := range parts {
		if p == "" {
			continue
		}
		segs = append(segs, Segment{Text: p, Bold: i%2 == 1})
	}
	return segs
}
