package wtree

import (
	"strings"

	"github.com/rivo/uniseg"
)

// wrapText breaks s into lines no wider than width, at line break
// opportunities. Segments that are wider than width by themselves are broken
// between grapheme clusters. Each line has at least one grapheme, so a
// width that is too small still terminates. Newlines always break.
func wrapText(f Font, s string, width int) []string {
	var lines []string
	for _, hard := range strings.Split(s, "\n") {
		lines = append(lines, wrapLine(f, hard, width)...)
	}
	return lines
}

func wrapLine(f Font, s string, width int) []string {
	if s == "" {
		return []string{""}
	}
	var lines []string
	line := ""
	state := -1
	rest := s
	for rest != "" {
		var seg string
		seg, rest, _, state = uniseg.FirstLineSegmentInString(rest, state)
		if f.StringSize(strings.TrimRight(line+seg, " ")).X <= width {
			line += seg
			continue
		}
		if line != "" {
			lines = append(lines, strings.TrimRight(line, " "))
			line = ""
		}
		if f.StringSize(strings.TrimRight(seg, " ")).X <= width {
			line = seg
			continue
		}
		// segment too wide by itself, break between graphemes
		g := uniseg.NewGraphemes(seg)
		for g.Next() {
			c := g.Str()
			if line != "" && f.StringSize(strings.TrimRight(line+c, " ")).X > width {
				lines = append(lines, strings.TrimRight(line, " "))
				line = ""
			}
			line += c
		}
	}
	return append(lines, strings.TrimRight(line, " "))
}

// textSegments returns the widest unbreakable segment and the widest line of s.
func textSegments(f Font, s string) (minWidth, natural int) {
	for _, hard := range strings.Split(s, "\n") {
		natural = maximum(natural, f.StringSize(hard).X)
		state := -1
		rest := hard
		for rest != "" {
			var seg string
			seg, rest, _, state = uniseg.FirstLineSegmentInString(rest, state)
			minWidth = maximum(minWidth, f.StringSize(strings.TrimRight(seg, " ")).X)
		}
	}
	return
}
