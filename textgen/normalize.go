// ABOUTME: Post-processing of generated text: section line breaks, whitespace collapsing, and title extraction.
// ABOUTME: Normalize is idempotent; ExtractTitle folds full-width forms before matching.
package textgen

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// MaxTitleRunes bounds an extracted title.
const MaxTitleRunes = 40

// space matches Unicode whitespace, including the ideographic space U+3000.
const space = `[\s\p{Z}\x{85}]`

var (
	// A whitespace run followed by a "2)" or "3)" marker. The marker must
	// itself be followed by whitespace; breakSections checks that rune so it
	// stays available to the next match.
	sectionMarkerRE = regexp.MustCompile(space + `+[23]\)`)
	horizontalWSRE  = regexp.MustCompile(`[ \t]{2,}`)

	titleRE    = regexp.MustCompile(`1\)` + space + `*タイトル:` + space + `*([^\n/]+)`)
	titleCutRE = regexp.MustCompile(`(?:^|` + space + `+)2\)` + space + `*詳細:`)
)

// Normalize tidies model output. A response squeezed onto one line gets a
// line break before its 2) and 3) sections, and runs of spaces or tabs
// collapse to one space.
func Normalize(text string) string {
	t := strings.TrimSpace(text)
	t = breakSections(t)
	t = horizontalWSRE.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// breakSections replaces the whitespace before each "2) " or "3) " marker
// with a single newline.
func breakSections(t string) string {
	var b strings.Builder
	last := 0
	for _, loc := range sectionMarkerRE.FindAllStringIndex(t, -1) {
		next, _ := utf8.DecodeRuneInString(t[loc[1]:])
		if loc[1] == len(t) || !unicode.IsSpace(next) {
			continue
		}
		marker := loc[1] - len("2)")
		b.WriteString(t[last:loc[0]])
		b.WriteByte('\n')
		last = marker
	}
	if last == 0 {
		return t
	}
	b.WriteString(t[last:])
	return b.String()
}

// ExtractTitle returns the text after "1) タイトル:" up to a newline, a slash,
// or a following "2) 詳細:" marker, truncated to MaxTitleRunes. ok is false
// when there is no title line.
func ExtractTitle(text string) (title string, ok bool) {
	if text == "" {
		return "", false
	}

	m := titleRE.FindStringSubmatch(width.Fold.String(text))
	if m == nil {
		return "", false
	}

	title = strings.TrimSpace(m[1])
	if loc := titleCutRE.FindStringIndex(title); loc != nil {
		title = strings.TrimSpace(title[:loc[0]])
	}

	if runes := []rune(title); len(runes) > MaxTitleRunes {
		title = string(runes[:MaxTitleRunes])
	}
	return title, title != ""
}
