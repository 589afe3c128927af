package formatters

import (
	"html"
	"html/template"
	"regexp"
	"strings"
)

// Emphasis is a bit set describing how a span of text is displayed.
type Emphasis uint8

const (
	Plain  Emphasis = 0
	Bold   Emphasis = 1 << 0
	Italic Emphasis = 1 << 1
)

func (e Emphasis) String() string {
	switch e {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Bold | Italic:
		return "bold+italic"
	}
	return "unknown"
}

// Span is a contiguous run of text sharing one emphasis.
type Span struct {
	Text     string   `json:"text"`
	Emphasis Emphasis `json:"emphasis"`
}

var (
	boldPair   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPair = regexp.MustCompile(`\*([^*]+?)\*`)
)

// Emphasize expands lightweight inline markup into spans. "**text**" becomes
// bold first; "*text*" in what remains of the whole line becomes italic, so an
// italic pair may enclose a bold one. Matching is non-greedy and left to
// right. Unpaired asterisks and empty pairs such as "****" stay literal.
func Emphasize(line string) []Span {
	text, marks := strip(line, boldPair, Bold, nil)
	text, marks = strip(text, italicPair, Italic, marks)

	out := []Span{}
	for i := 0; i < len(text); {
		j := i + 1
		for j < len(text) && marks[j] == marks[i] {
			j++
		}
		out = append(out, Span{Text: text[i:j], Emphasis: marks[i]})
		i = j
	}
	return out
}

// strip removes the delimiters of every match of re from s and adds kind to
// the marks of the enclosed bytes. marks holds one Emphasis per byte of s and
// may be nil.
func strip(s string, re *regexp.Regexp, kind Emphasis, marks []Emphasis) (string, []Emphasis) {
	if marks == nil {
		marks = make([]Emphasis, len(s))
	}
	var b strings.Builder
	out := make([]Emphasis, 0, len(s))
	last := 0
	for _, m := range re.FindAllStringSubmatchIndex(s, -1) {
		b.WriteString(s[last:m[0]])
		out = append(out, marks[last:m[0]]...)
		b.WriteString(s[m[2]:m[3]])
		for _, e := range marks[m[2]:m[3]] {
			out = append(out, e|kind)
		}
		last = m[1]
	}
	b.WriteString(s[last:])
	out = append(out, marks[last:]...)
	return b.String(), out
}

// EmphasisHTML renders the spans of line as escaped inline markup.
func EmphasisHTML(line string) template.HTML {
	return SpansHTML(Emphasize(line))
}

// SpansHTML renders already expanded spans as escaped inline markup.
func SpansHTML(spans []Span) template.HTML {
	var b strings.Builder
	for _, s := range spans {
		text := html.EscapeString(s.Text)
		switch {
		case s.Emphasis&Bold != 0 && s.Emphasis&Italic != 0:
			b.WriteString("<strong><em>" + text + "</em></strong>")
		case s.Emphasis&Bold != 0:
			b.WriteString("<strong>" + text + "</strong>")
		case s.Emphasis&Italic != 0:
			b.WriteString("<em>" + text + "</em>")
		default:
			b.WriteString(text)
		}
	}
	return template.HTML(b.String())
}
