package fields

import (
	"regexp"
	"strings"
)

const (
	// lineTerminator at the end of an input line ends the current output line.
	lineTerminator = 0x14
	// maxQuotedOverflow is how far past the wrap width a double-quoted span may
	// run before it is wrapped anyway.
	maxQuotedOverflow = 160
)

// numberedStep matches step numbering at the start of a word: "2)" alone or
// glued to the first word as in "1.Heat".
var numberedStep = regexp.MustCompile(`^\d{1,2}[.):;]([A-Za-z]|$)`)

// ParagraphStarters reports words that open a new paragraph of directions.
type ParagraphStarters interface {
	IsParagraphStarter(word string) bool
}

// Directions joins wrapped direction text into sentences and re-wraps it at a
// fixed width. Paragraphs are separated by an empty line. One Directions value
// serves one recipe; Reset before reusing it.
type Directions struct {
	width    int
	starters ParagraphStarters

	fwos   bool // next word starts a sentence
	fwol   bool // next word starts an output line
	quoted bool
	buf    strings.Builder
	lines  []string
}

// NewDirections returns a formatter wrapping at width columns.
func NewDirections(width int, starters ParagraphStarters) *Directions {
	d := &Directions{width: width, starters: starters}
	d.Reset()
	return d
}

// Reset clears all state so the formatter can start a new recipe.
func (d *Directions) Reset() {
	d.fwos = true
	d.fwol = true
	d.quoted = false
	d.buf.Reset()
	d.lines = nil
}

// Add feeds one input line.
func (d *Directions) Add(line string) {
	terminate := false
	if n := len(line); n > 0 && line[n-1] == lineTerminator {
		line = line[:n-1]
		terminate = true
	}
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "~-") {
		d.breakLine()
		trimmed = strings.TrimSpace(trimmed[2:])
	}
	if trimmed == "" {
		if terminate {
			d.breakLine()
		} else {
			d.paragraph()
		}
		return
	}
	for _, word := range strings.Fields(trimmed) {
		d.word(word)
	}
	if terminate {
		d.breakLine()
	}
}

// Lines flushes buffered text and returns the formatted lines.
func (d *Directions) Lines() []string {
	d.breakLine()
	out := d.lines
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return append([]string(nil), out...)
}

func (d *Directions) word(w string) {
	if strings.Trim(w, "-") == "" {
		return
	}
	if d.fwos && numberedStep.MatchString(w) {
		d.breakLine()
		w = strings.TrimLeft(w, "0123456789")[1:]
		if w == "" {
			return
		}
	}
	switch {
	case strings.HasPrefix(w, "*"):
		d.paragraph()
	case d.fwos && !d.fwol && d.starters != nil && d.starters.IsParagraphStarter(w):
		d.paragraph()
	}
	d.append(w)
	d.fwos = endsSentence(w)
}

func (d *Directions) append(w string) {
	if !d.fwol {
		next := d.buf.Len() + 1 + len(w)
		limit := d.width
		if d.quoted {
			limit += maxQuotedOverflow
		}
		if next > limit {
			d.breakLine()
		}
	}
	if !d.fwol {
		d.buf.WriteByte(' ')
	}
	d.buf.WriteString(w)
	d.fwol = false
	if strings.Count(w, `"`)%2 == 1 {
		d.quoted = !d.quoted
	}
}

func (d *Directions) breakLine() {
	if d.buf.Len() > 0 {
		d.lines = append(d.lines, d.buf.String())
		d.buf.Reset()
	}
	d.fwol = true
}

func (d *Directions) paragraph() {
	d.breakLine()
	if n := len(d.lines); n > 0 && d.lines[n-1] != "" {
		d.lines = append(d.lines, "")
	}
	d.fwos = true
	d.quoted = false
}

func endsSentence(w string) bool {
	w = strings.TrimRight(w, `"')]`)
	if w == "" {
		return false
	}
	switch w[len(w)-1] {
	case '.', '!', '?':
		return true
	}
	return false
}
