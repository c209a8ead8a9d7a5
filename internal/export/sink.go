package export

import (
	"fmt"
	"io"
	"strings"
)

// Sink collects output lines.
type Sink struct {
	lines []string
}

// Line appends text, splitting embedded newlines into separate lines.
func (s *Sink) Line(text string) {
	s.lines = append(s.lines, strings.Split(text, "\n")...)
}

// Linef appends a formatted line.
func (s *Sink) Linef(format string, args ...any) {
	s.Line(fmt.Sprintf(format, args...))
}

// Blank appends an empty line.
func (s *Sink) Blank() {
	s.lines = append(s.lines, "")
}

// Lines returns a copy of the collected lines.
func (s *Sink) Lines() []string {
	return append([]string(nil), s.lines...)
}

// Len returns the number of collected lines.
func (s *Sink) Len() int {
	return len(s.lines)
}

// WriteTo writes every line followed by a newline.
func (s *Sink) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range s.lines {
		n, err := io.WriteString(w, line+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
