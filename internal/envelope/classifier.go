package envelope

import "strings"

// Kind classifies one input line.
type Kind int

const (
	// Content is a line that may belong to a recipe.
	Content Kind = iota
	// GroupBreak is a digest divider or horizontal rule.
	GroupBreak
	// Boundary is a MIME multipart boundary or the header announcing one.
	Boundary
	// Header is an e-mail or news header line of the current message.
	Header
)

func (k Kind) String() string {
	switch k {
	case GroupBreak:
		return "group_break"
	case Boundary:
		return "boundary"
	case Header:
		return "header"
	default:
		return "content"
	}
}

// Noise reports whether lines of this kind must be skipped by recipe scanners.
func (k Kind) Noise() bool {
	return k != Content
}

// Message holds the envelope fields of the message currently being read.
type Message struct {
	Group   string
	Author  string
	Subject string
	Date    string
}

// Classifier tracks MIME boundaries and header blocks for one document.
type Classifier struct {
	boundary string
	inHeader bool
	lastKey  string
	current  Message
}

// NewClassifier returns a Classifier in its initial state.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Reset clears all per-document state.
func (c *Classifier) Reset() {
	*c = Classifier{}
}

// Message returns the envelope fields captured so far for the current message.
func (c *Classifier) Message() Message {
	return c.current
}

// ActiveBoundary returns the MIME boundary token currently in force.
func (c *Classifier) ActiveBoundary() string {
	return c.boundary
}

// Classify decides what kind of line this is, updating boundary and header
// state as a side effect.
func (c *Classifier) Classify(line string) Kind {
	if c.IsMultipartBoundaryMarker(line) {
		c.inHeader = true
		return Boundary
	}
	if IsGroupBreak(line) {
		c.inHeader = true
		c.lastKey = ""
		// Message-ID sits inside a header block; every other divider starts
		// a new message.
		if !strings.HasPrefix(strings.TrimSpace(line), "Message-ID:") {
			c.current = Message{Group: c.current.Group}
		}
		return GroupBreak
	}
	if strings.HasPrefix(line, "From ") && looksLikeMboxSeparator(line) {
		c.current = Message{Group: c.current.Group}
		c.inHeader = true
		c.lastKey = ""
		return Header
	}
	if !c.inHeader {
		return Content
	}
	if strings.TrimSpace(line) == "" {
		c.inHeader = false
		c.lastKey = ""
		return Header
	}
	if (line[0] == ' ' || line[0] == '\t') && c.lastKey != "" {
		c.continueHeader(strings.TrimSpace(line))
		return Header
	}
	key, value, ok := splitHeader(line)
	if !ok {
		c.inHeader = false
		c.lastKey = ""
		return Content
	}
	c.storeHeader(key, value)
	return Header
}

// IsMultipartBoundaryMarker reports whether line declares or matches the
// active MIME boundary. A Content-Type header (or its continuation) carrying
// a boundary parameter installs the token; the closing --token-- form clears
// it.
func (c *Classifier) IsMultipartBoundaryMarker(line string) bool {
	trimmed := strings.TrimSpace(line)
	if token, ok := boundaryParam(trimmed); ok {
		c.boundary = token
		return true
	}
	if c.boundary == "" || !strings.HasPrefix(trimmed, "--") {
		return false
	}
	switch trimmed {
	case "--" + c.boundary:
		return true
	case "--" + c.boundary + "--":
		c.boundary = ""
		return true
	}
	return false
}

func boundaryParam(trimmed string) (string, bool) {
	lower := strings.ToLower(trimmed)
	if !strings.HasPrefix(lower, "content-type:") && !strings.HasPrefix(lower, "boundary=") && !strings.HasPrefix(lower, "multipart/") {
		return "", false
	}
	idx := strings.Index(lower, "boundary=")
	if idx < 0 {
		return "", false
	}
	rest := trimmed[idx+len("boundary="):]
	if strings.HasPrefix(rest, `"`) {
		end := strings.IndexByte(rest[1:], '"')
		if end < 0 {
			return "", false
		}
		token := rest[1 : end+1]
		return token, token != ""
	}
	end := strings.IndexAny(rest, "; \t")
	if end >= 0 {
		rest = rest[:end]
	}
	return rest, rest != ""
}

func looksLikeMboxSeparator(line string) bool {
	fields := strings.Fields(line)
	return len(fields) >= 3 && strings.Contains(fields[1], "@")
}

func splitHeader(line string) (string, string, bool) {
	idx := strings.IndexByte(line, ':')
	if idx <= 0 || idx+1 >= len(line) || line[idx+1] != ' ' {
		return "", "", false
	}
	key := line[:idx]
	for i := 0; i < len(key); i++ {
		ch := key[i]
		if !(ch >= 'A' && ch <= 'Z' || ch >= 'a' && ch <= 'z' || ch >= '0' && ch <= '9' || ch == '-') {
			return "", "", false
		}
	}
	return strings.ToLower(key), strings.TrimSpace(line[idx+1:]), true
}

func (c *Classifier) storeHeader(key, value string) {
	c.lastKey = key
	switch key {
	case "from":
		c.current.Author = value
	case "subject":
		c.current.Subject = value
	case "date":
		c.current.Date = value
	case "newsgroups":
		c.current.Group = value
	}
}

func (c *Classifier) continueHeader(value string) {
	switch c.lastKey {
	case "subject":
		c.current.Subject = strings.TrimSpace(c.current.Subject + " " + value)
	case "from":
		c.current.Author = strings.TrimSpace(c.current.Author + " " + value)
	}
}
