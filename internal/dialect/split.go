package dialect

import "recipeflow/internal/envelope"

// EndReason records how a chunk was closed.
type EndReason int

const (
	// EndMarker is the dialect's own end marker.
	EndMarker EndReason = iota
	// EndEnvelope is a group break or other e-mail envelope line.
	EndEnvelope
	// EndImplicit is the start banner of the next recipe.
	EndImplicit
	// EndOfDocument means the document ran out first.
	EndOfDocument
)

func (r EndReason) String() string {
	switch r {
	case EndMarker:
		return "end_marker"
	case EndEnvelope:
		return "envelope"
	case EndImplicit:
		return "next_start"
	default:
		return "end_of_document"
	}
}

// Chunk is the body of one recipe: the lines strictly between its start
// banner and whatever ended it.
type Chunk struct {
	Dialect   Dialect
	StartLine int // 1-based line number of the start banner
	Banner    string
	Lines     []string
	End       EndReason
	Message   envelope.Message
}

// Split walks lines and returns the recipe chunks in document order. Lines
// outside any recipe are ignored. Envelope state is private to the call.
func (d *Detector) Split(lines []string) []Chunk {
	classifier := envelope.NewClassifier()
	var (
		chunks []Chunk
		cur    *Chunk
	)
	closeChunk := func(reason EndReason) {
		if cur == nil {
			return
		}
		cur.End = reason
		chunks = append(chunks, *cur)
		cur = nil
	}
	for i, line := range lines {
		kind := classifier.Classify(line)
		if kind.Noise() {
			closeChunk(EndEnvelope)
			continue
		}
		if cur != nil {
			if cur.Dialect.IsEnd(line) {
				closeChunk(EndMarker)
				continue
			}
			if _, ok := d.DetectStart(line); !ok {
				cur.Lines = append(cur.Lines, line)
				continue
			}
			closeChunk(EndImplicit)
		}
		if dl, ok := d.DetectStart(line); ok {
			cur = &Chunk{
				Dialect:   dl,
				StartLine: i + 1,
				Banner:    line,
				Message:   classifier.Message(),
			}
		}
	}
	closeChunk(EndOfDocument)
	return chunks
}
