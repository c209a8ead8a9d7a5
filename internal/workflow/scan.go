package workflow

import (
	"context"
	"strings"

	"recipeflow/internal/dialect"
	"recipeflow/internal/ingest"
)

// ScanEntry describes one recipe boundary found by Scan.
type ScanEntry struct {
	Document  string
	Dialect   string
	StartLine int
	Lines     int
	End       dialect.EndReason
	Title     string
}

// Scan runs boundary detection over the documents under paths without
// decoding anything. Unreadable documents are returned in failed.
func Scan(ctx context.Context, detector *dialect.Detector, paths []string) (entries []ScanEntry, failed map[string]error, err error) {
	sources, err := ingest.Discover(paths)
	if err != nil {
		return nil, nil, err
	}
	failed = make(map[string]error)
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return entries, failed, err
		}
		doc, err := ingest.Read(ctx, src)
		if err != nil {
			failed[src.Name()] = err
			continue
		}
		for _, chunk := range detector.Split(doc.Lines) {
			entries = append(entries, ScanEntry{
				Document:  src.Name(),
				Dialect:   string(chunk.Dialect.Format()),
				StartLine: chunk.StartLine,
				Lines:     len(chunk.Lines),
				End:       chunk.End,
				Title:     titleCandidate(chunk.Lines),
			})
		}
	}
	return entries, failed, nil
}

// titleCandidate returns the first non-blank body line, without a "Title:"
// label.
func titleCandidate(lines []string) string {
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		if len(t) >= len("Title:") && strings.EqualFold(t[:len("Title:")], "Title:") {
			t = strings.TrimSpace(t[len("Title:"):])
		}
		return t
	}
	return ""
}
