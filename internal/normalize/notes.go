package normalize

import (
	"strings"

	"recipeflow/internal/recipe"
)

var noteTags = []string{"NOTES:", "Notes:", "Note:"}

// ExtractNotes moves note text out of the directions. A line that starts with
// a note tag is removed and its remainder becomes a note; when the remainder
// is blank the following line is taken instead. A tag later in a line
// truncates the line there and the text after it becomes a note.
func ExtractNotes(rec *recipe.Record) {
	lines := rec.Directions
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		idx, tag := findNoteTag(line)
		if idx < 0 {
			out = append(out, line)
			continue
		}
		before := strings.TrimSpace(line[:idx])
		after := strings.TrimSpace(line[idx+len(tag):])
		if before != "" {
			out = append(out, before)
			rec.AddNote(after)
			continue
		}
		if after == "" && i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" {
			i++
			after = strings.TrimSpace(lines[i])
		}
		rec.AddNote(after)
	}
	rec.Directions = out
}

func findNoteTag(line string) (int, string) {
	best, tag := -1, ""
	for _, candidate := range noteTags {
		if idx := strings.Index(line, candidate); idx >= 0 && (best < 0 || idx < best) {
			best, tag = idx, candidate
		}
	}
	return best, tag
}
