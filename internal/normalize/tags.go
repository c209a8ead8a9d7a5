package normalize

import (
	"regexp"
	"strings"

	"recipeflow/internal/recipe"
)

// Field length limits. Longer values are kept as notes.
const (
	MaxNameLen        = 128
	MaxDescriptionLen = 256
	MaxTimeLen        = 32
	MaxMakesAmountLen = 16
	MaxMakesUnitLen   = 32
)

var tagPattern = regexp.MustCompile(`\b(Imported-From|From|Source|Copyright|Description|Makes|Time-Prep|Time-Wait|Time-Cook|Time-Rest|Time-Total):\s*"([^"]+)"`)

var makesAmount = regexp.MustCompile(`^[0-9./ -]+`)

// ExtractTags moves quoted tag values out of the directions into record
// fields. The tag and its quoted value are cut from the line and the pieces on
// either side joined by one space; a line left empty is dropped. A value
// holding escaped quotes is left in place.
func ExtractTags(rec *recipe.Record) {
	out := make([]string, 0, len(rec.Directions))
	for _, line := range rec.Directions {
		next, changed := extractLine(rec, line)
		if changed && strings.TrimSpace(next) == "" {
			continue
		}
		out = append(out, next)
	}
	rec.Directions = out
}

func extractLine(rec *recipe.Record, line string) (string, bool) {
	matches := tagPattern.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return line, false
	}
	var b strings.Builder
	last := 0
	changed := false
	for _, m := range matches {
		if escapedValue(line, m) {
			continue
		}
		changed = true
		tag := line[m[2]:m[3]]
		value := strings.TrimSpace(line[m[4]:m[5]])
		applyTag(rec, tag, value)
		b.WriteString(line[last:m[0]])
		last = m[1]
	}
	if !changed {
		return line, false
	}
	b.WriteString(line[last:])
	return strings.Join(strings.Fields(b.String()), " "), true
}

// escapedValue reports whether match m stopped at an escaped quote, so the
// real value runs past the matched closing quote.
func escapedValue(line string, m []int) bool {
	if strings.HasSuffix(line[m[4]:m[5]], `\`) {
		return true
	}
	return m[1] < len(line) && line[m[1]] == '"'
}

func applyTag(rec *recipe.Record, tag, value string) {
	if value == "" {
		return
	}
	switch tag {
	case "From":
		setBounded(rec, &rec.Author, tag, value, MaxNameLen)
	case "Source":
		setBounded(rec, &rec.Source, tag, value, MaxNameLen)
	case "Copyright":
		setBounded(rec, &rec.Copyright, tag, value, MaxNameLen)
	case "Imported-From":
		setBounded(rec, &rec.ImportFrom, tag, value, MaxNameLen)
	case "Description":
		setBounded(rec, &rec.Description, tag, value, MaxDescriptionLen)
	case "Time-Prep":
		setBounded(rec, &rec.TimePrep, tag, value, MaxTimeLen)
	case "Time-Wait":
		setBounded(rec, &rec.TimeWait, tag, value, MaxTimeLen)
	case "Time-Cook":
		setBounded(rec, &rec.TimeCook, tag, value, MaxTimeLen)
	case "Time-Rest":
		setBounded(rec, &rec.TimeRest, tag, value, MaxTimeLen)
	case "Time-Total":
		setBounded(rec, &rec.TimeTotal, tag, value, MaxTimeLen)
	case "Makes":
		applyMakes(rec, value)
	}
}

func setBounded(rec *recipe.Record, field *string, tag, value string, limit int) {
	if len(value) > limit {
		rec.AddNote(recipe.TagNote(tag, value))
		return
	}
	rec.SetOnce(field, tag, value)
}

// applyMakes splits a Makes value into a leading amount and a unit. Both must
// be present and within bounds, and the record must not already carry a
// yield; otherwise the value becomes a Yield note.
func applyMakes(rec *recipe.Record, value string) {
	lead := makesAmount.FindString(value)
	amount := strings.TrimSpace(lead)
	unit := strings.TrimSpace(value[len(lead):])
	if amount == "" || len(amount) > MaxMakesAmountLen || len(unit) > MaxMakesUnitLen || rec.Makes != "" {
		rec.AddNote(recipe.TagNote("Yield", strings.TrimSpace(amount+" "+unit)))
		return
	}
	rec.Makes = amount
	rec.MakesUnit = unit
}
