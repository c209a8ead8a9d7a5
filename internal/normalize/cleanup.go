package normalize

import "regexp"

type rewrite struct {
	pattern *regexp.Regexp
	replace string
}

func rule(pattern, replace string) rewrite {
	return rewrite{pattern: regexp.MustCompile(`(?i)` + pattern), replace: replace}
}

// timerRules fold the parenthesized timer tags into three buckets. They run
// before the plain rules so "T(Cook Time):" is not half-rewritten as a
// "cook time:" tag.
var timerRules = []rewrite{
	rule(`\bT\(\s*(?:Cook Time|Cooking Time|Cooking|Cook|Baking Time|Baking|Bake|Roasting|Grilling|Frying|Simmering|Microwave)\s*\)\s*:`, "Time-Cook:"),
	rule(`\bT\(\s*(?:Chilling|Chill|Standing|Stand|Marinating|Marinate|Rising|Rise|Resting|Cooling|Cool|Freezing|Soaking|Setting)\s*\)\s*:`, "Time-Wait:"),
	rule(`\bT\(\s*(?:Ready in|Total|Total Time|Start to Finish)\s*\)\s*:`, "Time-Total:"),
}

var tagRules = []rewrite{
	rule(`\bdate\s+:`, "Date:"),
	rule(`\b(?:posted|sent)\s+by\s*:`, "SentBy:"),
	rule(`\b(?:submitted|contributed|recipe)\s+by\s*:`, "From:"),
	rule(`\bfrom\s+:`, "From:"),
	rule(`\b(?:recipe\s+)?source\s*:`, "Source:"),
	rule(`\bcopyright\s*:`, "Copyright:"),
	rule(`\bdescription\s*:`, "Description:"),
	rule(`\byield\s*:`, "Makes:"),
	rule(`\byield\s+(\d)`, "Makes: $1"),
	rule(`\bmakes\s+:`, "Makes:"),
	rule(`\bimported\s+from\s*:`, "Imported-From:"),
	rule(`\bprep(?:aration)?\s+time\s*:`, "Time-Prep:"),
	rule(`\bcook(?:ing)?\s+time\s*:`, "Time-Cook:"),
	rule(`\bbak(?:e|ing)\s+time\s*:`, "Time-Cook:"),
	rule(`\btotal\s+time\s*:`, "Time-Total:"),
	rule(`\bready\s+in\s*:`, "Time-Total:"),
	rule(`\brest(?:ing)?\s+time\s*:`, "Time-Rest:"),
	rule(`\b(?:wait|chill|chilling|standing)\s+time\s*:`, "Time-Wait:"),
	rule(`\bnotes?\s+:`, "Notes:"),
	rule(`\bnote\s*:`, "Note:"),
	rule(`\bnotes\s*:`, "Notes:"),
}

// maxCleanupPasses bounds the fixed-point loop. Every replacement is a
// canonical tag the rules leave unchanged, so the tables settle on the
// second pass; the cap only matters if a new rule rewrites into another
// rule's pattern.
const maxCleanupPasses = 8

// CleanupLine rewrites sloppy tag spellings in line to their canonical form,
// repeating full passes until a pass changes nothing.
func CleanupLine(line string) string {
	for pass := 0; pass < maxCleanupPasses; pass++ {
		next := cleanupPass(line)
		if next == line {
			break
		}
		line = next
	}
	return line
}

// CleanupLines applies CleanupLine to every line.
func CleanupLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = CleanupLine(line)
	}
	return out
}

func cleanupPass(line string) string {
	for _, rw := range timerRules {
		line = rw.pattern.ReplaceAllString(line, rw.replace)
	}
	for _, rw := range tagRules {
		line = rw.pattern.ReplaceAllString(line, rw.replace)
	}
	return line
}
