package envelope

import "strings"

// ruleLengths are the exact widths at which a run of one repeated rule
// character is treated as a message divider.
var ruleLengths = map[int]struct{}{30: {}, 40: {}, 70: {}, 72: {}}

const ruleChars = "-_.="

// groupBreakPrefixes are case-sensitive prefixes of digest and mailing-list
// divider lines.
var groupBreakPrefixes = []string{
	"Message-ID:",
	"--------------- MESSAGE",
	"--------------- END",
	"------- Start of forwarded message -------",
	"------- End of forwarded message -------",
	"-----Original Message-----",
	"End of ",
}

// IsGroupBreak reports whether line separates messages in a digest and must
// never be treated as recipe content.
func IsGroupBreak(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if isRule(trimmed) {
		return true
	}
	for _, prefix := range groupBreakPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			if prefix == "End of " {
				return strings.HasSuffix(trimmed, "Digest") || strings.Contains(trimmed, " Digest ")
			}
			return true
		}
	}
	return false
}

func isRule(trimmed string) bool {
	if _, ok := ruleLengths[len(trimmed)]; !ok {
		return false
	}
	c := trimmed[0]
	if strings.IndexByte(ruleChars, c) < 0 {
		return false
	}
	for i := 1; i < len(trimmed); i++ {
		if trimmed[i] != c {
			return false
		}
	}
	return true
}
