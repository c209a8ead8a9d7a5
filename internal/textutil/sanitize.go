package textutil

import "strings"

// SanitizeToken lowercases value and keeps letters, digits, '-' and '_',
// turning anything else into '_'. Leading and trailing separators are
// trimmed; an empty result becomes "recipe".
func SanitizeToken(value string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(value) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte('_')
		}
	}
	out := strings.Trim(b.String(), "_-")
	if out == "" {
		return "recipe"
	}
	return out
}
