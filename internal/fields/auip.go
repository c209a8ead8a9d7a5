package fields

import (
	"strings"

	"recipeflow/internal/recipe"
)

// MaxUnitLen bounds the unit token copied before translation.
const MaxUnitLen = 16

// UnitTranslator maps a unit token to its canonical spelling.
type UnitTranslator interface {
	TranslateUnit(token string) (string, bool)
}

// IsPreparationOnly reports whether line carries only a preparation clause,
// i.e. it starts with "--", "-", ";" or ":" once leading blanks are removed.
func IsPreparationOnly(line string) bool {
	t := strings.TrimSpace(line)
	return strings.HasPrefix(t, "-") || strings.HasPrefix(t, ";") || strings.HasPrefix(t, ":")
}

// Amount copies the numeric amount that starts at pos: digits, single spaces,
// '.' and '/'. A '-' between two numbers is read as a space ("1 - 2"). The
// run stops at a double space or any other character, so a unit glued to the
// number ("12Cups") starts right where the amount ends.
func Amount(line string, pos int) (int, string) {
	if pos >= len(line) || IsPreparationOnly(line[pos:]) {
		return pos, ""
	}
	i := skipBlanks(line, pos)
	var b strings.Builder
	lastDigit := false
scan:
	for i < len(line) {
		c := line[i]
		switch {
		case isDigit(c) || c == '.' || c == '/':
			b.WriteByte(c)
			lastDigit = isDigit(c)
		case c == ' ':
			if i+1 < len(line) && isBlank(line[i+1]) {
				break scan
			}
			b.WriteByte(' ')
		case c == '-' && lastDigit && nextNonBlankIsDigit(line, i+1):
			b.WriteByte(' ')
			lastDigit = false
		default:
			break scan
		}
		i++
	}
	amount := strings.Join(strings.Fields(b.String()), " ")
	if !strings.ContainsAny(amount, "0123456789") {
		return pos, ""
	}
	return i, amount
}

// Unit copies the alphabetic token at pos (periods are dropped) and translates
// it. At most one blank may precede the token: a wider gap is the empty unit
// column of a Meal-Master line. When the token has no translation the
// original cursor is returned. A trailing "(s)" is consumed with the unit.
func Unit(line string, pos int, units UnitTranslator) (int, string) {
	if units == nil || pos >= len(line) {
		return pos, ""
	}
	i := pos
	if isBlank(line[i]) {
		i++
	}
	var b strings.Builder
	for i < len(line) {
		c := line[i]
		if c == '.' {
			i++
			continue
		}
		if !isAlpha(c) {
			break
		}
		if b.Len() >= MaxUnitLen {
			return pos, ""
		}
		b.WriteByte(c)
		i++
	}
	if b.Len() == 0 {
		return pos, ""
	}
	if i < len(line) && !isBlank(line[i]) && line[i] != '(' && line[i] != ',' {
		return pos, ""
	}
	translated, ok := units.TranslateUnit(b.String())
	if !ok {
		return pos, ""
	}
	if strings.HasPrefix(line[i:], "(s)") {
		i += len("(s)")
	}
	return i, translated
}

// Ingredient copies text up to the first of ; : , ( { [ TAB or NUL. A '-'
// survives only inside a hyphenated word; a bare '-' ends the field.
func Ingredient(line string, pos int) (int, string) {
	i := skipBlanks(line, pos)
	var b strings.Builder
	for i < len(line) {
		c := line[i]
		if strings.IndexByte(";:,({[\t\x00", c) >= 0 {
			break
		}
		if c == '-' && !(i+1 < len(line) && isAlpha(line[i+1])) {
			break
		}
		b.WriteByte(c)
		i++
	}
	text := strings.Join(strings.Fields(b.String()), " ")
	if text == "" {
		return pos, ""
	}
	return i, text
}

// Preparation returns the trailing clause of the line starting at pos. A
// dash-framed section title is rewritten as "** TITLE **"; otherwise leading
// "--", '-', ',', ':' and ';' are skipped and " -- " becomes "; ".
func Preparation(line string, pos int) (int, string) {
	if pos >= len(line) {
		return len(line), ""
	}
	rest := strings.TrimSpace(line[pos:])
	if section, ok := RewriteSection(rest); ok {
		return len(line), section
	}
	for rest != "" && strings.IndexByte("-,:;", rest[0]) >= 0 {
		rest = strings.TrimLeft(rest[1:], " \t")
	}
	rest = strings.ReplaceAll(rest, " -- ", "; ")
	return len(line), strings.TrimSpace(rest)
}

// RewriteSection turns a section separator such as "--- STUFFING ---" (or the
// Meal-Master "MMMMM-----STUFFING-----" form) into "** STUFFING **".
func RewriteSection(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "MMMMM")
	if len(trimmed) <= 9 {
		return "", false
	}
	lead := len(trimmed) - len(strings.TrimLeft(trimmed, "-"))
	trail := len(trimmed) - len(strings.TrimRight(trimmed, "-"))
	if lead < 3 || trail < 3 || lead+trail >= len(trimmed) {
		return "", false
	}
	inner := strings.TrimSpace(trimmed[lead : len(trimmed)-trail])
	if inner == "" {
		return "", false
	}
	return "** " + strings.ToUpper(inner) + " **", true
}

// SplitAUIP applies the four formatters in order.
func SplitAUIP(line string, units UnitTranslator) recipe.AUIP {
	var a recipe.AUIP
	pos := 0
	pos, a.Amount = Amount(line, pos)
	pos, a.Unit = Unit(line, pos, units)
	pos, a.Ingredient = Ingredient(line, pos)
	_, a.Preparation = Preparation(line, pos)
	return a
}

func skipBlanks(line string, pos int) int {
	for pos < len(line) && isBlank(line[pos]) {
		pos++
	}
	return pos
}

func nextNonBlankIsDigit(line string, pos int) bool {
	pos = skipBlanks(line, pos)
	return pos < len(line) && isDigit(line[pos])
}

func isBlank(c byte) bool { return c == ' ' || c == '\t' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
