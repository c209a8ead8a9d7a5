package fields

import (
	"reflect"
	"strings"
	"testing"
)

type starterSet map[string]bool

func (s starterSet) IsParagraphStarter(word string) bool {
	return s[strings.TrimRight(word, ".,;:!")]
}

func collect(width int, starters ParagraphStarters, lines ...string) []string {
	d := NewDirections(width, starters)
	for _, line := range lines {
		d.Add(line)
	}
	return d.Lines()
}

func TestDirectionsJoinsAndWraps(t *testing.T) {
	got := collect(30, nil,
		"  Preheat oven to 350 degrees.  Combine",
		"  the milk and sugar in a bowl.",
	)
	want := []string{
		"Preheat oven to 350 degrees.",
		"Combine the milk and sugar in",
		"a bowl.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected lines:\n%q\nwant\n%q", got, want)
	}
	for _, line := range got {
		if len(line) > 30 {
			t.Fatalf("line exceeds width: %q", line)
		}
	}
}

func TestDirectionsBlankLineStartsParagraph(t *testing.T) {
	got := collect(72, nil, "Mix well.", "", "", "Bake.")
	want := []string{"Mix well.", "", "Bake."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestDirectionsDropsNumberingAndRules(t *testing.T) {
	got := collect(72, nil, "1. Mix the flour.  2) Add eggs -- slowly.", "-----------")
	want := []string{"Mix the flour.", "Add eggs slowly."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestDirectionsStripsNumberingGluedToWord(t *testing.T) {
	got := collect(72, nil, "1.Heat milk. 2)Stir it. Bake 1.5 hours.")
	want := []string{"Heat milk.", "Stir it. Bake 1.5 hours."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestDirectionsNumberOnlyDroppedAtSentenceStart(t *testing.T) {
	got := collect(72, nil, "Bake for 1. hour")
	want := []string{"Bake for 1. hour"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestDirectionsStarParagraphAndStarters(t *testing.T) {
	got := collect(72, starterSet{"Serve": true}, "Stir well. Serve hot. *Variation: add nuts.")
	want := []string{"Stir well.", "", "Serve hot.", "", "*Variation: add nuts."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestDirectionsStarterMidSentenceIsKept(t *testing.T) {
	got := collect(72, starterSet{"Serve": true}, "Stir and Serve hot.")
	want := []string{"Stir and Serve hot."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestDirectionsControlMarkers(t *testing.T) {
	got := collect(72, nil, "First line\x14", "second line", "~-third line")
	want := []string{"First line", "second line", "third line"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestDirectionsKeepsQuotedSpanOnOneLine(t *testing.T) {
	got := collect(20, nil, `Recipe Source: "Better Homes and Gardens Cookbook" enjoy.`)
	if len(got) < 1 || !strings.Contains(got[0]+" "+strings.Join(got[1:], " "), `"Better Homes and Gardens Cookbook"`) {
		t.Fatalf("quoted span was split: %q", got)
	}
	for _, line := range got {
		if strings.Count(line, `"`)%2 != 0 {
			t.Fatalf("quoted span split across lines: %q", got)
		}
	}
}

func TestDirectionsResetClearsState(t *testing.T) {
	d := NewDirections(72, nil)
	d.Add("Mix the")
	d.Reset()
	d.Add("1. Bake.")
	got := d.Lines()
	if !reflect.DeepEqual(got, []string{"Bake."}) {
		t.Fatalf("got %q", got)
	}
}
