package dialect_test

import (
	"errors"
	"testing"

	"recipeflow/internal/dialect"
	"recipeflow/internal/recipe"
	"recipeflow/internal/services"
)

// fakeMMF stands in for the Meal-Master decoder so the splitter can be tested
// without it.
type fakeMMF struct{}

func (fakeMMF) Format() recipe.Format    { return recipe.FormatMealMaster }
func (fakeMMF) IsStart(line string) bool { return dialect.IsMealMasterStart(line) }
func (fakeMMF) IsEnd(line string) bool   { return dialect.IsMealMasterEnd(line) }
func (fakeMMF) Decode([]string) (*recipe.Record, error) {
	return recipe.New(recipe.FormatMealMaster), nil
}

func newDetector() *dialect.Detector {
	return dialect.NewDetector(fakeMMF{}, dialect.MasterCook(), dialect.RXF())
}

func TestMealMasterBanners(t *testing.T) {
	banners := []string{
		"MMMMM----- Recipe via Meal-Master (tm) v8.05",
		"MMMMM----- Recipe via MealMaster",
		"---------- Recipe via Meal-Master (tm) v8.02",
		"---------- Recipe via MealMaster",
		"----- Recipe via Meal-Master",
		"- ----- Recipe via Meal-Master",
		"MMMMM---- Meal-Master",
		"----- Meal-Master",
		"mmmmm----- recipe via mealmaster",
		"   MMMMM----- Recipe via Meal-Master",
		"----- Now You're Cooking! v5.65 [Meal-Master Export Format]",
	}
	for _, banner := range banners {
		if !dialect.IsMealMasterStart(banner) {
			t.Fatalf("expected start for %q", banner)
		}
		d, ok := newDetector().DetectStart(banner)
		if !ok || d.Format() != recipe.FormatMealMaster {
			t.Fatalf("DetectStart(%q) = %v,%v", banner, d, ok)
		}
	}
}

func TestQuotedBannerNeverStarts(t *testing.T) {
	for _, line := range []string{
		"> MMMMM----- Recipe via Meal-Master (tm) v8.05",
		">----- Recipe via Meal-Master",
		"  > ----- Meal-Master",
	} {
		if _, ok := newDetector().DetectStart(line); ok {
			t.Fatalf("quoted line %q detected as start", line)
		}
	}
}

func TestNonBannerLines(t *testing.T) {
	for _, line := range []string{
		"I love Meal-Master recipes",
		"-----",
		"MMMMM",
		"Recipe via Meal-Master",
	} {
		if dialect.IsMealMasterStart(line) {
			t.Fatalf("unexpected start for %q", line)
		}
	}
}

func TestMealMasterEndMarkers(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"MMMMM", true},
		{"  mmmmm  ", true},
		{"-----", true},
		{"- -----", true},
		{"- - - - -", true},
		{"------", false},
		{"MMMMM-----", false},
		{"MMMM", false},
	}
	for _, tt := range tests {
		if got := dialect.IsMealMasterEnd(tt.line); got != tt.want {
			t.Fatalf("IsMealMasterEnd(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestDetectEnd(t *testing.T) {
	det := newDetector()
	cur := fakeMMF{}
	if !det.DetectEnd(cur, "MMMMM") {
		t.Fatal("expected end marker")
	}
	if !det.DetectEnd(cur, "----------------------------------------") {
		t.Fatal("expected group break to end the recipe")
	}
	if !det.DetectEnd(cur, "MMMMM----- Recipe via Meal-Master (tm) v8.05") {
		t.Fatal("expected new start to end the recipe")
	}
	if det.DetectEnd(cur, "  1 c  Sugar") {
		t.Fatal("ingredient line must not end the recipe")
	}
}

func TestUnsupportedDialects(t *testing.T) {
	det := newDetector()
	mc, ok := det.DetectStart("*  Exported from  MasterCook  *")
	if !ok || mc.Format() != recipe.FormatMasterCook {
		t.Fatalf("expected MasterCook, got %v %v", mc, ok)
	}
	rxf, ok := det.DetectStart("[[[[[")
	if !ok || rxf.Format() != recipe.FormatRXF {
		t.Fatalf("expected RXF, got %v %v", rxf, ok)
	}
	for _, d := range []dialect.Dialect{mc, rxf} {
		rec, err := d.Decode([]string{"anything"})
		if rec != nil || !errors.Is(err, services.ErrUnsupportedDialect) {
			t.Fatalf("%s Decode = %v, %v", d.Format(), rec, err)
		}
		if services.IsFatal(err) {
			t.Fatal("unsupported dialect must not be fatal")
		}
	}
}

func TestSplitMultipleRecipes(t *testing.T) {
	lines := []string{
		"Some chatter before the recipe",
		"MMMMM----- Recipe via Meal-Master (tm) v8.05",
		"      Title: First",
		"MMMMM",
		"between recipes",
		"----- Recipe via Meal-Master",
		"      Title: Second",
		"MMMMM----- Recipe via Meal-Master (tm) v8.05",
		"      Title: Third",
		"*  Exported from  MasterCook  *",
		"Fourth",
	}
	chunks := newDetector().Split(lines)
	if len(chunks) != 4 {
		t.Fatalf("expected 4 chunks, got %d", len(chunks))
	}
	want := []struct {
		start  int
		end    dialect.EndReason
		format recipe.Format
	}{
		{2, dialect.EndMarker, recipe.FormatMealMaster},
		{6, dialect.EndImplicit, recipe.FormatMealMaster},
		{8, dialect.EndImplicit, recipe.FormatMealMaster},
		{10, dialect.EndOfDocument, recipe.FormatMasterCook},
	}
	for i, w := range want {
		c := chunks[i]
		if c.StartLine != w.start || c.End != w.end || c.Dialect.Format() != w.format {
			t.Fatalf("chunk %d = start %d end %s format %s", i, c.StartLine, c.End, c.Dialect.Format())
		}
	}
	if len(chunks[0].Lines) != 1 || chunks[0].Lines[0] != "      Title: First" {
		t.Fatalf("unexpected body: %q", chunks[0].Lines)
	}
}

func TestSplitGroupBreakEndsRecipeAndCapturesMessage(t *testing.T) {
	lines := []string{
		"From cook@example.com Mon Jan  1 00:00:00 1996",
		"From: cook@example.com",
		"Subject: MM: Bread Pudding",
		"",
		"MMMMM----- Recipe via Meal-Master (tm) v8.05",
		"      Title: Bread Pudding",
		"------------------------------------------------------------------------",
		"not part of the recipe",
	}
	chunks := newDetector().Split(lines)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	c := chunks[0]
	if c.End != dialect.EndEnvelope {
		t.Fatalf("expected envelope end, got %s", c.End)
	}
	if c.Message.Subject != "MM: Bread Pudding" || c.Message.Author != "cook@example.com" {
		t.Fatalf("unexpected message %+v", c.Message)
	}
	if len(c.Lines) != 1 {
		t.Fatalf("unexpected body %q", c.Lines)
	}
}
