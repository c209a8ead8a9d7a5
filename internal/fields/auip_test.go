package fields

import (
	"testing"

	"recipeflow/internal/recipe"
)

type unitTable map[string]string

func (u unitTable) TranslateUnit(token string) (string, bool) {
	v, ok := u[token]
	return v, ok
}

var testUnits = unitTable{
	"cups":  "cups",
	"Cups":  "cups",
	"c":     "cup",
	"T":     "tbsp",
	"lb":    "lb",
	"cup":   "cup",
	"large": "large",
}

func TestSplitAUIP(t *testing.T) {
	tests := []struct {
		line string
		want recipe.AUIP
	}{
		{"   2 1/2 cups chopped onions, diced", recipe.AUIP{Amount: "2 1/2", Unit: "cups", Ingredient: "chopped onions", Preparation: "diced"}},
		{"      2 c  Milk", recipe.AUIP{Amount: "2", Unit: "cup", Ingredient: "Milk"}},
		{"    1/2 c  Sugar", recipe.AUIP{Amount: "1/2", Unit: "cup", Ingredient: "Sugar"}},
		{"      1    Egg, beaten", recipe.AUIP{Amount: "1", Ingredient: "Egg", Preparation: "beaten"}},
		{"      1    Large egg", recipe.AUIP{Amount: "1", Ingredient: "Large egg"}},
		{"      1 large egg", recipe.AUIP{Amount: "1", Unit: "large", Ingredient: "egg"}},
		{"12Cups flour", recipe.AUIP{Amount: "12", Unit: "cups", Ingredient: "flour"}},
		{"1 - 2 T butter (softened)", recipe.AUIP{Amount: "1 2", Unit: "tbsp", Ingredient: "butter", Preparation: "(softened)"}},
		{"  1 c. half-and-half -- scalded", recipe.AUIP{Amount: "1", Unit: "cup", Ingredient: "half-and-half", Preparation: "scalded"}},
		{"1 cup(s) rice", recipe.AUIP{Amount: "1", Unit: "cup", Ingredient: "rice"}},
		{"1 T-bone steak", recipe.AUIP{Amount: "1", Ingredient: "T-bone steak"}},
		{"           Salt and pepper", recipe.AUIP{Ingredient: "Salt and pepper"}},
		{"2 lb beef; cut in cubes -- about 1 inch", recipe.AUIP{Amount: "2", Unit: "lb", Ingredient: "beef", Preparation: "cut in cubes; about 1 inch"}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := SplitAUIP(tt.line, testUnits)
			if got != tt.want {
				t.Fatalf("SplitAUIP(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestAmountLeavesCursorForPreparationOnly(t *testing.T) {
	for _, line := range []string{"  -- finely chopped", "; optional", ": divided", "-minced"} {
		pos, amount := Amount(line, 0)
		if pos != 0 || amount != "" {
			t.Fatalf("Amount(%q) = %d,%q want 0,\"\"", line, pos, amount)
		}
	}
}

func TestPreparationOnlyLineHasNoIngredient(t *testing.T) {
	got := SplitAUIP("        -- finely chopped", testUnits)
	if got.Ingredient != "" || got.Preparation != "finely chopped" {
		t.Fatalf("unexpected AUIP: %+v", got)
	}
}

func TestUnitFailureReturnsOriginalCursor(t *testing.T) {
	line := "2 onions"
	pos, amount := Amount(line, 0)
	if amount != "2" {
		t.Fatalf("unexpected amount %q", amount)
	}
	next, unit := Unit(line, pos, testUnits)
	if next != pos || unit != "" {
		t.Fatalf("Unit = %d,%q want %d,\"\"", next, unit, pos)
	}
}

func TestUnitRejectsOverlongToken(t *testing.T) {
	line := "1 supercalifragilisticexpialidocious"
	if next, unit := Unit(line, 1, testUnits); next != 1 || unit != "" {
		t.Fatalf("Unit = %d,%q", next, unit)
	}
}

func TestIngredientEmptyDoesNotAdvance(t *testing.T) {
	if pos, text := Ingredient("  , diced", 0); pos != 0 || text != "" {
		t.Fatalf("Ingredient = %d,%q", pos, text)
	}
}

func TestRewriteSection(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"--- STUFFING ---", "** STUFFING **", true},
		{"  -----------------------filling------------------------  ", "** FILLING **", true},
		{"MMMMM-----------------------SAUCE------------------------", "** SAUCE **", true},
		{"-- sauce --", "", false},
		{"----------", "", false},
		{"--- short", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := RewriteSection(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("RewriteSection(%q) = %q,%v want %q,%v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestPreparationSectionRewrite(t *testing.T) {
	if _, prep := Preparation("--- STUFFING ---", 0); prep != "** STUFFING **" {
		t.Fatalf("unexpected preparation %q", prep)
	}
}
