package lexicon_test

import (
	"os"
	"path/filepath"
	"testing"

	"recipeflow/internal/lexicon"
	"recipeflow/internal/recipe"
)

func TestTranslateUnit(t *testing.T) {
	lex := lexicon.Default()
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"cups", "cups", true},
		{"Cups", "cups", true},
		{"c", "cup", true},
		{"T", "tbsp", true},
		{"t", "tsp", true},
		{"lb", "lb", true},
		{"Tablespoons", "tbsp", true},
		{"onions", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := lex.TranslateUnit(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("TranslateUnit(%q) = %q,%v want %q,%v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCategorize(t *testing.T) {
	lex := lexicon.Default()
	cat, ok := lex.Categorize("Pudding")
	if !ok || cat.Bucket != recipe.BucketChapter || cat.Value != "Desserts" {
		t.Fatalf("unexpected category for pudding: %+v %v", cat, ok)
	}
	cat, ok = lex.Categorize("crockpot")
	if !ok || cat.Bucket != recipe.BucketAppliance {
		t.Fatalf("unexpected category for crockpot: %+v %v", cat, ok)
	}
	if _, ok := lex.Categorize("zesty"); ok {
		t.Fatal("expected no category for zesty")
	}
}

func TestParagraphStarters(t *testing.T) {
	lex := lexicon.Default()
	if !lex.IsParagraphStarter("Serve") || !lex.IsParagraphStarter("serve.") {
		t.Fatal("expected Serve to start a paragraph")
	}
	if lex.IsParagraphStarter("Stir") {
		t.Fatal("expected Stir not to start a paragraph")
	}
}

func TestLoadMergesOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.toml")
	override := `
paragraph_starters = ["Stir"]

[units]
"hnd" = "handful"
"cups" = "cup"

[[categories]]
words = ["zesty"]
bucket = "cuisine"
value = "Fusion"
`
	if err := os.WriteFile(path, []byte(override), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}
	lex, err := lexicon.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got, ok := lex.TranslateUnit("hnd"); !ok || got != "handful" {
		t.Fatalf("expected override unit, got %q %v", got, ok)
	}
	if got, _ := lex.TranslateUnit("cups"); got != "cup" {
		t.Fatalf("expected overridden translation, got %q", got)
	}
	if got, _ := lex.TranslateUnit("tsp"); got != "tsp" {
		t.Fatalf("expected default units to survive merge, got %q", got)
	}
	if cat, ok := lex.Categorize("zesty"); !ok || cat.Value != "Fusion" {
		t.Fatalf("expected override category, got %+v %v", cat, ok)
	}
	if !lex.IsParagraphStarter("Stir") || !lex.IsParagraphStarter("Serve") {
		t.Fatal("expected merged paragraph starters")
	}
}

func TestLoadRejectsUnknownBucket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.toml")
	data := "[[categories]]\nwords = [\"x\"]\nbucket = \"shelf\"\nvalue = \"X\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}
	if _, err := lexicon.Load(path); err == nil {
		t.Fatal("expected error for unknown bucket")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := lexicon.Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
