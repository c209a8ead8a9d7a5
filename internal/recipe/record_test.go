package recipe

import "testing"

func TestSetOnceFirstWriterWins(t *testing.T) {
	rec := New(FormatMealMaster)
	if !rec.SetOnce(&rec.Source, "Source", "A") {
		t.Fatal("expected first write to succeed")
	}
	if rec.SetOnce(&rec.Source, "Source", "B") {
		t.Fatal("expected second write to be demoted")
	}
	if rec.Source != "A" {
		t.Fatalf("unexpected source: %q", rec.Source)
	}
	if len(rec.Notes) != 1 || rec.Notes[0] != `Source: "B"` {
		t.Fatalf("unexpected notes: %#v", rec.Notes)
	}
}

func TestAddIngredientDropsEmptyIngredient(t *testing.T) {
	rec := New(FormatMealMaster)
	if rec.AddIngredient(AUIP{Amount: "1", Unit: "cup"}) {
		t.Fatal("expected AUIP without ingredient to be discarded")
	}
	if !rec.AddIngredient(AUIP{Amount: "1", Unit: "cup", Ingredient: "milk"}) {
		t.Fatal("expected AUIP to be kept")
	}
	if len(rec.Ingredients) != 1 {
		t.Fatalf("expected one ingredient, got %d", len(rec.Ingredients))
	}
}

func TestAddCategoryKeepsDuplicatesAndOrder(t *testing.T) {
	rec := New(FormatMealMaster)
	for _, v := range []string{" Dessert ", "Bread", "Dessert", ""} {
		rec.AddCategory(BucketChapter, v)
	}
	want := []string{"Dessert", "Bread", "Dessert"}
	if len(rec.Chapter) != len(want) {
		t.Fatalf("unexpected chapters: %#v", rec.Chapter)
	}
	for i := range want {
		if rec.Chapter[i] != want[i] {
			t.Fatalf("chapter[%d] = %q, want %q", i, rec.Chapter[i], want[i])
		}
	}
	if !rec.HasCategory(BucketChapter, "dessert") {
		t.Fatal("expected case-insensitive category lookup to match")
	}
}

func TestParseBucket(t *testing.T) {
	tests := []struct {
		in   string
		want Bucket
		ok   bool
	}{
		{"Cuisine", BucketCuisine, true},
		{"category", BucketChapter, true},
		{" chapter ", BucketChapter, true},
		{"dessert", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseBucket(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("ParseBucket(%q) = %q,%v want %q,%v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}
