package textutil

import (
	"math"
	"reflect"
	"testing"
)

func TestCosineSimilarityNil(t *testing.T) {
	tests := []struct {
		name string
		a    *Fingerprint
		b    *Fingerprint
	}{
		{"both nil", nil, nil},
		{"a nil", nil, NewFingerprint("butter flour sugar")},
		{"b nil", NewFingerprint("butter flour sugar"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CosineSimilarity(tt.a, tt.b); got != 0 {
				t.Fatalf("CosineSimilarity() = %v, want 0", got)
			}
		})
	}
}

func TestCosineSimilarityIdenticalAndDisjoint(t *testing.T) {
	a := NewFingerprint("Milk Sugar Eggs Vanilla extract Bread cubes")
	b := NewFingerprint("bread cubes, eggs, milk, sugar, vanilla extract")
	if got := CosineSimilarity(a, b); math.Abs(got-1) > 1e-9 {
		t.Fatalf("same ingredients = %v, want 1", got)
	}
	c := NewFingerprint("beef onions chili powder")
	if got := CosineSimilarity(a, c); got != 0 {
		t.Fatalf("disjoint ingredients = %v, want 0", got)
	}
}

func TestCosineSimilarityPartialAndSymmetric(t *testing.T) {
	a := NewFingerprint("flour butter sugar eggs")
	b := NewFingerprint("flour butter honey oats")
	ab, ba := CosineSimilarity(a, b), CosineSimilarity(b, a)
	if ab <= 0 || ab >= 1 {
		t.Fatalf("partial overlap = %v", ab)
	}
	if math.Abs(ab-ba) > 1e-12 {
		t.Fatalf("not symmetric: %v vs %v", ab, ba)
	}
}

func TestTokenizeDropsMeasuresAndNumbers(t *testing.T) {
	got := Tokenize("2 cups chopped Onions, 1/2 tsp salt; 350 degrees")
	want := []string{"onions", "salt", "degrees"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize() = %q, want %q", got, want)
	}
	if fp := NewFingerprint("1 c 2 T"); fp != nil {
		t.Fatalf("expected nil fingerprint, got %d tokens", fp.TokenCount())
	}
}

func TestIDFKeepsSharedTokens(t *testing.T) {
	a := NewFingerprint("milk sugar eggs")
	b := NewFingerprint("milk sugar eggs")
	corpus := NewCorpus()
	corpus.Add(a)
	corpus.Add(b)
	idf := corpus.IDF()
	if idf["milk"] != 1 {
		t.Fatalf("idf(milk) = %v, want 1", idf["milk"])
	}
	wa, wb := a.WithIDF(idf), b.WithIDF(idf)
	if got := CosineSimilarity(wa, wb); math.Abs(got-1) > 1e-9 {
		t.Fatalf("weighted similarity = %v, want 1", got)
	}
}

func TestIDFDownweightsCommonTokens(t *testing.T) {
	corpus := NewCorpus()
	docs := []string{"salt pepper beef", "salt pepper chicken", "salt pepper tofu"}
	for _, d := range docs {
		corpus.Add(NewFingerprint(d))
	}
	idf := corpus.IDF()
	if idf["salt"] >= idf["beef"] {
		t.Fatalf("idf(salt)=%v should be below idf(beef)=%v", idf["salt"], idf["beef"])
	}
	if NewCorpus().IDF() != nil {
		t.Fatal("empty corpus should have nil IDF")
	}
}

func TestSanitizeToken(t *testing.T) {
	tests := map[string]string{
		"Zesty Bread Pudding": "zesty_bread_pudding",
		"  MM-Archive_01 ":    "mm-archive_01",
		"***":                 "recipe",
		"Café":                "caf",
	}
	for in, want := range tests {
		if got := SanitizeToken(in); got != want {
			t.Fatalf("SanitizeToken(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	if got := TitleCase("  zesty   BREAD pudding "); got != "Zesty Bread Pudding" {
		t.Fatalf("TitleCase() = %q", got)
	}
	if got := TitleCase("   "); got != "" {
		t.Fatalf("TitleCase(blank) = %q", got)
	}
}
