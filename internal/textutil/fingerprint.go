package textutil

import (
	"math"
	"regexp"
	"strings"
)

var tokenSplitPattern = regexp.MustCompile(`[^a-z0-9]+`)

// ignoredTokens never contribute to a fingerprint.
var ignoredTokens = map[string]struct{}{
	"and": {}, "the": {}, "for": {}, "with": {}, "cup": {}, "cups": {},
	"tsp": {}, "tbsp": {}, "each": {}, "package": {}, "large": {}, "small": {},
	"medium": {}, "chopped": {}, "diced": {}, "fresh": {}, "optional": {},
}

// Fingerprint is a weighted term vector with its Euclidean norm.
type Fingerprint struct {
	tokens map[string]float64
	norm   float64
}

// NewFingerprint builds a term-frequency fingerprint of text. It returns nil
// when no token survives filtering.
func NewFingerprint(text string) *Fingerprint {
	counts := make(map[string]float64)
	for _, token := range Tokenize(text) {
		counts[token]++
	}
	return fromWeights(counts)
}

func fromWeights(weights map[string]float64) *Fingerprint {
	var norm float64
	for token, w := range weights {
		if w == 0 {
			delete(weights, token)
			continue
		}
		norm += w * w
	}
	if len(weights) == 0 {
		return nil
	}
	return &Fingerprint{tokens: weights, norm: math.Sqrt(norm)}
}

// Tokenize lowercases text and splits it into tokens, dropping short tokens,
// bare numbers, and ignored words.
func Tokenize(text string) []string {
	raw := tokenSplitPattern.Split(strings.ToLower(text), -1)
	terms := make([]string, 0, len(raw))
	for _, token := range raw {
		if len(token) < 3 || strings.Trim(token, "0123456789") == "" {
			continue
		}
		if _, skip := ignoredTokens[token]; skip {
			continue
		}
		terms = append(terms, token)
	}
	return terms
}

// TokenCount returns the number of distinct tokens.
func (f *Fingerprint) TokenCount() int {
	if f == nil {
		return 0
	}
	return len(f.tokens)
}

// WithIDF returns a copy weighted by idf. Tokens missing from idf keep their
// raw count.
func (f *Fingerprint) WithIDF(idf map[string]float64) *Fingerprint {
	if f == nil || len(idf) == 0 {
		return f
	}
	weighted := make(map[string]float64, len(f.tokens))
	for token, count := range f.tokens {
		if w, ok := idf[token]; ok {
			count *= w
		}
		weighted[token] = count
	}
	return fromWeights(weighted)
}

// Corpus counts in how many fingerprints each token appears.
type Corpus struct {
	docCount int
	docFreq  map[string]int
}

// NewCorpus returns an empty corpus.
func NewCorpus() *Corpus {
	return &Corpus{docFreq: make(map[string]int)}
}

// Add counts the distinct tokens of fp. Nil fingerprints still count as a
// document.
func (c *Corpus) Add(fp *Fingerprint) {
	if c == nil {
		return
	}
	c.docCount++
	if fp == nil {
		return
	}
	for token := range fp.tokens {
		c.docFreq[token]++
	}
}

// IDF returns smoothed inverse document frequencies, ln((N+1)/(df+1)) + 1.
// The +1 keeps tokens shared by every document from vanishing, so a corpus of
// two identical ingredient lists still compares as identical.
func (c *Corpus) IDF() map[string]float64 {
	if c == nil || c.docCount == 0 {
		return nil
	}
	n := float64(c.docCount)
	idf := make(map[string]float64, len(c.docFreq))
	for term, df := range c.docFreq {
		idf[term] = math.Log((n+1)/(float64(df)+1)) + 1
	}
	return idf
}
