package catalog

import (
	"sort"
	"strings"
	"sync"

	"recipeflow/internal/recipe"
	"recipeflow/internal/textutil"
)

// Entry is one cataloged recipe.
type Entry struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Format      string   `yaml:"format"`
	Document    string   `yaml:"document"`
	StartLine   int      `yaml:"start_line"`
	Chapters    []string `yaml:"chapters,omitempty"`
	Ingredients int      `yaml:"ingredients"`
	Author      string   `yaml:"author,omitempty"`
	Source      string   `yaml:"source,omitempty"`

	text string
}

// Ref names an entry inside a duplicate report.
func (e Entry) Ref() string {
	if e.Title == "" {
		return e.Document
	}
	return e.Title + " (" + e.Document + ")"
}

// ExactGroup lists entries sharing one Recipe-ID.
type ExactGroup struct {
	ID      string   `yaml:"id"`
	Members []string `yaml:"members"`
}

// NearPair is two entries with similar ingredient lists.
type NearPair struct {
	A          string  `yaml:"a"`
	B          string  `yaml:"b"`
	Similarity float64 `yaml:"similarity"`
}

// Report summarizes duplicates.
type Report struct {
	Exact []ExactGroup `yaml:"exact,omitempty"`
	Near  []NearPair   `yaml:"near,omitempty"`
}

// Catalog accumulates entries. Add may be called concurrently.
type Catalog struct {
	mu        sync.Mutex
	entries   []Entry
	sentinels map[string]struct{}
}

// New returns an empty catalog. IDs in skipIDs (the zero-ingredient
// sentinel) are never reported as exact duplicates.
func New(skipIDs ...string) *Catalog {
	c := &Catalog{sentinels: make(map[string]struct{}, len(skipIDs))}
	for _, id := range skipIDs {
		c.sentinels[id] = struct{}{}
	}
	return c
}

// Add records rec as found in document.
func (c *Catalog) Add(document string, rec *recipe.Record) {
	if rec == nil {
		return
	}
	parts := make([]string, 0, len(rec.Ingredients))
	for _, a := range rec.Ingredients {
		parts = append(parts, a.Ingredient)
	}
	entry := Entry{
		ID:          rec.ID,
		Title:       rec.Name,
		Format:      string(rec.Format),
		Document:    document,
		StartLine:   rec.Provenance.StartLine,
		Chapters:    append([]string(nil), rec.Chapter...),
		Ingredients: len(rec.Ingredients),
		Author:      rec.Author,
		Source:      rec.Source,
		text:        strings.Join(parts, " "),
	}
	c.mu.Lock()
	c.entries = append(c.entries, entry)
	c.mu.Unlock()
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Entries returns the entries ordered by document and start line.
func (c *Catalog) Entries() []Entry {
	c.mu.Lock()
	out := append([]Entry(nil), c.entries...)
	c.mu.Unlock()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Document != out[j].Document {
			return out[i].Document < out[j].Document
		}
		return out[i].StartLine < out[j].StartLine
	})
	return out
}

// Duplicates finds exact and near duplicates. Pairs already reported as
// exact duplicates are not repeated as near duplicates.
func (c *Catalog) Duplicates(threshold float64) Report {
	entries := c.Entries()
	var report Report

	byID := make(map[string][]string)
	var ids []string
	for _, e := range entries {
		if _, skip := c.sentinels[e.ID]; skip || e.ID == "" {
			continue
		}
		if _, seen := byID[e.ID]; !seen {
			ids = append(ids, e.ID)
		}
		byID[e.ID] = append(byID[e.ID], e.Ref())
	}
	for _, id := range ids {
		if members := byID[id]; len(members) > 1 {
			report.Exact = append(report.Exact, ExactGroup{ID: id, Members: members})
		}
	}

	if threshold <= 0 || threshold > 1 {
		return report
	}
	corpus := textutil.NewCorpus()
	raw := make([]*textutil.Fingerprint, len(entries))
	for i, e := range entries {
		raw[i] = textutil.NewFingerprint(e.text)
		corpus.Add(raw[i])
	}
	idf := corpus.IDF()
	prints := make([]*textutil.Fingerprint, len(entries))
	for i, fp := range raw {
		prints[i] = fp.WithIDF(idf)
	}
	for i := range entries {
		for j := i + 1; j < len(entries); j++ {
			if entries[i].ID == entries[j].ID {
				continue
			}
			sim := textutil.CosineSimilarity(prints[i], prints[j])
			if sim >= threshold {
				report.Near = append(report.Near, NearPair{
					A:          entries[i].Ref(),
					B:          entries[j].Ref(),
					Similarity: float64(int(sim*1000+0.5)) / 1000,
				})
			}
		}
	}
	return report
}
