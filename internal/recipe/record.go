package recipe

import (
	"fmt"
	"strings"
	"time"
)

// Format identifies the dialect a recipe was decoded from.
type Format string

const (
	FormatMealMaster Format = "mmf"
	FormatMasterCook Format = "mxp"
	FormatRXF        Format = "rxf"
)

// Bucket names one of the category collections on a Record.
type Bucket string

const (
	BucketAppliance Bucket = "appliance"
	BucketDiet      Bucket = "diet"
	BucketCourse    Bucket = "course"
	BucketCuisine   Bucket = "cuisine"
	BucketOccasion  Bucket = "occasion"
	BucketChapter   Bucket = "chapter"
)

// Buckets lists every category bucket in display order.
var Buckets = []Bucket{BucketAppliance, BucketDiet, BucketCourse, BucketCuisine, BucketOccasion, BucketChapter}

// ParseBucket maps a bucket name (case-insensitive) to its Bucket.
func ParseBucket(name string) (Bucket, bool) {
	switch Bucket(strings.ToLower(strings.TrimSpace(name))) {
	case BucketAppliance:
		return BucketAppliance, true
	case BucketDiet:
		return BucketDiet, true
	case BucketCourse:
		return BucketCourse, true
	case BucketCuisine:
		return BucketCuisine, true
	case BucketOccasion:
		return BucketOccasion, true
	case BucketChapter, "category":
		return BucketChapter, true
	default:
		return "", false
	}
}

// AUIP is one ingredient line split into amount, unit, ingredient, and
// preparation.
type AUIP struct {
	Amount      string `yaml:"amount,omitempty"`
	Unit        string `yaml:"unit,omitempty"`
	Ingredient  string `yaml:"ingredient"`
	Preparation string `yaml:"preparation,omitempty"`
}

// Provenance describes where a recipe came from.
type Provenance struct {
	Path          string
	Size          int64
	ModTime       time.Time
	Member        string
	Group         string
	Author        string
	Subject       string
	Date          string
	StartLine     int
	EndMarkerSeen bool
}

// Record is a decoded recipe.
type Record struct {
	ID     string
	Format Format

	Name        string
	Description string
	Author      string
	Source      string
	Copyright   string
	ImportFrom  string

	Serves    string
	Makes     string
	MakesUnit string

	TimePrep  string
	TimeWait  string
	TimeCook  string
	TimeRest  string
	TimeTotal string

	Appliance []string
	Diet      []string
	Course    []string
	Cuisine   []string
	Occasion  []string
	Chapter   []string

	Ingredients []AUIP
	Directions  []string
	Notes       []string

	Provenance Provenance
}

// New returns an empty record tagged with the originating format.
func New(format Format) *Record {
	return &Record{Format: format}
}

// Categories returns the collection backing bucket b.
func (r *Record) Categories(b Bucket) []string {
	switch b {
	case BucketAppliance:
		return r.Appliance
	case BucketDiet:
		return r.Diet
	case BucketCourse:
		return r.Course
	case BucketCuisine:
		return r.Cuisine
	case BucketOccasion:
		return r.Occasion
	case BucketChapter:
		return r.Chapter
	default:
		return nil
	}
}

// AddCategory appends value to bucket b. Blank values are ignored.
func (r *Record) AddCategory(b Bucket, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	switch b {
	case BucketAppliance:
		r.Appliance = append(r.Appliance, value)
	case BucketDiet:
		r.Diet = append(r.Diet, value)
	case BucketCourse:
		r.Course = append(r.Course, value)
	case BucketCuisine:
		r.Cuisine = append(r.Cuisine, value)
	case BucketOccasion:
		r.Occasion = append(r.Occasion, value)
	case BucketChapter:
		r.Chapter = append(r.Chapter, value)
	}
}

// HasCategory reports whether bucket b already holds value (case-insensitive).
func (r *Record) HasCategory(b Bucket, value string) bool {
	for _, existing := range r.Categories(b) {
		if strings.EqualFold(existing, value) {
			return true
		}
	}
	return false
}

// AddIngredient appends a when its ingredient text is present.
func (r *Record) AddIngredient(a AUIP) bool {
	if strings.TrimSpace(a.Ingredient) == "" {
		return false
	}
	r.Ingredients = append(r.Ingredients, a)
	return true
}

// AddNote appends a non-blank note.
func (r *Record) AddNote(note string) {
	note = strings.TrimSpace(note)
	if note == "" {
		return
	}
	r.Notes = append(r.Notes, note)
}

// TagNote renders a demoted tag the way it appears in directions text.
func TagNote(tag, value string) string {
	return fmt.Sprintf("%s: %q", tag, value)
}

// SetOnce stores value in *field when the field is empty. When the field is
// already populated the value is appended to the notes as `tag: "value"` and
// SetOnce returns false.
func (r *Record) SetOnce(field *string, tag, value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	if strings.TrimSpace(*field) != "" {
		r.AddNote(TagNote(tag, value))
		return false
	}
	*field = value
	return true
}
