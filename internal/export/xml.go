package export

import (
	"encoding/xml"
	"fmt"
	"strings"

	"recipeflow/internal/recipe"
)

// XML renders recipes as elements of a <recipes> document.
type XML struct{}

func (XML) Name() string      { return "xml" }
func (XML) Extension() string { return ".xml" }

// Begin writes the XML declaration and opens the root element.
func (XML) Begin(sink *Sink, document string) {
	var name strings.Builder
	_ = xml.EscapeText(&name, []byte(document))
	sink.Line(`<?xml version="1.0" encoding="UTF-8"?>`)
	sink.Linef(`<recipes document="%s">`, name.String())
}

// End closes the root element.
func (XML) End(sink *Sink) {
	sink.Line("</recipes>")
}

type xmlCategory struct {
	Bucket string `xml:"bucket,attr"`
	Value  string `xml:",chardata"`
}

type xmlIngredient struct {
	Amount      string `xml:"amount,attr,omitempty"`
	Unit        string `xml:"unit,attr,omitempty"`
	Preparation string `xml:"preparation,attr,omitempty"`
	Text        string `xml:",chardata"`
}

type xmlYield struct {
	Serves string `xml:"serves,attr,omitempty"`
	Makes  string `xml:"makes,attr,omitempty"`
	Unit   string `xml:"unit,attr,omitempty"`
}

type xmlTimes struct {
	Prep  string `xml:"prep,attr,omitempty"`
	Wait  string `xml:"wait,attr,omitempty"`
	Cook  string `xml:"cook,attr,omitempty"`
	Rest  string `xml:"rest,attr,omitempty"`
	Total string `xml:"total,attr,omitempty"`
}

type xmlProvenance struct {
	Path      string `xml:"path,attr"`
	Member    string `xml:"member,attr,omitempty"`
	StartLine int    `xml:"start_line,attr,omitempty"`
	Group     string `xml:"group,omitempty"`
	Author    string `xml:"author,omitempty"`
	Subject   string `xml:"subject,omitempty"`
	Date      string `xml:"date,omitempty"`
}

type xmlRecipe struct {
	XMLName     xml.Name        `xml:"recipe"`
	ID          string          `xml:"id,attr"`
	Format      string          `xml:"format,attr"`
	Title       string          `xml:"title"`
	Description string          `xml:"description,omitempty"`
	Author      string          `xml:"author,omitempty"`
	Source      string          `xml:"source,omitempty"`
	Copyright   string          `xml:"copyright,omitempty"`
	ImportFrom  string          `xml:"imported_from,omitempty"`
	Categories  []xmlCategory   `xml:"categories>category"`
	Yield       *xmlYield       `xml:"yield,omitempty"`
	Times       *xmlTimes       `xml:"times,omitempty"`
	Ingredients []xmlIngredient `xml:"ingredients>ingredient"`
	Directions  []string        `xml:"directions>p"`
	Notes       []string        `xml:"notes>note"`
	Provenance  *xmlProvenance  `xml:"provenance,omitempty"`
}

func (XML) Encode(rec *recipe.Record, sink *Sink) error {
	out := xmlRecipe{
		ID:          rec.ID,
		Format:      string(rec.Format),
		Title:       rec.Name,
		Description: rec.Description,
		Author:      rec.Author,
		Source:      rec.Source,
		Copyright:   rec.Copyright,
		ImportFrom:  rec.ImportFrom,
		Directions:  rec.Directions,
		Notes:       rec.Notes,
	}
	for _, b := range recipe.Buckets {
		for _, v := range rec.Categories(b) {
			out.Categories = append(out.Categories, xmlCategory{Bucket: string(b), Value: v})
		}
	}
	if rec.Serves != "" || rec.Makes != "" {
		out.Yield = &xmlYield{Serves: rec.Serves, Makes: rec.Makes, Unit: rec.MakesUnit}
	}
	times := xmlTimes{Prep: rec.TimePrep, Wait: rec.TimeWait, Cook: rec.TimeCook, Rest: rec.TimeRest, Total: rec.TimeTotal}
	if times != (xmlTimes{}) {
		out.Times = &times
	}
	for _, a := range rec.Ingredients {
		out.Ingredients = append(out.Ingredients, xmlIngredient{
			Amount: a.Amount, Unit: a.Unit, Preparation: a.Preparation, Text: a.Ingredient,
		})
	}
	if p := rec.Provenance; p.Path != "" {
		out.Provenance = &xmlProvenance{
			Path: p.Path, Member: p.Member, StartLine: p.StartLine,
			Group: p.Group, Author: p.Author, Subject: p.Subject, Date: p.Date,
		}
	}
	data, err := xml.MarshalIndent(out, "  ", "  ")
	if err != nil {
		return fmt.Errorf("marshal recipe %q: %w", rec.Name, err)
	}
	sink.Line(string(data))
	return nil
}
