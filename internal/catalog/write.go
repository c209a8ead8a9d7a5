package catalog

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"recipeflow/internal/fileutil"
)

const (
	recipesSheet    = "Recipes"
	duplicatesSheet = "Duplicates"
)

// Index is the YAML document written for a run.
type Index struct {
	RunID      string    `yaml:"run_id"`
	Generated  time.Time `yaml:"generated"`
	Recipes    []Entry   `yaml:"recipes"`
	Duplicates Report    `yaml:"duplicates"`
}

// WriteYAML writes the run index to path.
func WriteYAML(path string, index Index) error {
	return fileutil.WriteFunc(path, 0o644, func(w io.Writer) error {
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(index); err != nil {
			return fmt.Errorf("failed to serialize index to YAML: %w", err)
		}
		return encoder.Close()
	})
}

// WriteXLSX writes a workbook with a Recipes sheet and a Duplicates sheet.
func WriteXLSX(path string, entries []Entry, report Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), recipesSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	header := []any{"Recipe-ID", "Title", "Format", "Chapters", "Ingredients", "Author", "Source", "Document", "Line"}
	if err := f.SetSheetRow(recipesSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, e := range entries {
		row := []any{e.ID, e.Title, e.Format, strings.Join(e.Chapters, ", "), e.Ingredients, e.Author, e.Source, e.Document, e.StartLine}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(recipesSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := f.SetPanes(recipesSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	if _, err := f.NewSheet(duplicatesSheet); err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}
	dupHeader := []any{"Kind", "Recipe-ID / Similarity", "Recipe", "Other"}
	if err := f.SetSheetRow(duplicatesSheet, "A1", &dupHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	row := 2
	for _, g := range report.Exact {
		for _, member := range g.Members[1:] {
			values := []any{"exact", g.ID, g.Members[0], member}
			if err := f.SetSheetRow(duplicatesSheet, fmt.Sprintf("A%d", row), &values); err != nil {
				return err
			}
			row++
		}
	}
	for _, p := range report.Near {
		values := []any{"near", p.Similarity, p.A, p.B}
		if err := f.SetSheetRow(duplicatesSheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}
		row++
	}

	return fileutil.WriteFunc(path, 0o644, func(w io.Writer) error {
		_, err := f.WriteTo(w)
		return err
	})
}
