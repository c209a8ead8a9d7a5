package workflow_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"recipeflow/internal/catalog"
	"recipeflow/internal/dialect"
	"recipeflow/internal/lexicon"
	"recipeflow/internal/logging"
	"recipeflow/internal/mealmaster"
	"recipeflow/internal/queue"
	"recipeflow/internal/services"
	"recipeflow/internal/testsupport"
	"recipeflow/internal/workflow"
)

func writeInputs(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "inputs")
	testsupport.WriteText(t, filepath.Join(dir, "a-digest.txt"),
		testsupport.Digest(testsupport.BreadPudding, testsupport.MasterCookRecipe, testsupport.ChiliSoup))
	testsupport.WriteZip(t, filepath.Join(dir, "b-archive.zip"), map[string]string{
		"m1.txt": testsupport.BreadPudding,
		"m2.txt": "nothing to see here\n",
	})
	testsupport.WriteText(t, filepath.Join(dir, "c-letter.txt"), "Dear cook,", "no recipes today.")
	testsupport.WriteText(t, filepath.Join(dir, ".hidden.txt"), testsupport.ChiliSoup)
	return dir
}

func TestConvertEndToEnd(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithMetricsTextfile(), testsupport.WithWorkers(2, 2))
	conv, err := workflow.NewConverter(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("NewConverter: %v", err)
	}

	summary, err := conv.Convert(context.Background(), "run-1", []string{writeInputs(t)})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if summary.RunID != "run-1" {
		t.Fatalf("run id = %q", summary.RunID)
	}
	if len(summary.Documents) != 4 {
		t.Fatalf("expected 4 documents, got %d", len(summary.Documents))
	}
	wantStatus := []queue.Status{queue.StatusEncoded, queue.StatusEncoded, queue.StatusSkipped, queue.StatusSkipped}
	for i, d := range summary.Documents {
		if d.Status != wantStatus[i] {
			t.Fatalf("%s: status = %s, want %s (err %v)", d.Document, d.Status, wantStatus[i], d.Err)
		}
	}
	if !strings.HasSuffix(summary.Documents[1].Document, "b-archive.zip!m1.txt") {
		t.Fatalf("unexpected document order: %s", summary.Documents[1].Document)
	}
	if summary.Recipes() != 3 || summary.Dropped() != 1 {
		t.Fatalf("recipes = %d, dropped = %d", summary.Recipes(), summary.Dropped())
	}
	// Two documents times three formats.
	if summary.Files() != 6 {
		t.Fatalf("files = %d", summary.Files())
	}
	if len(summary.Duplicates.Exact) != 1 || len(summary.Duplicates.Exact[0].Members) != 2 {
		t.Fatalf("expected one exact duplicate pair, got %+v", summary.Duplicates)
	}

	for _, name := range []string{workflow.IndexFileName, workflow.CatalogFileName} {
		if _, err := os.Stat(filepath.Join(cfg.Paths.OutputDir, name)); err != nil {
			t.Fatalf("missing artifact %s: %v", name, err)
		}
	}
	if len(summary.Artifacts) != 3 {
		t.Fatalf("artifacts = %v", summary.Artifacts)
	}

	data, err := os.ReadFile(filepath.Join(cfg.Paths.OutputDir, workflow.IndexFileName))
	if err != nil {
		t.Fatal(err)
	}
	var index catalog.Index
	if err := yaml.Unmarshal(data, &index); err != nil {
		t.Fatalf("parse index: %v", err)
	}
	if index.RunID != "run-1" || len(index.Recipes) != 3 {
		t.Fatalf("unexpected index: run=%q recipes=%d", index.RunID, len(index.Recipes))
	}

	prom, err := os.ReadFile(cfg.Metrics.TextfilePath)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	if !strings.Contains(string(prom), "recipeflow_recipes_total") {
		t.Fatalf("metrics textfile missing recipe counter:\n%s", prom)
	}
}

func TestConvertMissingInput(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	conv, err := workflow.NewConverter(cfg, nil)
	if err != nil {
		t.Fatalf("NewConverter: %v", err)
	}
	_, err = conv.Convert(context.Background(), "run", []string{filepath.Join(t.TempDir(), "missing")})
	if err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestNewConverterRejectsUnknownDigest(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Decode.Digest = "md4"
	_, err := workflow.NewConverter(cfg, nil)
	if !services.IsFatal(err) {
		t.Fatalf("expected fatal digest error, got %v", err)
	}
}

func TestScanListsBoundaries(t *testing.T) {
	detector := workflow.NewDetector(lexicon.Default(), mealmaster.DefaultWidth)
	entries, failed, err := workflow.Scan(context.Background(), detector, []string{writeInputs(t)})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(failed) != 0 {
		t.Fatalf("unexpected failures: %v", failed)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %+v", entries)
	}
	first := entries[0]
	if first.Dialect != "mmf" || first.Title != "zesty bread pudding" || first.End != dialect.EndMarker {
		t.Fatalf("unexpected first entry: %+v", first)
	}
	if entries[1].Dialect != "mxp" || entries[1].Title != "Plain Rice" {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}
}
