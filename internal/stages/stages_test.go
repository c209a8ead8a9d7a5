package stages_test

import (
	"context"
	"crypto/sha256"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"recipeflow/internal/catalog"
	"recipeflow/internal/dialect"
	"recipeflow/internal/export"
	"recipeflow/internal/ingest"
	"recipeflow/internal/lexicon"
	"recipeflow/internal/logging"
	"recipeflow/internal/mealmaster"
	"recipeflow/internal/metrics"
	"recipeflow/internal/normalize"
	"recipeflow/internal/queue"
	"recipeflow/internal/recipe"
	"recipeflow/internal/services"
	"recipeflow/internal/stage"
	"recipeflow/internal/stages"
	"recipeflow/internal/testsupport"
)

type harness struct {
	metrics  *metrics.Run
	catalog  *catalog.Catalog
	outDir   string
	handlers []stage.Handler
}

func newHarness(t *testing.T, keepIncomplete bool, extra ...dialect.Dialect) *harness {
	t.Helper()
	lex := lexicon.Default()
	run := metrics.NewRun()
	cat := catalog.New(normalize.ZeroID)
	outDir := filepath.Join(t.TempDir(), "export")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatal(err)
	}
	encoders, err := export.ForFormats([]string{"text", "xml"})
	if err != nil {
		t.Fatalf("ForFormats: %v", err)
	}
	dialects := append([]dialect.Dialect{mealmaster.NewDecoder(lex, mealmaster.DefaultWidth), dialect.MasterCook(), dialect.RXF()}, extra...)
	normalizer, err := normalize.New(lex, sha256.New)
	if err != nil {
		t.Fatalf("normalize.New: %v", err)
	}
	logger := logging.NewNop()
	return &harness{
		metrics: run,
		catalog: cat,
		outDir:  outDir,
		handlers: []stage.Handler{
			stages.NewImporter(logger),
			stages.NewSplitter(dialect.NewDetector(dialects...), keepIncomplete, run, logger),
			stages.NewDecoder(normalizer, run, logger),
			stages.NewEncoder(export.NewWriter(outDir, encoders), cat, run, logger),
		},
	}
}

// run pushes job through the handlers until it reaches a terminal status.
func (h *harness) run(t *testing.T, job *queue.Job) error {
	t.Helper()
	for _, handler := range h.handlers {
		if job.Status.IsTerminal() {
			return nil
		}
		if err := handler.Execute(context.Background(), job); err != nil {
			return err
		}
	}
	return nil
}

func sourceFor(t *testing.T, name, text string) ingest.Source {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	testsupport.WriteText(t, path, text)
	sources, err := ingest.Discover([]string{path})
	if err != nil || len(sources) != 1 {
		t.Fatalf("Discover: %v %v", sources, err)
	}
	return sources[0]
}

func TestPipelineStagesExportDocument(t *testing.T) {
	h := newHarness(t, true)
	text := testsupport.Digest(testsupport.BreadPudding, testsupport.MasterCookRecipe, testsupport.ChiliSoup)
	job := queue.NewJob(0, sourceFor(t, "digest.txt", text))

	if err := h.run(t, job); err != nil {
		t.Fatalf("run: %v", err)
	}
	if job.Status != queue.StatusEncoded {
		t.Fatalf("status = %s (err %v)", job.Status, job.Err)
	}
	if len(job.Recipes) != 2 {
		t.Fatalf("expected 2 recipes, got %d", len(job.Recipes))
	}
	if job.Recipes[0].Name != "Zesty Bread Pudding" || job.Recipes[1].Name != "Chili Soup" {
		t.Fatalf("recipes out of order: %q, %q", job.Recipes[0].Name, job.Recipes[1].Name)
	}
	if job.Lines != nil || job.Chunks != nil {
		t.Fatal("expected raw lines released after decode")
	}

	if len(job.Drops) != 1 || job.Drops[0].Outcome != "unsupported" || job.Drops[0].Format != recipe.FormatMasterCook {
		t.Fatalf("unexpected drops: %+v", job.Drops)
	}
	if got := h.metrics.Counter("recipeflow_recipes_total", map[string]string{"dialect": "mmf", "result": "ok"}); got != 2 {
		t.Fatalf("mmf ok = %v", got)
	}
	if got := h.metrics.Counter("recipeflow_recipes_total", map[string]string{"result": "unsupported"}); got != 1 {
		t.Fatalf("unsupported = %v", got)
	}

	pudding := job.Recipes[0]
	if pudding.Author != "Jane's Kitchen" {
		t.Fatalf("author = %q", pudding.Author)
	}
	if len(pudding.ID) != len(normalize.ZeroID) || pudding.ID == normalize.ZeroID {
		t.Fatalf("unexpected id %q", pudding.ID)
	}
	prov := pudding.Provenance
	if prov.Path != job.Source.Path || prov.Size != job.Source.Size {
		t.Fatalf("provenance source = %+v", prov)
	}
	if prov.Group != "rec.food.recipes" || prov.Subject != "Recipes of the week" || prov.Author != "cook@example.com" {
		t.Fatalf("provenance envelope = %+v", prov)
	}
	if !prov.EndMarkerSeen || prov.StartLine != 6 {
		t.Fatalf("provenance chunk = %+v", prov)
	}

	if len(job.Outputs) != 2 {
		t.Fatalf("outputs = %v", job.Outputs)
	}
	for _, path := range job.Outputs {
		if !strings.HasPrefix(path, h.outDir) {
			t.Fatalf("output %s outside %s", path, h.outDir)
		}
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("stat output: %v", err)
		}
	}
	if h.catalog.Len() != 2 {
		t.Fatalf("catalog len = %d", h.catalog.Len())
	}
}

func TestImporterFailsMissingDocument(t *testing.T) {
	h := newHarness(t, true)
	job := queue.NewJob(0, ingest.Source{Path: filepath.Join(t.TempDir(), "gone.txt")})
	if err := h.handlers[0].Execute(context.Background(), job); err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if job.Status != queue.StatusFailed || job.Err == nil {
		t.Fatalf("status = %s, err = %v", job.Status, job.Err)
	}
}

func TestStagesRejectOutOfOrderJobs(t *testing.T) {
	h := newHarness(t, true)
	for _, handler := range h.handlers[1:] {
		job := queue.NewJob(0, ingest.Source{Path: "doc.txt"})
		if err := handler.Execute(context.Background(), job); err != nil {
			t.Fatalf("%s: %v", handler.Name(), err)
		}
		if job.Status != queue.StatusFailed || !errors.Is(job.Err, services.ErrValidation) {
			t.Fatalf("%s: status = %s, err = %v", handler.Name(), job.Status, job.Err)
		}
	}
}

func TestDocumentWithoutRecipesIsSkipped(t *testing.T) {
	h := newHarness(t, true)
	job := queue.NewJob(0, sourceFor(t, "letter.txt", "Dear cook,\nno recipes today.\n"))
	if err := h.run(t, job); err != nil {
		t.Fatalf("run: %v", err)
	}
	if job.Status != queue.StatusSkipped {
		t.Fatalf("status = %s", job.Status)
	}
	if len(job.Outputs) != 0 {
		t.Fatalf("unexpected outputs %v", job.Outputs)
	}
}

func TestTruncatedRecipeHonorsKeepIncomplete(t *testing.T) {
	text := testsupport.BreadPudding + "\n\n" + testsupport.TruncatedRecipe

	keep := newHarness(t, true)
	job := queue.NewJob(0, sourceFor(t, "cut.txt", text))
	if err := keep.run(t, job); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(job.Recipes) != 2 || job.Recipes[1].Provenance.EndMarkerSeen {
		t.Fatalf("expected the truncated recipe kept without end marker: %+v", job.Recipes)
	}

	drop := newHarness(t, false)
	job = queue.NewJob(0, sourceFor(t, "cut.txt", text))
	if err := drop.run(t, job); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(job.Recipes) != 1 || len(job.Drops) != 1 {
		t.Fatalf("recipes = %d, drops = %+v", len(job.Recipes), job.Drops)
	}
	if got := drop.metrics.Counter("recipeflow_recipes_total", map[string]string{"result": metrics.ResultIncomplete}); got != 1 {
		t.Fatalf("incomplete = %v", got)
	}
}

type brokenDigest struct{}

func (brokenDigest) Format() recipe.Format { return recipe.Format("broken") }

func (brokenDigest) IsStart(line string) bool { return line == "@@@ broken" }

func (brokenDigest) IsEnd(line string) bool { return line == "@@@" }

func (brokenDigest) Decode([]string) (*recipe.Record, error) {
	return nil, services.Wrap(services.ErrDigestUnavailable, "decode", "digest", "no provider", nil)
}

func TestDecoderReturnsFatalErrors(t *testing.T) {
	h := newHarness(t, true, brokenDigest{})
	job := queue.NewJob(0, sourceFor(t, "broken.txt", "@@@ broken\nline\n@@@\n"))
	err := h.run(t, job)
	if !services.IsFatal(err) {
		t.Fatalf("expected fatal error, got %v", err)
	}
}

func TestEncoderHealthCheck(t *testing.T) {
	encoders, _ := export.ForFormats([]string{"text"})
	ok := stages.NewEncoder(export.NewWriter(t.TempDir(), encoders), nil, metrics.NewRun(), nil)
	if h := ok.HealthCheck(context.Background()); !h.Ready {
		t.Fatalf("expected ready, got %s", h)
	}
	missing := stages.NewEncoder(export.NewWriter(filepath.Join(t.TempDir(), "nope"), encoders), nil, metrics.NewRun(), nil)
	if h := missing.HealthCheck(context.Background()); h.Ready {
		t.Fatal("expected missing output directory to be unhealthy")
	}
	none := stages.NewEncoder(export.NewWriter(t.TempDir(), nil), nil, metrics.NewRun(), nil)
	if h := none.HealthCheck(context.Background()); h.Ready {
		t.Fatal("expected no formats to be unhealthy")
	}
}
