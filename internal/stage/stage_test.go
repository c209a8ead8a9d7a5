package stage_test

import (
	"errors"
	"testing"

	"recipeflow/internal/ingest"
	"recipeflow/internal/queue"
	"recipeflow/internal/services"
	"recipeflow/internal/stage"
)

func TestRequireStatus(t *testing.T) {
	job := queue.NewJob(0, ingest.Source{Path: "a"})
	if err := stage.RequireStatus("import", job, queue.StatusPending); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := stage.RequireStatus("decode", job, queue.StatusClassified)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestHealth(t *testing.T) {
	if h := stage.Healthy("decode"); !h.Ready || h.Name != "decode" {
		t.Fatalf("unexpected %+v", h)
	}
	if h := stage.Unhealthy("encode", "output dir not writable"); h.Ready || h.Detail == "" {
		t.Fatalf("unexpected %+v", h)
	}
}
