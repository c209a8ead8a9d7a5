package workflow

import (
	"context"
	"strings"

	"recipeflow/internal/services"
	"recipeflow/internal/stage"
)

// Health runs every stage's health check in pipeline order.
func (p *Pipeline) Health(ctx context.Context) []stage.Health {
	out := make([]stage.Health, 0, len(p.stages))
	for _, s := range p.stages {
		out = append(out, s.handler.HealthCheck(ctx))
	}
	return out
}

func (p *Pipeline) requireHealthy(ctx context.Context) error {
	var problems []string
	for _, h := range p.Health(ctx) {
		if !h.Ready {
			problems = append(problems, h.String())
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return services.Wrap(services.ErrConfiguration, "workflow", "health check", strings.Join(problems, "; "), nil)
}
