// Package pipeline connects a source, the audit engine, and an output into
// a one-shot batch run.
package pipeline

import (
	"context"
	"fmt"

	"github.com/adiwarna/sieve/internal/engine"
	"github.com/adiwarna/sieve/internal/engine/stats"
	"github.com/adiwarna/sieve/internal/output"
	"github.com/adiwarna/sieve/internal/source"
)

// Pipeline runs audits and streams the resulting queue to an output.
type Pipeline struct {
	engine *engine.Engine
	output output.Output
}

// New creates a Pipeline from the given components.
func New(eng *engine.Engine, out output.Output) *Pipeline {
	return &Pipeline{engine: eng, output: out}
}

// Run audits the primary corpus (reference may be nil) and writes every
// queue item to the output in priority order. Returns the run statistics.
func (p *Pipeline) Run(ctx context.Context, primary, reference source.Source) (stats.Report, error) {
	result, err := p.engine.Audit(ctx, primary, reference)
	if err != nil {
		return stats.Report{}, fmt.Errorf("pipeline audit: %w", err)
	}
	for _, item := range result.Queue {
		if err := p.output.Write(ctx, item); err != nil {
			return stats.Report{}, fmt.Errorf("pipeline output: %w", err)
		}
	}
	return result.Stats, nil
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
