package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiwarna/sieve/internal/config"
	"github.com/adiwarna/sieve/internal/engine"
	"github.com/adiwarna/sieve/internal/model"
	"github.com/adiwarna/sieve/internal/source/memory"
)

// collect is a test output that records every item it receives.
type collect struct {
	items  []model.QueueItem
	closed bool
	fail   error
}

func (c *collect) Write(_ context.Context, item model.QueueItem) error {
	if c.fail != nil {
		return c.fail
	}
	c.items = append(c.items, item)
	return nil
}

func (c *collect) Close() error {
	c.closed = true
	return nil
}

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	eng, err := engine.New(config.Default())
	require.NoError(t, err)
	return eng
}

func TestRunWritesQueueInOrder(t *testing.T) {
	src := memory.New("train", []model.Record{
		{Text: "ada tabrakan", Intent: "NON_SOS", Urgency: "LOW", Ordinal: 0},
		{Text: "", Intent: "SOS", Urgency: "HIGH", Ordinal: 1},
		{Text: "laporan shift pagi aman", Intent: "NON_SOS", Urgency: "LOW", Ordinal: 2},
	})
	out := &collect{}
	p := New(newEngine(t), out)

	report, err := p.Run(context.Background(), src, nil)
	require.NoError(t, err)
	require.NoError(t, p.Close())

	require.Len(t, out.items, 2)
	// Structural problem outranks the keyword finding.
	assert.Equal(t, 1, out.items[0].Ordinal)
	assert.Equal(t, 0, out.items[1].Ordinal)
	assert.True(t, out.closed)
	assert.Equal(t, 3, report.Rows)
	assert.Equal(t, 2, report.QueueSize)
}

func TestRunPropagatesOutputError(t *testing.T) {
	src := memory.New("train", []model.Record{
		{Text: "ada tabrakan", Intent: "NON_SOS", Urgency: "LOW", Ordinal: 0},
	})
	boom := errors.New("disk full")
	p := New(newEngine(t), &collect{fail: boom})

	_, err := p.Run(context.Background(), src, nil)
	require.ErrorIs(t, err, boom)
}

func TestRunPropagatesSourceError(t *testing.T) {
	p := New(newEngine(t), &collect{})
	_, err := p.Run(context.Background(), failingSource{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt.jsonl")
}

type failingSource struct{}

func (failingSource) Records(context.Context) ([]model.Record, int, error) {
	return nil, 0, errors.New("open corrupt.jsonl: permission denied")
}

func (failingSource) Path() string { return "corrupt.jsonl" }
