// Package engine orchestrates one audit run: canonicalize, index, validate,
// match rules, score, and sort. A run is stateless — the engine holds only
// read-only configuration between Audit calls.
package engine

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/adiwarna/sieve/internal/config"
	"github.com/adiwarna/sieve/internal/engine/canon"
	"github.com/adiwarna/sieve/internal/engine/fingerprint"
	"github.com/adiwarna/sieve/internal/engine/labelspace"
	"github.com/adiwarna/sieve/internal/engine/queue"
	"github.com/adiwarna/sieve/internal/engine/rules"
	"github.com/adiwarna/sieve/internal/engine/stats"
	"github.com/adiwarna/sieve/internal/engine/validate"
	"github.com/adiwarna/sieve/internal/model"
	"github.com/adiwarna/sieve/internal/source"
)

// Reason codes owned by the orchestrator. Rule names and the escalation /
// policy codes come from the rules package; validation problems are wrapped
// with problemPrefix.
const (
	DuplicateTextInSplit = "duplicate_text_in_split"
	TrainValTextLeakage  = "train_val_text_leakage"

	problemPrefix = "data_problem:"
)

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers sets the number of goroutines used for per-record evaluation.
// Default: GOMAXPROCS. Values < 1 mean serial evaluation.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// WithMaxQueue overrides the configured queue cap. 0 = unlimited.
func WithMaxQueue(n int) Option {
	return func(e *Engine) { e.maxQueue = n }
}

// Engine evaluates corpora against a fixed rule set. Safe for concurrent use
// once constructed.
type Engine struct {
	intent  labelspace.Space
	urgency labelspace.Space
	events  labelspace.Space

	rules    *rules.Engine
	weights  queue.Weights
	maxQueue int
	workers  int
}

// New builds an Engine from configuration, compiling every rule pattern.
func New(cfg config.Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		intent:   labelspace.New(cfg.Labels.Intent),
		urgency:  labelspace.New(cfg.Labels.Urgency),
		events:   labelspace.New(cfg.Labels.Events),
		maxQueue: cfg.Queue.Max,
		workers:  runtime.GOMAXPROCS(0),
	}

	compiled := make([]rules.Rule, 0, len(cfg.Rules))
	for _, rc := range cfg.Rules {
		r, err := rules.Compile(rc.Name, rc.Pattern, rc.SuggestEvents, rc.MinIntent, rc.MinUrgency)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, r)
	}
	e.rules = rules.New(compiled, rules.Spaces{
		Intent:  e.intent,
		Urgency: e.urgency,
		Events:  e.events,
	}, cfg.Escalation.HeavyMinUrgency, cfg.Escalation.PolicyHeavyEvents)

	e.weights = queue.Weights{
		model.ReasonLeakage:    cfg.Weights.Leakage,
		model.ReasonProblem:    cfg.Weights.Problem,
		model.ReasonDuplicate:  cfg.Weights.Duplicate,
		model.ReasonPolicy:     cfg.Weights.Policy,
		model.ReasonEscalation: cfg.Weights.Escalation,
		model.ReasonKeyword:    cfg.Weights.Keyword,
	}

	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Result is the outcome of one audit run.
type Result struct {
	Queue []model.QueueItem
	Stats stats.Report
}

// Audit runs the full pipeline over the primary corpus. reference, when
// non-nil, supplies the leakage fingerprint set; a reference that cannot be
// read only disables leakage detection, it never fails the run. A reference
// that is the same corpus as primary (path identity) is ignored entirely,
// otherwise every record would flag itself as leaked.
func (e *Engine) Audit(ctx context.Context, primary, reference source.Source) (Result, error) {
	records, skipped, err := primary.Records(ctx)
	if err != nil {
		return Result{}, err
	}
	if skipped > 0 {
		slog.Warn("skipped malformed input lines", "input", primary.Path(), "lines", skipped)
	}

	leaks := e.buildLeakSet(ctx, primary, reference)

	// Derived forms. Raw text is never touched; everything downstream reads
	// these instead.
	canonTexts := make([]string, len(records))
	hashes := make([]string, len(records))
	dupIndex := fingerprint.NewIndex()
	for i, rec := range records {
		canonTexts[i] = canon.Normalize(rec.Text)
		hashes[i] = fingerprint.Sum(canonTexts[i])
		dupIndex.Add(hashes[i], rec.Ordinal)
		if rec.ID == "" {
			if hashes[i] != "" {
				records[i].ID = hashes[i]
			} else {
				records[i].ID = fingerprint.FallbackID(rec.Ordinal)
			}
		}
	}

	// Indexes are complete; from here on they are read-only, so per-record
	// evaluation can fan out freely.
	evals := make([]recordEval, len(records))
	evalOne := func(i int) {
		evals[i] = e.evaluateRecord(records[i], canonTexts[i],
			dupIndex.Duplicated(hashes[i]), leaks.Contains(hashes[i]))
	}
	if e.workers > 1 && len(records) > 1 {
		g, _ := errgroup.WithContext(ctx)
		for w := 0; w < e.workers; w++ {
			offset := w
			g.Go(func() error {
				for i := offset; i < len(records); i += e.workers {
					evalOne(i)
				}
				return nil
			})
		}
		// Workers only write disjoint slice slots; Wait is the barrier
		// before any result is read.
		if err := g.Wait(); err != nil {
			return Result{}, err
		}
	} else {
		for i := range records {
			evalOne(i)
		}
	}

	collector := stats.NewCollector(e.intent, e.urgency, e.events)
	collector.Skipped(skipped)
	var items []model.QueueItem
	for i, rec := range records {
		collector.Record(rec)
		collector.Problems(evals[i].problems)
		if evals[i].item != nil {
			items = append(items, *evals[i].item)
		}
	}

	items = queue.Sort(items, e.weights, e.maxQueue)
	return Result{
		Queue: items,
		Stats: collector.Report(primary.Path(), len(items)),
	}, nil
}

type recordEval struct {
	item     *model.QueueItem
	problems []string
}

// evaluateRecord merges validation problems, duplicate/leak flags, and rule
// findings for one record. Pure given its inputs — no shared state is
// touched, which is what makes concurrent evaluation safe.
func (e *Engine) evaluateRecord(rec model.Record, canonText string, dup, leaked bool) recordEval {
	problems := validate.Check(rec, validate.Spaces{
		Intent:  e.intent,
		Urgency: e.urgency,
		Events:  e.events,
	})

	var reasons []model.Reason
	for _, p := range problems {
		reasons = append(reasons, model.Reason{Kind: model.ReasonProblem, Code: problemPrefix + p})
	}
	if dup {
		reasons = append(reasons, model.Reason{Kind: model.ReasonDuplicate, Code: DuplicateTextInSplit})
	}
	if leaked {
		reasons = append(reasons, model.Reason{Kind: model.ReasonLeakage, Code: TrainValTextLeakage})
	}

	findings := e.rules.Evaluate(canonText, rec.Intent, rec.Urgency, rec.Events)
	reasons = append(reasons, findings.Reasons...)

	if len(reasons) == 0 {
		return recordEval{problems: problems}
	}
	return recordEval{
		problems: problems,
		item: &model.QueueItem{
			Ordinal:        rec.Ordinal,
			ID:             rec.ID,
			Text:           rec.Text,
			Intent:         rec.Intent,
			Urgency:        rec.Urgency,
			Events:         e.events.CanonicalOrder(rec.Events),
			Reasons:        reasons,
			KeywordHits:    findings.KeywordHits,
			SuggestIntent:  findings.SuggestIntent,
			SuggestUrgency: findings.SuggestUrgency,
			SuggestEvents:  findings.SuggestEvents,
		},
	}
}

// buildLeakSet reads the reference corpus and fingerprints it. Returns nil
// (no leakage detection) when there is no reference, when the reference is
// the primary corpus itself, or when it cannot be read.
func (e *Engine) buildLeakSet(ctx context.Context, primary, reference source.Source) fingerprint.LeakSet {
	if reference == nil {
		return nil
	}
	if samePath(primary.Path(), reference.Path()) {
		slog.Info("leakage reference is the input corpus itself; skipping leakage detection",
			"path", primary.Path())
		return nil
	}
	refRecords, _, err := reference.Records(ctx)
	if err != nil {
		slog.Warn("leakage reference unreadable; skipping leakage detection",
			"path", reference.Path(), "error", err)
		return nil
	}
	hashes := make([]string, 0, len(refRecords))
	for _, rec := range refRecords {
		hashes = append(hashes, fingerprint.Sum(canon.Normalize(rec.Text)))
	}
	return fingerprint.NewLeakSet(hashes)
}

// samePath reports whether two corpus paths resolve to the same location.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}
