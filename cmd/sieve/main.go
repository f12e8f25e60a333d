package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/adiwarna/sieve/internal/config"
	"github.com/adiwarna/sieve/internal/engine"
	"github.com/adiwarna/sieve/internal/logging"
	"github.com/adiwarna/sieve/internal/output"
	"github.com/adiwarna/sieve/internal/output/csvfile"
	"github.com/adiwarna/sieve/internal/output/multi"
	"github.com/adiwarna/sieve/internal/output/stdout"
	"github.com/adiwarna/sieve/internal/output/statsfile"
	"github.com/adiwarna/sieve/internal/pipeline"
	"github.com/adiwarna/sieve/internal/source"

	// Register source implementations.
	_ "github.com/adiwarna/sieve/internal/source/jsonl"
)

type flags struct {
	input    string
	val      string
	format   string
	cfgPath  string
	outQueue string
	outStats string
	tee      bool
	maxQueue int
	workers  int
	logLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "sieve",
		Short: "Audit labeled text corpora for mislabels, duplicates, and split leakage",
		Long: `sieve reads a JSONL corpus of labeled text records, flags rows that are
likely mislabeled, duplicated, or leaked across dataset splits, and writes a
priority-ordered review queue with suggested corrections.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("max-queue") {
				f.maxQueue = -1 // keep configured cap
			}
			return run(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.input, "input", "", "corpus to audit (required)")
	cmd.Flags().StringVar(&f.val, "val", "", "leakage-reference corpus (optional)")
	cmd.Flags().StringVar(&f.format, "format", "jsonl", "corpus format")
	cmd.Flags().StringVar(&f.cfgPath, "config", "", "label space / rule configuration YAML")
	cmd.Flags().StringVar(&f.outQueue, "out-queue", "", `review queue CSV path, or "-" for stdout (required)`)
	cmd.Flags().StringVar(&f.outStats, "out-stats", "", "statistics JSON path (optional)")
	cmd.Flags().BoolVar(&f.tee, "tee", false, "also print the queue to stdout when --out-queue is a file")
	cmd.Flags().IntVar(&f.maxQueue, "max-queue", 0, "cap queue length (0 = unlimited)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "evaluation goroutines (0 = GOMAXPROCS)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "debug, info, warn, or error")
	cobra.CheckErr(cmd.MarkFlagRequired("input"))
	cobra.CheckErr(cmd.MarkFlagRequired("out-queue"))

	return cmd
}

func run(cmd *cobra.Command, f flags) error {
	logging.Setup(f.logLevel, f.outQueue == "-" || f.tee)

	cfg, err := config.Load(f.cfgPath)
	if err != nil {
		return err
	}

	var opts []engine.Option
	if f.maxQueue >= 0 {
		opts = append(opts, engine.WithMaxQueue(f.maxQueue))
	}
	if f.workers > 0 {
		opts = append(opts, engine.WithWorkers(f.workers))
	}
	eng, err := engine.New(cfg, opts...)
	if err != nil {
		return err
	}

	ctor, err := source.Get(f.format)
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(source.Formats(), ", "))
	}
	primary := ctor(f.input)
	var reference source.Source
	if f.val != "" {
		reference = ctor(f.val)
	}

	var out output.Output
	if f.outQueue == "-" {
		out = stdout.New()
	} else {
		out, err = csvfile.New(f.outQueue)
		if err != nil {
			return err
		}
		if f.tee {
			out = multi.New(out, stdout.New())
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := pipeline.New(eng, out)
	report, err := p.Run(ctx, primary, reference)
	if cerr := p.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	if f.outStats != "" {
		if err := statsfile.Write(f.outStats, report); err != nil {
			return err
		}
		slog.Info("stats written", "path", f.outStats)
	}
	slog.Info("review queue written",
		"path", f.outQueue, "items", report.QueueSize, "rows", report.Rows)
	return nil
}
