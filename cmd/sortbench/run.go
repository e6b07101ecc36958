package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rlaau/sortbench/bench"
	"github.com/rlaau/sortbench/dataset"
)

type runFlags struct {
	sizes      []int
	algorithms []string
	runs       int
	pattern    string
	seed       int64
	verify     bool
	markdown   string
	json       string
	metrics    string
}

func newRunCmd(g *globalFlags) *cobra.Command {
	defaults := bench.DefaultConfig()
	f := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the sort benchmark and write reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(g, f)
		},
	}

	fl := cmd.Flags()
	fl.IntSliceVar(&f.sizes, "sizes", defaults.Sizes, "dataset sizes")
	fl.StringSliceVar(&f.algorithms, "algorithms", defaults.Algorithms, "algorithms to run")
	fl.IntVar(&f.runs, "runs", defaults.Runs, "runs per algorithm and size")
	fl.StringVar(&f.pattern, "pattern", string(defaults.Pattern), "data pattern: random, sorted, reversed, equal, few")
	fl.Int64Var(&f.seed, "seed", defaults.Seed, "random seed")
	fl.BoolVar(&f.verify, "verify", defaults.Verify, "check every result is sorted")
	fl.StringVar(&f.markdown, "markdown", "benchmark_results.md", "markdown report path (empty to skip)")
	fl.StringVar(&f.json, "json", "benchmark_results.json", "JSON report path (empty to skip)")
	fl.StringVar(&f.metrics, "metrics", "", "Prometheus text-format metrics path (empty to skip)")
	return cmd
}

func runBench(g *globalFlags, f *runFlags) error {
	pattern, err := dataset.ParsePattern(f.pattern)
	if err != nil {
		return err
	}
	store, kind, err := g.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	cfg := bench.Config{
		Sizes:       f.sizes,
		Algorithms:  f.algorithms,
		Runs:        f.runs,
		Storage:     kind,
		StoragePath: g.path,
		Pattern:     pattern,
		Seed:        f.seed,
		Verify:      f.verify,
	}

	reg := prometheus.NewRegistry()
	log := logrus.WithField("component", "bench")
	runner, err := bench.NewRunner(cfg, store, bench.NewMetrics(reg), log)
	if err != nil {
		return err
	}

	log.Infof("starting benchmark: sizes=%v algorithms=%v runs=%d", cfg.Sizes, cfg.Algorithms, cfg.Runs)
	results, err := runner.Run()
	if err != nil {
		return err
	}

	if f.markdown != "" {
		if err := writeReport(f.markdown, results, bench.WriteMarkdown); err != nil {
			return err
		}
		log.Infof("wrote %s", f.markdown)
	}
	if f.json != "" {
		if err := writeReport(f.json, results, bench.WriteJSON); err != nil {
			return err
		}
		log.Infof("wrote %s", f.json)
	}
	if f.metrics != "" {
		if err := prometheus.WriteToTextfile(f.metrics, reg); err != nil {
			return errors.Wrapf(err, "write metrics %s", f.metrics)
		}
		log.Infof("wrote %s", f.metrics)
	}
	return nil
}

func writeReport(path string, results []bench.Result, write func(io.Writer, []bench.Result) error) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := write(file, results); err != nil {
		file.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(file.Close(), "close %s", path)
}
