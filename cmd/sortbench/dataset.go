package main

import (
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rlaau/sortbench/bench"
	"github.com/rlaau/sortbench/dataset"
	"github.com/rlaau/sortbench/sort"
)

func newGenCmd(g *globalFlags) *cobra.Command {
	var (
		pattern string
		size    int
		seed    int64
	)

	cmd := &cobra.Command{
		Use:   "gen <name>",
		Short: "Generate a dataset into the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := dataset.ParsePattern(pattern)
			if err != nil {
				return err
			}
			data, err := dataset.Generate(p, size, seed)
			if err != nil {
				return err
			}

			store, kind, err := g.openPersistentStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Save(args[0], data); err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{"dataset": args[0], "storage": kind}).
				Infof("saved %s elements", humanize.Comma(int64(len(data))))
			return nil
		},
	}

	cmd.Flags().StringVar(&pattern, "pattern", string(dataset.Random), "data pattern: random, sorted, reversed, equal, few")
	cmd.Flags().IntVar(&size, "size", 100000, "number of elements")
	cmd.Flags().Int64Var(&seed, "seed", dataset.DefaultSeed, "random seed")
	return cmd
}

func newSortCmd(g *globalFlags) *cobra.Command {
	var (
		algorithm string
		printOut  bool
	)

	cmd := &cobra.Command{
		Use:   "sort <name>",
		Short: "Sort a stored dataset and save it as <name>.sorted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sortFn, err := bench.Lookup(algorithm)
			if err != nil {
				return err
			}

			store, kind, err := g.openPersistentStore()
			if err != nil {
				return err
			}
			defer store.Close()

			name := args[0]
			data, err := store.Load(name)
			if err != nil {
				return err
			}
			sortFn(data)

			out := name + ".sorted"
			if err := store.Save(out, data); err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{"dataset": out, "storage": kind, "algorithm": algorithm}).
				Infof("sorted %s elements", humanize.Comma(int64(len(data))))

			if printOut {
				return sort.Fprint(os.Stdout, data)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&algorithm, "algorithm", "quicksort", "quicksort, quicksort_stack, mergesort or stdlib")
	cmd.Flags().BoolVar(&printOut, "print", false, "print the sorted dataset to stdout")
	return cmd
}
