package main

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rlaau/sortbench/bench"
	"github.com/rlaau/sortbench/dataset"
)

// globalFlags 모든 하위 명령이 공유하는 플래그
type globalFlags struct {
	storage  string
	path     string
	logLevel string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	defaults := bench.DefaultConfig()

	root := &cobra.Command{
		Use:           "sortbench",
		Short:         "Benchmark quicksort and mergesort over stored integer datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(g.logLevel)
			if err != nil {
				return errors.Wrap(err, "--log-level")
			}
			logrus.SetLevel(level)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.storage, "storage", string(defaults.Storage), "dataset storage: memory, file, bbolt, badger, pebble")
	pf.StringVar(&g.path, "path", defaults.StoragePath, "storage directory; bbolt uses <path>/datasets.db unless path ends in .db")
	pf.StringVar(&g.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(newRunCmd(g), newGenCmd(g), newSortCmd(g))
	return root
}

func (g *globalFlags) kind() (dataset.Kind, error) {
	for _, k := range dataset.Kinds() {
		if string(k) == g.storage {
			return k, nil
		}
	}
	return "", errors.Newf("unknown --storage %q", g.storage)
}

// errEphemeralStore gen/sort 는 프로세스가 끝나면 사라지는 저장소를 쓸 수 없음
var errEphemeralStore = errors.New("memory storage does not persist between commands; use --storage file, bbolt, badger or pebble")

// boltFile bbolt 는 단일 파일이므로 디렉터리 경로면 그 안에 datasets.db 를 둔다
const boltFile = "datasets.db"

// storePath kind 에 맞는 실제 경로
func (g *globalFlags) storePath(kind dataset.Kind) string {
	if kind == dataset.Bolt && filepath.Ext(g.path) != ".db" {
		return filepath.Join(g.path, boltFile)
	}
	return g.path
}

func (g *globalFlags) openStore() (dataset.Store, dataset.Kind, error) {
	kind, err := g.kind()
	if err != nil {
		return nil, "", err
	}
	store, err := dataset.Open(kind, g.storePath(kind))
	if err != nil {
		return nil, "", err
	}
	return store, kind, nil
}

// openPersistentStore 명령 사이에 데이터가 남는 저장소만 연다
func (g *globalFlags) openPersistentStore() (dataset.Store, dataset.Kind, error) {
	kind, err := g.kind()
	if err != nil {
		return nil, "", err
	}
	if kind == dataset.Memory {
		return nil, "", errEphemeralStore
	}
	return g.openStore()
}
