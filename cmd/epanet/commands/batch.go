package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// batchResult is the outcome of one simulation in a batch.
type batchResult struct {
	Input    string
	Report   string
	Err      error
	Duration time.Duration
}

// Batch implements the 'epanet batch' command
func Batch(args []string) error {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	workers := fs.Int("workers", 0, "Simulations to run at once (default: from epanet.toml, else one per CPU)")
	failFast := fs.Bool("fail-fast", false, "Stop after the first failed simulation")
	lib := fs.String("lib", "", "Path to the EPANET shared library")
	fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("usage: epanet batch [options] <file.inp|dir>...")
	}

	config, log, done, err := setup(*lib)
	if err != nil {
		return err
	}
	defer done()

	if *workers > 0 {
		config.Batch.Workers = *workers
	}
	if *failFast {
		config.Batch.FailFast = true
	}

	inputs, err := expandInputs(fs.Args())
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no .inp files found")
	}

	n := config.Batch.Workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	fmt.Printf("Running %d simulations with %d workers\n", len(inputs), n)

	results, err := runBatch(context.Background(), inputs, config, n, log)
	failed := printSummary(results)
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d simulations failed", failed, len(results))
	}
	return nil
}

// runBatch runs every input on its own project, at most workers at a time.
// With FailFast the first failure cancels runs that have not started and is
// returned; otherwise failures are only recorded in the results.
func runBatch(ctx context.Context, inputs []string, config ProjectConfig, workers int, log *zap.Logger) ([]batchResult, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var mu sync.Mutex
	results := make([]batchResult, 0, len(inputs))

	for _, inp := range inputs {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			rpt, out := outputPaths(inp, config.Run)

			start := time.Now()
			err := runFile(inp, rpt, out, false, log)
			res := batchResult{Input: inp, Report: rpt, Err: err, Duration: time.Since(start)}

			mu.Lock()
			results = append(results, res)
			mu.Unlock()

			if err != nil {
				log.Error("simulation failed", zap.String("input", inp), zap.Error(err))
				if config.Batch.FailFast {
					return fmt.Errorf("%s: %w", inp, err)
				}
			}
			return nil
		})
	}

	err := g.Wait()
	sort.Slice(results, func(i, j int) bool { return results[i].Input < results[j].Input })
	return results, err
}

// expandInputs resolves the command arguments to .inp files. Directories
// contribute the .inp files directly inside them.
func expandInputs(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var inputs []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			inputs = append(inputs, path)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".inp") {
				continue
			}
			add(filepath.Join(arg, e.Name()))
		}
	}

	sort.Strings(inputs)
	return inputs, nil
}

func printSummary(results []batchResult) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Printf("  ✗ %s: %v\n", r.Input, r.Err)
			continue
		}
		fmt.Printf("  ✓ %s (%s)\n", r.Input, r.Duration.Round(time.Millisecond))
	}
	return failed
}
