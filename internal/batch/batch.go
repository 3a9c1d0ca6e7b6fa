// Package batch checks many program files concurrently.
package batch

import (
	"context"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kolkov/dudecheck"
)

// Config holds configuration for a batch run.
type Config struct {
	// NumWorkers is the number of worker goroutines.
	// Default: runtime.NumCPU()
	NumWorkers int

	// MaxBufferedJobs limits how many files wait for a free worker.
	// Default: NumWorkers * 2
	MaxBufferedJobs int

	// Check is passed to every Program.Check call. Its Format selects
	// the input format of all files.
	Check dudecheck.Config
}

// DefaultConfig returns sensible defaults for a batch run.
func DefaultConfig() Config {
	numCPU := runtime.NumCPU()
	return Config{
		NumWorkers:      numCPU,
		MaxBufferedJobs: numCPU * 2,
	}
}

// Result is the outcome for one file.
type Result struct {
	ID      int                // Position of the file in the input list
	Path    string             // File path
	Program *dudecheck.Program // Loaded program, nil when loading failed
	Check   dudecheck.Result   // Analysis verdict, zero when loading failed
	Elapsed time.Duration      // Time spent in analysis (not loading)
	Err     error              // Load error
}

// OK reports whether the file loaded and passed the check.
func (r *Result) OK() bool {
	return r.Err == nil && r.Check.OK
}

// job is one file waiting for a worker.
type job struct {
	ID   int
	Path string
}

// Run loads and checks every path and returns one result per path, in
// input order. Load errors are reported per result; the returned error
// is only set when ctx is canceled.
func Run(ctx context.Context, paths []string, cfg Config) ([]Result, error) {
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = runtime.NumCPU()
	}
	if cfg.MaxBufferedJobs <= 0 {
		cfg.MaxBufferedJobs = cfg.NumWorkers * 2
	}
	if cfg.Check.Logger == nil {
		cfg.Check.Logger = zap.NewNop()
	}

	jobs := make(chan job, cfg.MaxBufferedJobs)
	results := make(chan Result, cfg.MaxBufferedJobs)
	var wg sync.WaitGroup

	// Start workers
	for i := 0; i < cfg.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, &cfg, jobs, results)
		}()
	}

	// Feed jobs
	feederDone := make(chan error, 1)
	go func() {
		feederDone <- feed(ctx, paths, jobs)
		close(jobs)
	}()

	// Close results once every worker is done
	go func() {
		wg.Wait()
		close(results)
	}()

	all := collect(results)
	if err := <-feederDone; err != nil {
		return all, err
	}
	return all, nil
}

func feed(ctx context.Context, paths []string, jobs chan<- job) error {
	for i, path := range paths {
		select {
		case jobs <- job{ID: i, Path: path}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// worker loads and checks files until jobs is drained or ctx is done.
func worker(ctx context.Context, cfg *Config, jobs <-chan job, results chan<- Result) {
	for j := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}
		results <- process(cfg, j)
	}
}

func process(cfg *Config, j job) Result {
	res := Result{ID: j.ID, Path: j.Path}

	prog, err := dudecheck.LoadFile(j.Path, cfg.Check.Format)
	if err != nil {
		cfg.Check.Logger.Debug("load failed", zap.String("file", j.Path), zap.Error(err))
		res.Err = err
		return res
	}

	check := cfg.Check
	start := time.Now()
	res.Check = prog.Check(&check)
	res.Elapsed = time.Since(start)
	res.Program = prog
	return res
}

// collect gathers all results and restores input order.
func collect(results <-chan Result) []Result {
	var all []Result
	for r := range results {
		all = append(all, r)
	}
	sortByID(all)
	return all
}

// sortByID sorts results by ID using insertion sort
// (results arrive nearly in order).
func sortByID(results []Result) {
	for i := 1; i < len(results); i++ {
		j := i
		for j > 0 && results[j-1].ID > results[j].ID {
			results[j-1], results[j] = results[j], results[j-1]
			j--
		}
	}
}
