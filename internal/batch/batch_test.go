package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func writePrograms(t *testing.T, srcs ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, len(srcs))
	for i, src := range srcs {
		paths[i] = filepath.Join(dir, fmt.Sprintf("p%02d.dast", i))
		if err := os.WriteFile(paths[i], []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return paths
}

func TestRun(t *testing.T) {
	paths := writePrograms(t,
		"(assign x 0) (return (ident x))",
		"(return (ident y))",
		"(assign i 0) (for i (seq 0 3 1) [])",
		"(assign x",
	)
	paths = append(paths, filepath.Join(t.TempDir(), "missing.dast"))

	tests := []struct {
		name    string
		workers int
	}{
		{"sequential", 1},
		{"parallel", 4},
		{"defaults", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := Run(context.Background(), paths, Config{NumWorkers: tt.workers})
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if len(results) != len(paths) {
				t.Fatalf("got %d results, want %d", len(results), len(paths))
			}
			for i, r := range results {
				if r.ID != i || r.Path != paths[i] {
					t.Errorf("result %d is %d %s", i, r.ID, r.Path)
				}
			}

			wantOK := []bool{true, false, true, false, false}
			for i, r := range results {
				if r.OK() != wantOK[i] {
					t.Errorf("result %d OK() = %v, want %v (%+v)", i, r.OK(), wantOK[i], r)
				}
			}
			if results[1].Check.Diagnostic == nil || results[1].Check.Diagnostic.Name != "y" {
				t.Errorf("result 1 diagnostic = %+v", results[1].Check.Diagnostic)
			}
			if d := results[2].Check.Diagnostic; d == nil || !d.Warning {
				t.Errorf("result 2 diagnostic = %+v", d)
			}
			if results[3].Err == nil || results[3].Program != nil {
				t.Errorf("result 3 = %+v", results[3])
			}
			if results[4].Err == nil {
				t.Error("missing file must fail to load")
			}
		})
	}
}

func TestRunCanceled(t *testing.T) {
	srcs := make([]string, 64)
	for i := range srcs {
		srcs[i] = "(assign x 0)"
	}
	paths := writePrograms(t, srcs...)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := Run(ctx, paths, Config{NumWorkers: 1, MaxBufferedJobs: 1})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if len(results) == len(paths) {
		t.Error("canceled run must not check every file")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.NumWorkers <= 0 || cfg.MaxBufferedJobs != cfg.NumWorkers*2 {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
}

func TestSortByID(t *testing.T) {
	rs := []Result{{ID: 3}, {ID: 0}, {ID: 2}, {ID: 1}}
	sortByID(rs)
	for i, r := range rs {
		if r.ID != i {
			t.Fatalf("order = %v", rs)
		}
	}
}
