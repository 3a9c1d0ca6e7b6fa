// dudecheck - scope checker for dude programs
//
// Loads the syntax tree of each given file (JSON, YAML or notation) and
// reports the first use of an undeclared variable or shadowed name.
// Several files are checked in parallel; output stays in argument order.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kolkov/dudecheck"
	"github.com/kolkov/dudecheck/internal/batch"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		os.Exit(exitCode(err, os.Stderr))
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:                   "dudecheck",
		Usage:                  "Check dude programs for undeclared and shadowed variables",
		Version:                fmt.Sprintf("%s (library %s)", version, dudecheck.Version),
		UseShortOptionHandling: true,
		Writer:                 stdout,
		ErrWriter:              stderr,
		ExitErrHandler:         func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Program to check (JSON, YAML or notation)",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Input format: auto, json, yaml or notation",
				Value: "auto",
			},
			&cli.BoolFlag{
				Name:    "print",
				Aliases: []string{"p"},
				Usage:   "Print the verdict as true or false",
			},
			&cli.BoolFlag{
				Name:    "time",
				Aliases: []string{"t"},
				Usage:   "Print how long the analysis took",
			},
			&cli.StringFlag{
				Name:    "export",
				Aliases: []string{"e"},
				Usage:   "Write the loaded tree to stdout as a json or yaml document",
			},
			&cli.BoolFlag{
				Name:    "dump",
				Aliases: []string{"d"},
				Usage:   "Write the loaded tree to stderr in notation form",
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Usage:   "Number of files checked in parallel (default: number of CPUs)",
			},
			&cli.BoolFlag{
				Name:  "positions",
				Usage: "Prefix diagnostics with their source position",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Read options from a TOML file",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored diagnostics",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log analysis events to stderr",
			},
			&cli.BoolFlag{
				Name: "ebnf",
				Usage: "Print the EBNF grammar of the notation. " +
					"Useful for writing trees by hand.",
			},
		},
		Action: check,
	}
}

func check(c *cli.Context) error {
	stdout, stderr := c.App.Writer, c.App.ErrWriter

	if c.Bool("ebnf") {
		fmt.Fprintln(stdout, dudecheck.Grammar())
		return nil
	}

	cfg, err := buildConfig(c)
	if err != nil {
		return cli.Exit(color.RedString("Error: %s", err), 1)
	}
	if !cfg.UseColor() {
		color.NoColor = true
	}

	var paths []string
	if f := c.String("file"); f != "" {
		paths = append(paths, f)
	}
	paths = append(paths, c.Args().Slice()...)
	if len(paths) == 0 {
		return cli.Exit(color.RedString("Error: No file specified"), 1)
	}

	if c.Bool("verbose") {
		cfg.Logger = newLogger(stderr)
		defer func() { _ = cfg.Logger.Sync() }()
	}

	bcfg := batch.DefaultConfig()
	if c.IsSet("jobs") {
		bcfg.NumWorkers = c.Int("jobs")
		bcfg.MaxBufferedJobs = 0
	}
	bcfg.Check = *cfg

	results, err := batch.Run(c.Context, paths, bcfg)
	if err != nil {
		return cli.Exit(color.RedString("Error: %s", err), 1)
	}

	failed := false
	for i := range results {
		if !report(c, cfg, &results[i], len(results) > 1) {
			failed = true
		}
	}
	if failed {
		return cli.Exit("", 1)
	}
	return nil
}

// report prints the outcome for one file and reports whether it passed.
// With several files every line is prefixed with the file name.
func report(c *cli.Context, cfg *dudecheck.Config, r *batch.Result, multi bool) bool {
	stdout, stderr := c.App.Writer, c.App.ErrWriter
	prefix := ""
	if multi {
		prefix = r.Path + ": "
	}

	if r.Err != nil {
		fmt.Fprintln(stderr, color.RedString("Error: %s", r.Err))
		return false
	}

	if c.Bool("dump") {
		if err := r.Program.Dump(stderr); err != nil {
			fmt.Fprintln(stderr, color.RedString("Error dumping tree: %s", err))
			return false
		}
	}
	if format := c.String("export"); format != "" {
		if err := r.Program.Export(stdout, format); err != nil {
			fmt.Fprintln(stderr, color.RedString("Error exporting tree: %s", err))
			return false
		}
	}

	if d := r.Check.Diagnostic; d != nil {
		msg := d.Message
		if cfg.ShowPositions {
			msg = d.String()
		}
		paint := color.New(color.FgRed)
		if d.Warning {
			paint = color.New(color.FgYellow)
		}
		paint.Fprintln(stdout, prefix+msg)
	}
	if cfg.Time {
		fmt.Fprintf(stdout, "%sAnalyzing took %ds %dms\n", prefix,
			int(r.Elapsed/time.Second), int(r.Elapsed%time.Second/time.Millisecond))
	}
	if cfg.Print {
		fmt.Fprintf(stdout, "%s%t\n", prefix, r.Check.OK)
	}
	return r.Check.OK
}

// buildConfig reads the optional config file and applies explicitly set
// flags on top of it.
func buildConfig(c *cli.Context) (*dudecheck.Config, error) {
	cfg := &dudecheck.Config{}
	if path := c.String("config"); path != "" {
		loaded, err := dudecheck.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.IsSet("format") || cfg.Format == "" {
		cfg.Format = c.String("format")
	}
	if c.IsSet("positions") {
		cfg.ShowPositions = c.Bool("positions")
	}
	if c.IsSet("print") {
		cfg.Print = c.Bool("print")
	}
	if c.IsSet("time") {
		cfg.Time = c.Bool("time")
	}
	if c.Bool("no-color") {
		off := false
		cfg.Color = &off
	}
	cfg.Output = c.App.Writer
	return cfg, nil
}

func newLogger(w io.Writer) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zap.DebugLevel))
}

// exitCode prints the message of err, if any, and returns the process
// exit status.
func exitCode(err error, stderr io.Writer) int {
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		if msg := ec.Error(); msg != "" {
			fmt.Fprintln(stderr, msg)
		}
		return ec.ExitCode()
	}
	fmt.Fprintln(stderr, color.RedString("Error: %s", err))
	return 1
}
