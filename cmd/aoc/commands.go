package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aoc2022/config"
	"github.com/katalvlaran/aoc2022/puzzle"
)

// app is the state shared by the subcommands once flags are parsed.
type app struct {
	out      io.Writer
	registry *puzzle.Registry
	cfg      config.Config
	log      *slog.Logger

	configPath string
	logLevel   string
	inputDir   string
}

func newRootCmd(out, errOut io.Writer, registry *puzzle.Registry) *cobra.Command {
	a := &app{out: out, registry: registry}
	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Solve Advent of Code 2022 puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(errOut)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (default "+config.DefaultPath+" if present)")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&a.inputDir, "input-dir", "", "directory holding dayNN.txt inputs")

	root.AddCommand(a.newRunCmd(), a.newListCmd())

	return root
}

// setup loads the config, applies flag overrides and installs the logger as
// the slog default.
func (a *app) setup(errOut io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.inputDir != "" {
		cfg.InputDir = a.inputDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := cfg.Level()
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.log)
	a.log.Debug("configuration loaded", "path", a.configPath, "input_dir", cfg.InputDir)

	return nil
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the solved days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, d := range a.registry.Definitions() {
				fmt.Fprintf(a.out, "%2d  %s\n", d.Day, d.Title)
			}
			return nil
		},
	}
}

func (a *app) newRunCmd() *cobra.Command {
	var (
		all  bool
		jobs int
	)
	cmd := &cobra.Command{
		Use:   "run [DAY [INPUT]]",
		Short: "Solve one day, or every day with --all",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case all && len(args) > 0:
				return errors.New("--all takes no arguments")
			case all:
				return a.runAll(cmd.Context(), jobs)
			case len(args) == 0:
				return errors.New("a day is required unless --all is set")
			}
			day, err := puzzle.ParseDay(args[0])
			if err != nil {
				return err
			}
			def, err := a.registry.Lookup(day)
			if err != nil {
				return err
			}
			path := a.cfg.InputPath(day)
			if len(args) == 2 {
				path = args[1]
			}
			ans, err := a.solve(cmd.Context(), def, path)
			if err != nil {
				return err
			}
			printAnswer(a.out, def, ans)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "solve every day that has an input file")
	cmd.Flags().IntVar(&jobs, "jobs", 4, "days solved at once with --all")

	return cmd
}

// solve reads path and runs both parts of def.
func (a *app) solve(ctx context.Context, def puzzle.Definition, path string) (puzzle.Answer, error) {
	f, err := os.Open(path)
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("day %02d: %w", def.Day, err)
	}
	defer f.Close()

	a.log.Info("solving", "day", def.Day, "input", path)
	start := time.Now()
	ans, err := puzzle.Solve(ctx, def, f)
	if err != nil {
		a.log.Error("failed", "day", def.Day, "err", err)
		return puzzle.Answer{}, err
	}
	a.log.Info("solved", "day", def.Day, "elapsed", time.Since(start))

	return ans, nil
}

// runAll solves every registered day with an input file, at most jobs at a
// time, and prints the answers in day order. Days without input are skipped.
func (a *app) runAll(ctx context.Context, jobs int) error {
	if jobs < 1 {
		return fmt.Errorf("--jobs must be positive, got %d", jobs)
	}
	defs := a.registry.Definitions()
	answers := make([]*puzzle.Answer, len(defs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, def := range defs {
		path := a.cfg.InputPath(def.Day)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			a.log.Warn("no input, skipping", "day", def.Day, "input", path)
			continue
		}
		g.Go(func() error {
			ans, err := a.solve(gctx, def, path)
			if err != nil {
				return err
			}
			answers[i] = &ans
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i, ans := range answers {
		if ans != nil {
			printAnswer(a.out, defs[i], *ans)
		}
	}

	return nil
}

func printAnswer(w io.Writer, def puzzle.Definition, ans puzzle.Answer) {
	fmt.Fprintf(w, "Day %02d (%s)\n  part one: %s\n  part two: %s\n", def.Day, def.Title, ans.PartOne, ans.PartTwo)
}
