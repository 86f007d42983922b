// Command aoc runs the puzzle solvers.
//
//	aoc run 12                 # input from the configured directory
//	aoc run d16 valves.txt     # explicit input
//	aoc run --all --jobs 4
//	aoc list
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/aoc2022/days"
)

func main() {
	// Used until flags are parsed and the configured logger replaces it.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run builds the command tree and executes it with args.
func run(out io.Writer, args []string) error {
	root := newRootCmd(out, os.Stderr, days.Registry())
	root.SetArgs(args)

	return root.Execute()
}
