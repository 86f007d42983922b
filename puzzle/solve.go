package puzzle

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

// Solve parses r with def.Load and evaluates both parts concurrently.
//
// Errors from the loader or from either part are wrapped with the day and
// part so the command can print a single diagnostic. The context only bounds
// the wait: parts are pure computations and are not interrupted.
func Solve(ctx context.Context, def Definition, r io.Reader) (Answer, error) {
	if def.Load == nil {
		return Answer{}, fmt.Errorf("day %02d: %w", def.Day, ErrUnknownDay)
	}
	sol, err := def.Load(r)
	if err != nil {
		return Answer{}, fmt.Errorf("day %02d: %w", def.Day, err)
	}

	var ans Answer
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := runPart(gctx, sol.PartOne)
		if err != nil {
			return fmt.Errorf("day %02d part one: %w", def.Day, err)
		}
		ans.PartOne = v
		return nil
	})
	g.Go(func() error {
		v, err := runPart(gctx, sol.PartTwo)
		if err != nil {
			return fmt.Errorf("day %02d part two: %w", def.Day, err)
		}
		ans.PartTwo = v
		return nil
	})
	if err := g.Wait(); err != nil {
		return Answer{}, err
	}

	return ans, nil
}

type partResult struct {
	value string
	err   error
}

// runPart evaluates part, returning early with ctx.Err() if ctx ends first.
func runPart(ctx context.Context, part func() (string, error)) (string, error) {
	if part == nil {
		return "", nil
	}
	done := make(chan partResult, 1)
	go func() {
		v, err := part()
		done <- partResult{v, err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.value, res.err
	}
}
