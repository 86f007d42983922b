package puzzle

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Registry maps day numbers to their definitions.
// It is filled once at start-up and read-only afterwards.
type Registry struct {
	days map[int]Definition
}

// NewRegistry returns a registry holding defs.
// It panics on an invalid or duplicate definition: both are programming errors.
func NewRegistry(defs ...Definition) *Registry {
	r := &Registry{days: make(map[int]Definition, len(defs))}
	for _, d := range defs {
		r.Register(d)
	}

	return r
}

// Register adds d. It panics when d.Day is out of range, d.Load is nil or the
// day is already registered.
func (r *Registry) Register(d Definition) {
	if d.Day < 1 || d.Day > 25 {
		panic(fmt.Sprintf("puzzle: register day %d: %v", d.Day, ErrBadDay))
	}
	if d.Load == nil {
		panic(fmt.Sprintf("puzzle: register day %d: nil loader", d.Day))
	}
	if _, dup := r.days[d.Day]; dup {
		panic(fmt.Sprintf("puzzle: day %d registered twice", d.Day))
	}
	r.days[d.Day] = d
}

// Lookup returns the definition for day or ErrUnknownDay.
func (r *Registry) Lookup(day int) (Definition, error) {
	d, ok := r.days[day]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return d, nil
}

// Definitions returns every registered day in ascending order.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, 0, len(r.days))
	for _, d := range r.days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })

	return out
}

// ParseDay accepts "12", "d12", "day12" or "day 12" (case-insensitive).
func ParseDay(s string) (int, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	t = strings.TrimPrefix(t, "day")
	t = strings.TrimPrefix(t, "d")
	t = strings.TrimSpace(t)
	n, err := strconv.Atoi(t)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadDay, s)
	}
	if n < 1 || n > 25 {
		return 0, fmt.Errorf("%w: %d", ErrBadDay, n)
	}

	return n, nil
}
