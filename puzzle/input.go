package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Lines reads r fully and returns its lines without terminators.
// Carriage returns are stripped; a trailing empty line is dropped.
func Lines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return lines, nil
}

// Block is a run of non-blank lines. Line is the 1-based number of its
// first line in the input.
type Block struct {
	Line  int
	Lines []string
}

// Blocks splits lines into groups separated by blank lines.
// Empty groups (consecutive blank lines) are skipped.
func Blocks(lines []string) []Block {
	var (
		out []Block
		cur Block
	)
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			if len(cur.Lines) > 0 {
				out = append(out, cur)
				cur = Block{}
			}
			continue
		}
		if len(cur.Lines) == 0 {
			cur.Line = i + 1
		}
		cur.Lines = append(cur.Lines, l)
	}
	if len(cur.Lines) > 0 {
		out = append(out, cur)
	}

	return out
}

// Malformed builds an ErrMalformedInput error carrying the 1-based line
// number and the offending text.
func Malformed(line int, text, format string, args ...any) error {
	return fmt.Errorf("%w: line %d %q: %s", ErrMalformedInput, line, text, fmt.Sprintf(format, args...))
}
