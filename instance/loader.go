// loader.go - .nmr file loading (§6): a whitespace-delimited text file,
// one edge per line: two positive integers "i j" with i < j. Trailing
// whitespace and empty lines are accepted; any other content is rejected
// with ErrMalformedEdge.
package instance

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Load reads a .nmr file at path and builds an Instance from its edge
// records. Returns ErrInputFile wrapping the underlying I/O error if the
// file cannot be opened, or ErrMalformedEdge for any non-blank line that
// is not exactly two positive integers i < j.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: open %q: %v: %w", path, err, ErrInputFile)
	}
	defer f.Close()

	pairs, err := parseNMR(f)
	if err != nil {
		return nil, err
	}

	return New(pairs)
}

// parseNMR scans r line by line, skipping blank lines (after trimming
// trailing whitespace) and parsing every other line as "i j".
func parseNMR(r *os.File) ([][2]int, error) {
	var pairs [][2]int
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("instance: line %q: %w", line, ErrMalformedEdge)
		}
		i, errI := strconv.Atoi(fields[0])
		j, errJ := strconv.Atoi(fields[1])
		if errI != nil || errJ != nil || i < 1 || j < 1 || i >= j {
			return nil, fmt.Errorf("instance: line %q: %w", line, ErrMalformedEdge)
		}
		pairs = append(pairs, [2]int{i, j})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("instance: read %q: %v: %w", r.Name(), err, ErrInputFile)
	}

	return pairs, nil
}
