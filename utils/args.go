package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

// Tokenize splits a command line the way a POSIX shell would: whitespace
// separates words, and single or double quotes group them.
func Tokenize(line string) ([]string, error) {
	return shlex.Split(line)
}

// ParseID parses a positive integer identifier.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// ParseInts parses every argument as an integer, failing on the first one that is not.
func ParseInts(raw []string) ([]int, error) {
	out := make([]int, 0, len(raw))
	for _, r := range raw {
		n, err := strconv.Atoi(strings.TrimSpace(r))
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", r)
		}
		out = append(out, n)
	}
	return out, nil
}
