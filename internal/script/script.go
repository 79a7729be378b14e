// Package script reads operator-pasted scripts from the console.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Read consumes lines from r until two consecutive empty lines or
// end-of-input, then returns the collected text with surrounding
// whitespace trimmed.
func Read(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" && len(lines) > 0 && lines[len(lines)-1] == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read script: %w", err)
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
