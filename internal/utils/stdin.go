package utils

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// ReadFromStdin reads all content from standard input.
// It returns an empty string without blocking when stdin is a terminal.
func ReadFromStdin() (string, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return "", err
	}

	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", nil
	}

	// Empty regular file, nothing to read
	if stat.Mode().IsRegular() && stat.Size() == 0 {
		return "", nil
	}

	bytes, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(bytes)), nil
}

// SplitLines returns the non-blank lines of content with surrounding spaces trimmed
func SplitLines(content string) []string {
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
