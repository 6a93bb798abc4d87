package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/multierr"
)

// readElements returns the elements given as arguments, or the non-empty lines
// of the input file when there is no argument.
func readElements(args []string, input string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if input == "-" {
		return scanLines(stdin)
	}
	return readFile(input)
}

func readFile(path string) (elements []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open input file: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	return scanLines(f)
}

func scanLines(r io.Reader) ([]string, error) {
	var elements []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		elements = append(elements, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read input: %w", err)
	}
	return elements, nil
}

func writeElements(w io.Writer, elements []string) error {
	for _, e := range elements {
		if _, err := fmt.Fprintln(w, e); err != nil {
			return fmt.Errorf("could not write output: %w", err)
		}
	}
	return nil
}
