package main

import (
	"bufio"
	"errors"
	"io"

	"github.com/dmitrymomot/nino/pkg/sanitizer"
)

// readInputs returns args, or one entry per non-empty line of r when args is empty.
// Lines keep their inner and trailing spaces since strict validation counts them.
func readInputs(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var inputs []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line = sanitizer.TrimLineEnding(line); line != "" {
			inputs = append(inputs, line)
		}
		if errors.Is(err, io.EOF) {
			return inputs, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
