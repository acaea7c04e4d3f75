package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/nino/pkg/logger"
)

// record is one processed input.
type record struct {
	Input  string `json:"input" yaml:"input"`
	Valid  bool   `json:"valid" yaml:"valid"`
	Result string `json:"result,omitempty" yaml:"result,omitempty"`
}

type renderer func(w io.Writer, records []record) error

var renderers = map[string]renderer{
	"text": renderText,
	"json": renderJSON,
	"yaml": renderYAML,
}

// renderText prints "input<TAB>result" per record, with "invalid" as the
// result of a failed record.
func renderText(w io.Writer, records []record) error {
	for _, r := range records {
		result := r.Result
		if !r.Valid {
			result = "invalid"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", r.Input, result); err != nil {
			return err
		}
	}
	return nil
}

func renderJSON(w io.Writer, records []record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func renderYAML(w io.Writer, records []record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}

// emit renders records and reports errInvalidInput if any of them failed.
func (a *app) emit(w io.Writer, records []record) error {
	if err := renderers[a.output](w, records); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	invalid := 0
	for _, r := range records {
		if !r.Valid {
			invalid++
		}
	}
	a.log.Debug("inputs processed", logger.Count(len(records)), slog.Int("invalid", invalid))

	if invalid > 0 {
		return errInvalidInput
	}
	return nil
}
