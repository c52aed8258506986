package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// app carries what every subcommand needs.
type app struct {
	log    zerolog.Logger
	getenv func(string) string
}

func (a *app) config() (config, error) {
	return loadConfig(a.getenv)
}

func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
