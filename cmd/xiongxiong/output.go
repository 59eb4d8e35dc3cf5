package main

import (
	"encoding/json"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

var ErrUnknownOutput = errors.New("output format must be json or yaml")

func writeOutput(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return ErrUnknownOutput
	}
}
