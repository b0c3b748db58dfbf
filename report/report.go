// Package report renders a computation for people and machines, and appends
// the elapsed microseconds to the shared timing log.
//
// Formats:
//
//	text  – the "Min Costs" table, one line per vertex, then the elapsed time
//	json  – one object per run, unreachable costs as null
//	yaml  – the same document as json
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/shortest/core"
	"github.com/katalvlaran/shortest/path"
	"github.com/katalvlaran/shortest/sssp"
)

// ErrUnknownFormat indicates an unrecognised output format name.
var ErrUnknownFormat = errors.New("report: unknown format")

// NotAvailable is the text rendering of an infinite cost.
const NotAvailable = "n/a"

// Format selects the rendering.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a name to a Format. The empty string is FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Write renders rep to w in format f.
func Write(w io.Writer, rep *sssp.Report, f Format) error {
	switch f {
	case FormatText, "":
		return writeText(w, rep)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newDocument(rep)); err != nil {
			return fmt.Errorf("report: json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(rep)); err != nil {
			return fmt.Errorf("report: yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("report: yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

func writeText(w io.Writer, rep *sssp.Report) error {
	ew := &errWriter{w: w}
	ew.printf("Min Costs:\n")
	for _, e := range rep.Entries {
		cost, p := NotAvailable, path.Unreachable
		if e.Reachable {
			cost = fmt.Sprint(e.Cost)
			p = e.Path.String()
		}
		ew.printf("%11s%d:%11s Path: %s\n", "Vertex ", e.Vertex, cost, p)
	}
	ew.printf("\n")
	if ew.err != nil {
		return fmt.Errorf("report: text: %w", ew.err)
	}

	return WriteElapsed(w, rep.Micros)
}

// WriteElapsed prints the elapsed-time sentence.
func WriteElapsed(w io.Writer, micros int64) error {
	if _, err := fmt.Fprintf(w, "The algorithm took %d microseconds to perform.\n", micros); err != nil {
		return fmt.Errorf("report: elapsed: %w", err)
	}

	return nil
}

// WriteAdjacency prints the adjacency as a Start/Dest/Cost table in source order.
func WriteAdjacency(w io.Writer, adj *core.Adjacency) error {
	ew := &errWriter{w: w}
	ew.printf("Graph:\n")
	ew.printf("%13s%12s%5s\n", "Start_Vertex", "Dest_Vertex", "Cost")
	for _, e := range adj.Edges() {
		ew.printf("%7d%12d%11d\n", e.From, e.To, e.Weight)
	}
	ew.printf("\n")
	if ew.err != nil {
		return fmt.Errorf("report: adjacency: %w", ew.err)
	}

	return nil
}

// AppendTiming appends "<micros> " to the timing log at name, creating it if needed.
// Many runs share one log; each append is a single write.
func AppendTiming(name string, micros int64) error {
	f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("report: open timing log: %w", err)
	}
	if _, err = fmt.Fprintf(f, "%d ", micros); err != nil {
		_ = f.Close()
		return fmt.Errorf("report: write timing log: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("report: close timing log: %w", err)
	}

	return nil
}

// errWriter keeps the first write error and skips the rest.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
