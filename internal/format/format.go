// Package format provides the ways a lox syntax tree can be written out.
//
// Notably, the package provides the [Exporter] interface for doing this
// in a format-agnostic way, along with the built in text, JSON, YAML and
// TOML exporters.
package format

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"go.followtheprocess.codes/lox/internal/syntax/ast"
)

// Exporter is the interface defining a mechanism for exporting a lox syntax
// tree into an external format.
type Exporter interface {
	// Export exports the [ast.Program] into an external format, written to w.
	Export(w io.Writer, prog ast.Program) error
}

// exporters are the built in exporters by name.
var exporters = map[string]Exporter{
	"text": TextExporter{},
	"json": JSONExporter{},
	"yaml": YAMLExporter{},
	"toml": TOMLExporter{},
}

// Names returns the names of the built in exporters, sorted.
func Names() []string {
	names := make([]string, 0, len(exporters))
	for name := range exporters {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Lookup returns the built in [Exporter] called name.
func Lookup(name string) (Exporter, error) {
	exporter, ok := exporters[name]
	if !ok {
		return nil, fmt.Errorf("unknown format %q, allowed values are (%s)", name, strings.Join(Names(), "|"))
	}

	return exporter, nil
}

// TextExporter is an [Exporter] that writes the parenthesised textual form
// of the syntax tree, see [ast.Fprint].
type TextExporter struct{}

// Export implements [Exporter] for [TextExporter].
func (t TextExporter) Export(w io.Writer, prog ast.Program) error {
	return ast.Fprint(w, prog)
}
