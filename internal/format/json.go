package format

import (
	"encoding/json"
	"io"

	"go.followtheprocess.codes/lox/internal/syntax/ast"
)

// JSONExporter is an [Exporter] that transforms syntax trees into JSON documents.
type JSONExporter struct{}

// Export implements [Exporter] for [JSONExporter] and exports the given program
// as a JSON array of statements.
func (j JSONExporter) Export(w io.Writer, prog ast.Program) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(prog)
}
