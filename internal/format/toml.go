package format

import (
	"io"

	"github.com/BurntSushi/toml"
	"go.followtheprocess.codes/lox/internal/syntax/ast"
)

// TOMLExporter is an [Exporter] that transforms syntax trees into TOML documents.
type TOMLExporter struct{}

// document is the top level of an exported TOML document, TOML has no top
// level arrays so the statements live under a key.
type document struct {
	Statements ast.Program `toml:"statements"`
}

// Export implements [Exporter] for [TOMLExporter] and exports the given program
// as an array of statement tables.
func (t TOMLExporter) Export(w io.Writer, prog ast.Program) error {
	encoder := toml.NewEncoder(w)
	encoder.Indent = ""

	return encoder.Encode(document{Statements: prog})
}
