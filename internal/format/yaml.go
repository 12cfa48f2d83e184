package format

import (
	"io"

	"go.followtheprocess.codes/lox/internal/syntax/ast"
	"go.yaml.in/yaml/v4"
)

const yamlIndent = 2

// YAMLExporter is an [Exporter] that transforms syntax trees into YAML documents.
type YAMLExporter struct{}

// Export implements [Exporter] for [YAMLExporter] and exports the given program as
// a YAML sequence of statements.
func (y YAMLExporter) Export(w io.Writer, prog ast.Program) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(prog); err != nil {
		return err
	}

	return encoder.Close()
}
