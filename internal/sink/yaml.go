package sink

import (
	"context"
	"io"

	"github.com/Lumos-Labs-HQ/catalogseed/internal/catalog"
	"gopkg.in/yaml.v3"
)

type yamlDocument struct {
	Table string      `yaml:"table"`
	Row   catalog.Row `yaml:"row"`
}

// YAMLWriter writes one YAML document per row.
type YAMLWriter struct {
	enc *yaml.Encoder
}

func NewYAMLWriter(w io.Writer) *YAMLWriter {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &YAMLWriter{enc: enc}
}

func (y *YAMLWriter) Insert(ctx context.Context, row catalog.Row) error {
	return y.enc.Encode(yamlDocument{Table: row.Table(), Row: row})
}

// Close flushes the encoder. It does not close the underlying writer.
func (y *YAMLWriter) Close() error {
	return y.enc.Close()
}
