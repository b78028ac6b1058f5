package sink

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Lumos-Labs-HQ/catalogseed/internal/catalog"
)

// SQLWriter renders each row as a literal INSERT statement.
type SQLWriter struct {
	w       io.Writer
	dialect Dialect
}

func NewSQLWriter(w io.Writer, dialect Dialect) *SQLWriter {
	return &SQLWriter{w: w, dialect: dialect}
}

func (s *SQLWriter) Insert(ctx context.Context, row catalog.Row) error {
	_, err := io.WriteString(s.w, s.Statement(row)+"\n")
	return err
}

// Statement returns the INSERT statement for row, terminated by a semicolon.
func (s *SQLWriter) Statement(row catalog.Row) string {
	columns, values := catalog.Fields(row)

	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = s.dialect.quoteIdent(col)
	}
	literals := make([]string, len(values))
	for i, val := range values {
		literals[i] = s.dialect.formatValue(val)
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		s.dialect.quoteIdent(row.Table()),
		strings.Join(quoted, ", "),
		strings.Join(literals, ", "),
	)
}
