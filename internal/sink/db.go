package sink

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Lumos-Labs-HQ/catalogseed/internal/catalog"
	"github.com/Masterminds/squirrel"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// DB executes one INSERT per row against a live database. Each statement
// runs on its own; no transaction is opened.
type DB struct {
	db *sql.DB
	qb squirrel.StatementBuilderType
}

func NewDB(db *sql.DB, dialect Dialect) *DB {
	return &DB{
		db: db,
		qb: squirrel.StatementBuilder.PlaceholderFormat(dialect.placeholder()),
	}
}

// OpenDB connects to url with the driver registered for dialect.
func OpenDB(ctx context.Context, dialect Dialect, url string) (*sql.DB, error) {
	if dialect == SQLite {
		url = strings.TrimPrefix(url, "sqlite://")
	}

	db, err := sql.Open(dialect.driverName(), url)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Insert(ctx context.Context, row catalog.Row) error {
	columns, values := catalog.Fields(row)

	_, err := d.qb.Insert(row.Table()).
		Columns(columns...).
		Values(values...).
		RunWith(d.db).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to execute insert: %w", err)
	}
	return nil
}

func (d *DB) Close() error {
	return d.db.Close()
}
