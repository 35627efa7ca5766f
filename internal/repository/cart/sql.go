package cart

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type sqlGateway struct {
	db *sql.DB
}

// NewSQL executes cart commands through database/sql. Open the handle with
// the "pgx" driver name.
func NewSQL(db *sql.DB) Gateway {
	return &sqlGateway{db: db}
}

func (g *sqlGateway) Execute(ctx context.Context, command string, args ...any) error {
	_, err := g.db.ExecContext(ctx, command, args...)
	return err
}
