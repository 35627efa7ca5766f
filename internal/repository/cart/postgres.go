package cart

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresGateway struct {
	pool *pgxpool.Pool
}

// NewPostgres executes cart commands on a pgx pool.
func NewPostgres(pool *pgxpool.Pool) Gateway {
	return &postgresGateway{pool: pool}
}

func (g *postgresGateway) Execute(ctx context.Context, command string, args ...any) error {
	_, err := g.pool.Exec(ctx, command, args...)
	return err
}
