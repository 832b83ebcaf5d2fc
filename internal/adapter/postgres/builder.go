package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Builder returns a squirrel statement builder with PostgreSQL placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Select runs a built query and scans all rows into dst (a pointer to a
// slice of structs with db tags).
func Select(ctx context.Context, pool *pgxpool.Pool, dst any, q squirrel.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, QuerierFromCtx(ctx, pool), dst, sql, args...)
}

// Get runs a built query and scans exactly one row into dst. A missing row
// yields pgx.ErrNoRows.
func Get(ctx context.Context, pool *pgxpool.Pool, dst any, q squirrel.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Get(ctx, QuerierFromCtx(ctx, pool), dst, sql, args...)
}
