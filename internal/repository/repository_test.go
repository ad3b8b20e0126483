package repository_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const postgresImage = "postgres:17.6-alpine3.22"

// startDatabase runs a throwaway Postgres with the foodgram schema and
// returns a connected pool.
func startDatabase(ctx context.Context) (*postgres.PostgresContainer, *pgxpool.Pool, error) {
	container, err := postgres.Run(ctx, postgresImage,
		postgres.WithDatabase("foodgram"),
		postgres.WithInitScripts("../../migrations/01_foodgram.up.sql"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, nil, errors.Join(fmt.Errorf("container.ConnectionString: %w", err), testcontainers.TerminateContainer(container))
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, nil, errors.Join(fmt.Errorf("pgxpool.New: %w", err), testcontainers.TerminateContainer(container))
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, errors.Join(fmt.Errorf("pool.Ping: %w", err), testcontainers.TerminateContainer(container))
	}

	return container, pool, nil
}
