package onboarding

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// PostgresConfig holds connection pool settings for the Postgres-backed
// storage.
type PostgresConfig struct {
	ConnectionString  string        `env:"ONBOARDING_PG_CONN_URL,required"`
	MaxOpenConns      int32         `env:"ONBOARDING_PG_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns      int32         `env:"ONBOARDING_PG_MAX_IDLE_CONNS" envDefault:"5"`
	HealthCheckPeriod time.Duration `env:"ONBOARDING_PG_HEALTHCHECK_PERIOD" envDefault:"1m"`
	MaxConnIdleTime   time.Duration `env:"ONBOARDING_PG_MAX_CONN_IDLE_TIME" envDefault:"10m"`
	MaxConnLifetime   time.Duration `env:"ONBOARDING_PG_MAX_CONN_LIFETIME" envDefault:"30m"`

	RetryAttempts int           `env:"ONBOARDING_PG_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"ONBOARDING_PG_RETRY_INTERVAL" envDefault:"5s"`

	MigrationsTable string `env:"ONBOARDING_PG_MIGRATIONS_TABLE" envDefault:"schema_migrations"`
}

// ConnectPostgres establishes a PostgreSQL connection pool with retry logic.
// Uses linear backoff so transient startup races with the database resolve
// without hammering it.
func ConnectPostgres(ctx context.Context, cfg PostgresConfig) (*pgxpool.Pool, error) {
	connConfig, err := pgxpool.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseDBConfig, err)
	}
	connConfig.MaxConns = cfg.MaxOpenConns
	connConfig.MinConns = cfg.MaxIdleConns
	connConfig.HealthCheckPeriod = cfg.HealthCheckPeriod
	connConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	connConfig.MaxConnLifetime = cfg.MaxConnLifetime

	for i := range cfg.RetryAttempts {
		pool, err := pgxpool.NewWithConfig(ctx, connConfig)
		if err != nil {
			time.Sleep(time.Duration(i+1) * cfg.RetryInterval)
			continue
		}

		// Verify with an actual ping to catch auth and permission issues.
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			time.Sleep(time.Duration(i+1) * cfg.RetryInterval)
			continue
		}

		return pool, nil
	}

	return nil, ErrFailedToOpenDBConnection
}

// MigratePostgres applies the embedded schema migrations using goose.
func MigratePostgres(ctx context.Context, pool *pgxpool.Pool, cfg PostgresConfig) error {
	// Bridge the pgx pool to the database/sql interface goose expects.
	db := stdlib.OpenDBFromPool(pool)
	defer func(db *sql.DB) {
		_ = db.Close()
	}(db)

	goose.SetBaseFS(migrationsFS)
	goose.SetTableName(cfg.MigrationsTable)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	return nil
}

// PostgresStorage implements Storage on top of a pgx connection pool.
type PostgresStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresStorage wraps an existing connection pool.
func NewPostgresStorage(pool *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{pool: pool}
}

// CountActivities returns the number of activities the user has selected.
func (s *PostgresStorage) CountActivities(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM user_activities WHERE user_id = $1`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count user activities: %w", err)
	}
	return count, nil
}

// SaveDisplayName upserts the user's profile row with the given display name.
func (s *PostgresStorage) SaveDisplayName(ctx context.Context, userID uuid.UUID, displayName string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO profiles (user_id, display_name, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (user_id)
		 DO UPDATE SET display_name = EXCLUDED.display_name, updated_at = now()`,
		userID, displayName,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// ReplaceActivities swaps the user's activity selections in a single
// transaction so a concurrent completion check never observes a half-written
// set.
func (s *PostgresStorage) ReplaceActivities(ctx context.Context, userID uuid.UUID, activities []Activity) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`DELETE FROM user_activities WHERE user_id = $1`,
		userID,
	); err != nil {
		return fmt.Errorf("failed to clear activities: %w", err)
	}

	for _, a := range activities {
		if _, err := tx.Exec(ctx,
			`INSERT INTO user_activities (user_id, activity_id, skill_level)
			 VALUES ($1, $2, $3)`,
			userID, a.ActivityID, string(a.SkillLevel),
		); err != nil {
			return fmt.Errorf("failed to insert activity: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit activities: %w", err)
	}
	return nil
}
