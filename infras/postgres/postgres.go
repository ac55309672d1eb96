package postgres

//nolint:revive
import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"clubhouse/config"
	"clubhouse/shared/failure"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// TxRunner owns transaction boundaries for multi-step commands. The
// repositories never commit or roll back; a command composes repository calls
// inside one WithinTx closure and atomicity falls out of that single scope.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	WithinReadTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  CreatePostgresReadConn(*config),
		Write: CreatePostgresWriteConn(*config),
	}
}

// WithinTx runs fn inside a read-write transaction on the write connection.
// Any error (including a panic converted by the driver) rolls the whole
// transaction back and is returned wrapped into the failure taxonomy.
func (c *Connection) WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		return failure.FromPostgres("begin transaction", err) //nolint:wrapcheck
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to roll back transaction")
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return failure.FromPostgres("commit transaction", err) //nolint:wrapcheck
	}

	return nil
}

// WithinReadTx runs fn inside a read-only transaction on the read connection.
func (c *Connection) WithinReadTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := c.Read.BeginTxx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return failure.FromPostgres("begin read transaction", err) //nolint:wrapcheck
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to roll back read transaction")
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return failure.FromPostgres("commit read transaction", err) //nolint:wrapcheck
	}

	return nil
}

// Close releases both connection pools. Called once at shutdown.
func (c *Connection) Close() {
	if c.Read != nil {
		if err := c.Read.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close read connection")
		}
	}

	if c.Write != nil {
		if err := c.Write.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close write connection")
		}
	}
}

// getDBName returns the database name with prefix if configured
func getDBName(config config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}
	return baseName
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection(
		"write",
		config.DB.Postgres.Write.Username,
		config.DB.Postgres.Write.Password,
		config.DB.Postgres.Write.Host,
		config.DB.Postgres.Write.Port,
		getDBName(config, config.DB.Postgres.Write.Name),
		config.DB.Postgres.Write.SSLMode,
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
}

// CreatePostgresReadConn creates a database connection for read access.
func CreatePostgresReadConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection(
		"read",
		config.DB.Postgres.Read.Username,
		config.DB.Postgres.Read.Password,
		config.DB.Postgres.Read.Host,
		config.DB.Postgres.Read.Port,
		getDBName(config, config.DB.Postgres.Read.Name),
		config.DB.Postgres.Read.SSLMode,
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
}

// CreatePostgresConnection creates a database connection.
func CreatePostgresConnection(name, username, password, host, port, dbName, sslMode string, maxRetry, waitTime int) *sqlx.DB {
	descriptor := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", host).
			Str("port", port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
