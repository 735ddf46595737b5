package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/performance-hub-api/internal/config"
	_ "modernc.org/sqlite" // driver sqlite em Go puro
)

type Conn interface {
	Queryer
	Builder() squirrel.StatementBuilderType
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

// Connection encapsula o *sql.DB e o dialeto em uso (postgres ou sqlite)
type Connection struct {
	*sql.DB
	driver string
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	var (
		db  *sql.DB
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = sql.Open("postgres", cfg.DSN)
		if err != nil {
			return nil, err
		}
		if cfg.MaxOpenConns > 0 {
			db.SetMaxOpenConns(cfg.MaxOpenConns)
		}
	case config.DriverSQLite:
		db, err = sql.Open("sqlite", sqliteDSN(cfg.DSN))
		if err != nil {
			return nil, err
		}
		// Um único escritor: evita SQLITE_BUSY e serializa as inserções
		db.SetMaxOpenConns(1)
	default:
		return nil, fmt.Errorf("database: driver não suportado: %q", cfg.Driver)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Connection{DB: db, driver: cfg.Driver}, nil
}

func sqliteDSN(path string) string {
	params := url.Values{}
	params.Add("_pragma", "foreign_keys(1)")
	params.Add("_pragma", "busy_timeout(5000)")
	return "file:" + path + "?" + params.Encode()
}

func (c *Connection) Driver() string {
	return c.driver
}

// Builder retorna o builder do squirrel com o placeholder do dialeto
func (c *Connection) Builder() squirrel.StatementBuilderType {
	if c.driver == config.DriverPostgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction run a query in the transaction
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}
