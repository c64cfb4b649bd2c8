package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	_ "github.com/lib/pq"
)

var (
	ErrMissingDSN = errors.New("postgres dsn is empty")
	ErrInvalidDSN = errors.New("postgres dsn is invalid")
)

// ConnectPostgres opens a pooled connection and pings it once.
func ConnectPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	target, err := postgresTarget(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Printf("[database][postgres] open failed target=%s err=%v", target, err)
		return nil, err
	}
	db.SetMaxIdleConns(5)
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		log.Printf("[database][postgres] ping failed target=%s err=%v", target, err)
		_ = db.Close()
		return nil, err
	}
	log.Printf("[database][postgres] connected target=%s", target)
	return db, nil
}

// postgresTarget parses the DSN (URL or key=value form) and returns
// user@host:port/database for logs. The password never leaves here.
func postgresTarget(dsn string) (string, error) {
	if strings.TrimSpace(dsn) == "" {
		return "", ErrMissingDSN
	}
	cfg, err := pgconn.ParseConfig(dsn)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDSN, err)
	}
	return fmt.Sprintf("%s@%s:%d/%s", cfg.User, cfg.Host, cfg.Port, cfg.Database), nil
}
