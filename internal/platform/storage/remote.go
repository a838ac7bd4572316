package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/covaciuandrei/gym-attendance-tracker/internal/platform/config"
)

// Remote stores every document as one row of a single table keyed by
// (collection path, document id). Range queries never filter server-side:
// the year-month bucket is part of the collection path, so listing a bucket
// is a plain equality scan.
type Remote struct {
	db *sql.DB
}

const remoteSchema = `
CREATE TABLE IF NOT EXISTS documents (
	collection_path VARCHAR(191) NOT NULL,
	doc_id          VARCHAR(191) NOT NULL,
	doc             JSON         NOT NULL,
	updated_at      TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	PRIMARY KEY (collection_path, doc_id)
)`

const (
	remoteGetQuery    = `SELECT doc FROM documents WHERE collection_path = ? AND doc_id = ?`
	remoteSetQuery    = `INSERT INTO documents (collection_path, doc_id, doc) VALUES (?, ?, ?) ON DUPLICATE KEY UPDATE doc = VALUES(doc)`
	remoteDeleteQuery = `DELETE FROM documents WHERE collection_path = ? AND doc_id = ?`
	remoteListQuery   = `SELECT doc_id, doc FROM documents WHERE collection_path = ?`
)

// OpenRemote connects, tunes the pool and ensures the schema exists.
// Any failure here is a BackendInitError: the caller falls back to the
// local store instead of surfacing it.
func OpenRemote(c config.DatabaseConfig) (*Remote, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&timeout=3s&readTimeout=5s&writeTimeout=5s&loc=UTC",
		c.Username, c.Password, c.Host, c.Port, c.DBName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open remote store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect remote store: %w", err)
	}

	db.SetMaxOpenConns(40)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	r := NewRemote(db)
	if _, err := db.Exec(remoteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure remote schema: %w", err)
	}
	return r, nil
}

// NewRemote wraps an existing connection. Used by OpenRemote and by tests.
func NewRemote(db *sql.DB) *Remote { return &Remote{db: db} }

func (r *Remote) Get(ctx context.Context, p Path) (json.RawMessage, error) {
	if err := checkDocPath(p); err != nil {
		return nil, err
	}
	col, id := Path(p[:len(p)-1]).String(), p[len(p)-1]

	var doc []byte
	err := r.db.QueryRowContext(ctx, remoteGetQuery, col, id).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(doc), nil
}

func (r *Remote) Set(ctx context.Context, p Path, doc any) error {
	if err := checkDocPath(p); err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", p, err)
	}
	col, id := Path(p[:len(p)-1]).String(), p[len(p)-1]
	_, err = r.db.ExecContext(ctx, remoteSetQuery, col, id, raw)
	return err
}

func (r *Remote) Delete(ctx context.Context, p Path) error {
	if err := checkDocPath(p); err != nil {
		return err
	}
	col, id := Path(p[:len(p)-1]).String(), p[len(p)-1]
	_, err := r.db.ExecContext(ctx, remoteDeleteQuery, col, id)
	return err
}

func (r *Remote) List(ctx context.Context, p Path) (map[string]json.RawMessage, error) {
	if err := checkCollectionPath(p); err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, remoteListQuery, p.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]json.RawMessage)
	for rows.Next() {
		var (
			id  string
			doc []byte
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, err
		}
		out[id] = json.RawMessage(doc)
	}
	return out, rows.Err()
}

func (r *Remote) IsLocalFallback() bool { return false }

func (r *Remote) Close() error { return r.db.Close() }
