package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite"
)

// Local is the on-device fallback: a SQLite file holding one JSON blob per
// logical collection root, with document ids as the blob's object keys.
// Every write is a read-modify-write of the whole blob, serialized by a
// process-wide mutex; across processes it is last-write-wins, same as the
// remote store.
type Local struct {
	db *sql.DB
	mu sync.Mutex
}

const localSchema = `
CREATE TABLE IF NOT EXISTS blobs (
	root_key TEXT PRIMARY KEY,
	docs     TEXT NOT NULL
)`

func OpenLocal(path string) (*Local, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create local store dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open local store: %w", err)
	}
	if _, err := db.Exec(localSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure local schema: %w", err)
	}
	return &Local{db: db}, nil
}

func (l *Local) Get(ctx context.Context, p Path) (json.RawMessage, error) {
	if err := checkDocPath(p); err != nil {
		return nil, err
	}
	root, id := localDocKey(p)
	docs, err := l.loadBlob(ctx, root)
	if err != nil {
		return nil, err
	}
	return docs[id], nil
}

func (l *Local) Set(ctx context.Context, p Path, doc any) error {
	if err := checkDocPath(p); err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", p, err)
	}
	root, id := localDocKey(p)

	l.mu.Lock()
	defer l.mu.Unlock()
	docs, err := l.loadBlob(ctx, root)
	if err != nil {
		return err
	}
	docs[id] = json.RawMessage(raw)
	return l.saveBlob(ctx, root, docs)
}

func (l *Local) Delete(ctx context.Context, p Path) error {
	if err := checkDocPath(p); err != nil {
		return err
	}
	root, id := localDocKey(p)

	l.mu.Lock()
	defer l.mu.Unlock()
	docs, err := l.loadBlob(ctx, root)
	if err != nil {
		return err
	}
	if _, ok := docs[id]; !ok {
		return nil
	}
	delete(docs, id)
	return l.saveBlob(ctx, root, docs)
}

func (l *Local) List(ctx context.Context, p Path) (map[string]json.RawMessage, error) {
	if err := checkCollectionPath(p); err != nil {
		return nil, err
	}
	root, prefix := localCollectionKey(p)
	docs, err := l.loadBlob(ctx, root)
	if err != nil {
		return nil, err
	}
	if prefix == "" {
		return docs, nil
	}
	out := make(map[string]json.RawMessage)
	for id, doc := range docs {
		if matchesBucket(id, doc, prefix) {
			out[id] = doc
		}
	}
	return out, nil
}

func (l *Local) IsLocalFallback() bool { return true }

func (l *Local) Close() error { return l.db.Close() }

// matchesBucket filters a blob entry by its record's own date field; ids are
// only consulted when the document carries no date.
func matchesBucket(id string, doc json.RawMessage, prefix string) bool {
	var probe struct {
		Date string `json:"date"`
	}
	if err := json.Unmarshal(doc, &probe); err == nil && probe.Date != "" {
		return strings.HasPrefix(probe.Date, prefix)
	}
	return strings.HasPrefix(id, prefix)
}

func (l *Local) loadBlob(ctx context.Context, root string) (map[string]json.RawMessage, error) {
	var raw string
	err := l.db.QueryRowContext(ctx, `SELECT docs FROM blobs WHERE root_key = ?`, root).Scan(&raw)
	if err == sql.ErrNoRows {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, err
	}
	docs := make(map[string]json.RawMessage)
	if err := json.Unmarshal([]byte(raw), &docs); err != nil {
		return nil, fmt.Errorf("decode blob %s: %w", root, err)
	}
	return docs, nil
}

func (l *Local) saveBlob(ctx context.Context, root string, docs map[string]json.RawMessage) error {
	raw, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("encode blob %s: %w", root, err)
	}
	_, err = l.db.ExecContext(ctx,
		`INSERT INTO blobs (root_key, docs) VALUES (?, ?) ON CONFLICT(root_key) DO UPDATE SET docs = excluded.docs`,
		root, string(raw))
	return err
}
