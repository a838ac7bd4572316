// Package storage is the persistence layer: one Backend interface with two
// implementations, a networked document store (MySQL) and an on-device
// fallback (SQLite). The variant is chosen once at startup and never mixed
// per call.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Path addresses a document or collection by alternating collection/id
// segments, e.g. users/{userId}/attendances/{yearMonth}/days/{date}.
// Even-length paths name documents, odd-length paths name collections.
type Path []string

func (p Path) String() string { return strings.Join(p, "/") }

// Backend is the capability set shared by both store variants.
//
// Reading an absent document returns (nil, nil): not-found is an empty
// result, never an error. Write and delete failures propagate unwrapped.
type Backend interface {
	// Get reads one document.
	Get(ctx context.Context, p Path) (json.RawMessage, error)
	// Set writes one document, overwriting any existing one.
	Set(ctx context.Context, p Path, doc any) error
	// Delete removes one document. Deleting an absent document is a no-op.
	Delete(ctx context.Context, p Path) error
	// List returns every document under a collection path, keyed by id.
	List(ctx context.Context, p Path) (map[string]json.RawMessage, error)
	// IsLocalFallback reports whether the process runs in degraded local mode.
	IsLocalFallback() bool
	Close() error
}

var yearMonthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

func checkDocPath(p Path) error {
	if len(p) < 2 || len(p)%2 != 0 {
		return fmt.Errorf("storage: %q is not a document path", p.String())
	}
	return nil
}

func checkCollectionPath(p Path) error {
	if len(p) < 1 || len(p)%2 != 1 {
		return fmt.Errorf("storage: %q is not a collection path", p.String())
	}
	return nil
}

// localDocKey folds the bucket level out of a document path. The local store
// keeps one blob per logical collection root, so
// users/u/attendances/2025-01/days/2025-01-05 lands in blob
// "users/u/attendances" under id "2025-01-05".
func localDocKey(p Path) (root, id string) {
	if len(p) >= 4 && yearMonthRe.MatchString(p[len(p)-3]) {
		return Path(p[:len(p)-3]).String(), p[len(p)-1]
	}
	return Path(p[:len(p)-1]).String(), p[len(p)-1]
}

// localCollectionKey maps a collection path onto its blob root plus the
// bucket prefix to filter by (empty for unbucketed collections).
func localCollectionKey(p Path) (root, prefix string) {
	if len(p) >= 3 && yearMonthRe.MatchString(p[len(p)-2]) {
		return Path(p[:len(p)-2]).String(), p[len(p)-2]
	}
	return p.String(), ""
}
