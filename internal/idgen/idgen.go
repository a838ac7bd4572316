// Package idgen produces the opaque string identifiers handed out to new
// training types, products and supplement logs.
package idgen

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

type Generator interface {
	New() (string, error)
}

// entropy is shared so ids minted in the same millisecond still increase,
// and locked because handlers call New concurrently.
var entropy = &ulid.LockedMonotonicReader{
	MonotonicReader: ulid.Monotonic(rand.Reader, 0),
}

// ULID implements Generator with time-ordered, collision-free ids.
type ULID struct{}

func (ULID) New() (string, error) {
	id, err := ulid.New(ulid.Timestamp(time.Now().UTC()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
