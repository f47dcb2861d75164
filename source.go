package gauss

import (
	"math/rand"

	"github.com/dgryski/go-farm"
	"github.com/google/uuid"
)

/*
SourceForKey derives a deterministic random source from a host key.
Agent and object keys are UUID strings and are canonicalized before
hashing, so the same key yields the same stream regardless of case or
formatting; any other string is hashed as raw bytes.
*/
func SourceForKey(key string) *rand.Rand {
	if id, err := uuid.Parse(key); err == nil {
		key = id.String()
	}
	seed := int64(farm.Hash64([]byte(key)))
	return rand.New(rand.NewSource(seed))
}
