package contact

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// IDLength is the length of ids produced by NewID.
var IDLength = base64.RawURLEncoding.EncodedLen(len(uuid.UUID{}))

// NewID returns a random 22-character id using the URL-safe base64 alphabet.
func NewID() string {
	id := uuid.New()
	return base64.RawURLEncoding.EncodeToString(id[:])
}

// uniqueID draws ids from gen until one is not in taken.
func uniqueID(gen func() string, taken []Contact) string {
	used := make(map[string]struct{}, len(taken))
	for _, c := range taken {
		used[c.ID] = struct{}{}
	}
	for {
		id := gen()
		if _, loaded := used[id]; !loaded {
			return id
		}
	}
}
