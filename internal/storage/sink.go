// Package storage provides the durable key-value sink the user state store
// serializes session blobs into. The store writes fire-and-forget after every
// mutation; sink failures never affect in-memory state.
package storage

import "context"

// Sink is the persistence boundary for serialized session state.
type Sink interface {
	Save(ctx context.Context, key string, blob []byte) error
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Delete(ctx context.Context, key string) error
}

// KeyNamespace prefixes every persisted session key. The bare namespace is
// also the legacy single-user storage key carried over from the first client.
const KeyNamespace = "empower-her-storage"

// StateKey builds the namespaced sink key for a user's session blob.
func StateKey(userID string) string {
	if userID == "" {
		return KeyNamespace
	}
	return KeyNamespace + ":" + userID
}
