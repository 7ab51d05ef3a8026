package storage

import (
	"fmt"
	"io"
)

// NewStore builds a run-artifact store. An empty kind selects the
// memory backend; sqlitePath is only consulted by the sqlite backend.
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return newSQLiteStore(sqlitePath)
	default:
		return nil, fmt.Errorf("unknown store kind %q (want memory or sqlite)", kind)
	}
}

// CloseIfSupported closes stores that hold external resources; the
// memory backend has none and is left alone.
func CloseIfSupported(store Store) error {
	if closer, ok := store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
