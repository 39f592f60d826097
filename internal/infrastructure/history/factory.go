package history

import (
	"fmt"

	"github.com/doeshing/vyra-go/internal/domain"
	"github.com/doeshing/vyra-go/internal/ports"
)

// New builds the history backend named by the configuration.
func New(backend string) (ports.HistoryRepository, error) {
	switch backend {
	case "", domain.HistoryBackendMemory:
		return NewMemoryStore(), nil
	case domain.HistoryBackendSQLite:
		store, err := NewSQLiteStore()
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported history backend: %s", backend)
	}
}
