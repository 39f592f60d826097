package history

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/vyra-go/internal/domain"
	"github.com/doeshing/vyra-go/internal/ports"
)

// backends runs each contract test against every history implementation.
func backends(t *testing.T) map[string]ports.HistoryRepository {
	t.Helper()
	sqliteStore, err := NewSQLiteStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteStore.Close() })

	return map[string]ports.HistoryRepository{
		"memory": NewMemoryStore(),
		"sqlite": sqliteStore,
	}
}

func exchange(i int) domain.Exchange {
	return domain.Exchange{
		UserText:      fmt.Sprintf("question %d", i),
		AssistantText: fmt.Sprintf("answer %d", i),
		Timestamp:     time.Date(2024, 1, 1, 0, 0, i, 0, time.UTC),
	}
}

func TestRetentionKeepsLastTen(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for i := 1; i <= 11; i++ {
				require.NoError(t, store.Append("s1", exchange(i)))
			}

			all, err := store.All("s1")
			require.NoError(t, err)
			require.Len(t, all, domain.HistoryRetention)
			for idx, ex := range all {
				assert.Equal(t, exchange(idx+2), ex)
			}
		})
	}
}

func TestRecentReturnsTail(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for i := 1; i <= 7; i++ {
				require.NoError(t, store.Append("s1", exchange(i)))
			}

			recent, err := store.Recent("s1", domain.PromptHistoryWindow)
			require.NoError(t, err)
			require.Len(t, recent, 5)
			assert.Equal(t, "question 3", recent[0].UserText)
			assert.Equal(t, "question 7", recent[4].UserText)

			short, err := store.Recent("s1", 50)
			require.NoError(t, err)
			assert.Len(t, short, 7)

			none, err := store.Recent("s1", 0)
			require.NoError(t, err)
			assert.Empty(t, none)
		})
	}
}

func TestUnknownSessionIsEmpty(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			all, err := store.All("nobody")
			require.NoError(t, err)
			assert.NotNil(t, all)
			assert.Empty(t, all)

			recent, err := store.Recent("nobody", 5)
			require.NoError(t, err)
			assert.Empty(t, recent)

			assert.NoError(t, store.Clear("nobody"))
		})
	}
}

func TestClearEmptiesOnlyThatSession(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Append("a", exchange(1)))
			require.NoError(t, store.Append("b", exchange(2)))

			require.NoError(t, store.Clear("a"))

			a, err := store.All("a")
			require.NoError(t, err)
			assert.Empty(t, a)

			b, err := store.All("b")
			require.NoError(t, err)
			assert.Len(t, b, 1)
		})
	}
}

func TestEnsureRegistersSession(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Ensure("s2"))
			require.NoError(t, store.Ensure("s2"))
			require.NoError(t, store.Append("s1", exchange(1)))

			ids, err := store.Sessions()
			require.NoError(t, err)
			assert.Equal(t, []string{"s1", "s2"}, ids)

			all, err := store.All("s2")
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestReadsReturnCopies(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Append("s1", exchange(1)))

	all, err := store.All("s1")
	require.NoError(t, err)
	all[0].UserText = "mutated"

	again, err := store.All("s1")
	require.NoError(t, err)
	assert.Equal(t, "question 1", again[0].UserText)
}

func TestConcurrentAppendsSameSession(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			for i := 0; i < 50; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					assert.NoError(t, store.Append("shared", exchange(i)))
				}(i)
			}
			wg.Wait()

			all, err := store.All("shared")
			require.NoError(t, err)
			assert.Len(t, all, domain.HistoryRetention)
		})
	}
}

func TestNewSelectsBackend(t *testing.T) {
	mem, err := New("")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, mem)

	sq, err := New(domain.HistoryBackendSQLite)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, sq)
	_ = sq.(*SQLiteStore).Close()

	_, err = New("redis")
	assert.Error(t, err)
}
