package idx

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew_Unique(t *testing.T) {
	seen := make(map[ID]struct{}, 1000)
	for range 1000 {
		id := New()
		require.False(t, id.IsZero())
		_, dup := seen[id]
		require.False(t, dup, "generated duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestNew_Sortable(t *testing.T) {
	a := NewAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	b := NewAt(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Less(t, a.String(), b.String())
}

func TestNew_Concurrent(t *testing.T) {
	const workers = 8
	const perWorker = 200

	var mu sync.Mutex
	seen := make(map[ID]struct{}, workers*perWorker)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				id := New()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, seen, workers*perWorker)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid ulid", New().String(), false},
		{"valid with whitespace", "  " + New().String() + "  ", false},
		{"empty", "", true},
		{"too short", "01ARZ3", true},
		{"invalid characters", "01ARZ3NDEKTSV4RRFFQ69G5F!V", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Parse(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalid)
				require.True(t, id.IsZero())
				return
			}
			require.NoError(t, err)
			require.False(t, id.IsZero())
		})
	}
}

func TestID_Time(t *testing.T) {
	at := time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)
	id := NewAt(at)

	// ULID time resolution is milliseconds.
	require.WithinDuration(t, at, id.Time(), time.Millisecond)
	require.True(t, Zero.Time().IsZero())
}
