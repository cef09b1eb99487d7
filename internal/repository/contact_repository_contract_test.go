package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio/backend/internal/model"
)

func sampleInput(i int) model.ContactCreateInput {
	return model.ContactCreateInput{
		Name:    fmt.Sprintf("Sender %d", i),
		Email:   fmt.Sprintf("sender%d@example.com", i),
		Subject: fmt.Sprintf("Subject %d", i),
		Message: fmt.Sprintf("Message body number %d", i),
	}
}

// testContactRepository runs the behavior every ContactRepository must share.
// repo must start empty.
func testContactRepository(t *testing.T, repo ContactRepository) {
	ctx := context.Background()

	t.Run("create echoes input and assigns increasing ids", func(t *testing.T) {
		before := time.Now().Add(-time.Minute)
		var lastID int64
		for i := 0; i < 3; i++ {
			in := sampleInput(i)
			got, err := repo.Create(ctx, in)
			require.NoError(t, err)
			assert.Equal(t, in.Name, got.Name)
			assert.Equal(t, in.Email, got.Email)
			assert.Equal(t, in.Subject, got.Subject)
			assert.Equal(t, in.Message, got.Message)
			assert.Greater(t, got.ID, lastID)
			assert.True(t, got.CreatedAt.After(before), "CreatedAt %v too old", got.CreatedAt)
			lastID = got.ID
		}
	})

	t.Run("list round-trips created records", func(t *testing.T) {
		created, err := repo.Create(ctx, sampleInput(99))
		require.NoError(t, err)

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 4)

		last := list[len(list)-1]
		assert.Equal(t, created.ID, last.ID)
		assert.Equal(t, created.Name, last.Name)
		assert.Equal(t, created.Email, last.Email)
		assert.Equal(t, created.Subject, last.Subject)
		assert.Equal(t, created.Message, last.Message)
		assert.True(t, created.CreatedAt.Equal(last.CreatedAt))

		for i := 1; i < len(list); i++ {
			assert.Greater(t, list[i].ID, list[i-1].ID, "list must be newest-last")
		}
	})

	t.Run("concurrent creates receive distinct ids", func(t *testing.T) {
		const n = 20
		ids := make(chan int64, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				msg, err := repo.Create(ctx, sampleInput(100+i))
				if err != nil {
					t.Errorf("create %d: %v", i, err)
					return
				}
				ids <- msg.ID
			}(i)
		}
		wg.Wait()
		close(ids)

		seen := make(map[int64]bool)
		for id := range ids {
			assert.False(t, seen[id], "id %d assigned twice", id)
			seen[id] = true
		}
		assert.Len(t, seen, n)

		list, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 4+n)
	})
}
