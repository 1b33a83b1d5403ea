package repository

import (
	"context"
	"hospital/domain"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextTokenSequential(t *testing.T) {
	db := newTestDB(t)
	seedCounter(t, db, 0, time.Now().Add(-24*time.Hour))

	repo := NewCounterRepository(db)

	for want := 1; want <= 5; want++ {
		got, err := repo.NextToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestNextTokenResetsNextDay(t *testing.T) {
	db := newTestDB(t)
	seedCounter(t, db, 0, time.Now())

	repo := NewCounterRepository(db).(*counterRepository)

	today := time.Now()
	repo.now = func() time.Time { return today }

	for want := 1; want <= 3; want++ {
		got, err := repo.NextToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	repo.now = func() time.Time { return today.Add(24 * time.Hour) }

	got, err := repo.NextToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, got, "first token of the next day restarts at 1")

	got, err = repo.NextToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestNextTokenConcurrent(t *testing.T) {
	db := newTestDB(t)
	seedCounter(t, db, 0, time.Now())

	repo := NewCounterRepository(db)

	const callers = 30

	var wg sync.WaitGroup
	tokens := make(chan int, callers)
	errs := make(chan error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := repo.NextToken(context.Background())
			if err != nil {
				errs <- err
				return
			}
			tokens <- token
		}()
	}
	wg.Wait()
	close(tokens)
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent NextToken failed: %v", err)
	}

	var issued []int
	for token := range tokens {
		issued = append(issued, token)
	}
	sort.Ints(issued)

	require.Len(t, issued, callers)
	for i, token := range issued {
		assert.Equal(t, i+1, token, "tokens must be exactly 1..N with no duplicates or gaps")
	}
}

func TestNextTokenMissingRow(t *testing.T) {
	db := newTestDB(t)

	repo := NewCounterRepository(db)

	_, err := repo.NextToken(context.Background())
	assert.ErrorIs(t, err, domain.ErrCounterNotSeeded)
}
