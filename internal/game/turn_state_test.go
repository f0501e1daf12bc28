// internal/game/turn_state_test.go
package game

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTurnStateHasOnePurchase(t *testing.T) {
	s := NewTurnStateStore()
	ts := s.GetOrCreate("g1")

	require.NotNil(t, ts)
	assert.Equal(t, "g1", ts.GameID)
	assert.Equal(t, 1, ts.PurchasesRemaining())
	assert.True(t, ts.CanPurchase())
	assert.Equal(t, 1, s.Len())
}

func TestGetOrCreateReturnsSameInstance(t *testing.T) {
	s := NewTurnStateStore()
	a := s.GetOrCreate("g1")
	b := s.GetOrCreate("g1")
	c := s.GetOrCreate("g2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, 2, s.Len())
}

func TestUsePurchaseExhaustsCounter(t *testing.T) {
	s := NewTurnStateStore()

	assert.True(t, s.UsePurchase("g1"), "first purchase should succeed")
	assert.False(t, s.UsePurchase("g1"), "second purchase should fail")
	assert.Equal(t, 0, s.GetOrCreate("g1").PurchasesRemaining())
	assert.False(t, s.CanPurchase("g1"))
}

func TestResetTurnRestoresPurchase(t *testing.T) {
	s := NewTurnStateStore()
	s.UsePurchase("g1")
	require.False(t, s.CanPurchase("g1"))

	s.ResetTurn("g1")
	assert.Equal(t, 1, s.GetOrCreate("g1").PurchasesRemaining())

	// reset on an untouched state keeps it at 1
	s.ResetTurn("g1")
	assert.Equal(t, 1, s.GetOrCreate("g1").PurchasesRemaining())
}

func TestResetTurnCreatesUnknownGame(t *testing.T) {
	s := NewTurnStateStore()
	s.ResetTurn("fresh")

	ts, ok := s.Lookup("fresh")
	require.True(t, ok)
	assert.Equal(t, 1, ts.PurchasesRemaining())
}

func TestCanPurchaseDoesNotMutate(t *testing.T) {
	s := NewTurnStateStore()
	for i := 0; i < 3; i++ {
		assert.True(t, s.CanPurchase("g1"))
	}
	assert.Equal(t, 1, s.GetOrCreate("g1").PurchasesRemaining())
}

func TestGamesAreIndependent(t *testing.T) {
	s := NewTurnStateStore()
	s.UsePurchase("g1")

	assert.False(t, s.CanPurchase("g1"))
	assert.True(t, s.CanPurchase("g2"))
}

func TestDeleteEvictsGame(t *testing.T) {
	var logged []string
	s := NewTurnStateStore()
	s.Logf = func(f string, v ...interface{}) {
		logged = append(logged, fmt.Sprintf(f, v...))
	}

	s.UsePurchase("g1")
	s.Delete("g1")
	s.Delete("g1")

	_, ok := s.Lookup("g1")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, []string{
		"created turn state for game g1",
		"evicted turn state for game g1",
	}, logged)

	// a deleted game starts fresh on next reference
	assert.True(t, s.CanPurchase("g1"))
}

func TestConcurrentUsePurchaseConsumesOnce(t *testing.T) {
	s := NewTurnStateStore()
	const workers = 64

	for round := 0; round < 20; round++ {
		s.ResetTurn("g1")

		var wg sync.WaitGroup
		var wins int32
		start := make(chan struct{})
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				if s.UsePurchase("g1") {
					atomic.AddInt32(&wins, 1)
				}
			}()
		}
		close(start)
		wg.Wait()

		require.Equal(t, int32(1), wins, "round %d", round)
		require.Equal(t, 0, s.GetOrCreate("g1").PurchasesRemaining())
	}
}

func TestConcurrentGetOrCreateAcrossGames(t *testing.T) {
	s := NewTurnStateStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("g%d", i%10)
			s.GetOrCreate(id)
			s.CanPurchase(id)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 10, s.Len())
}

func TestNilTurnStateIsExhausted(t *testing.T) {
	var ts *TurnState
	assert.NotPanics(t, func() {
		ts.Reset()
		assert.False(t, ts.CanPurchase())
		assert.False(t, ts.UsePurchase())
		assert.Equal(t, 0, ts.PurchasesRemaining())
	})
}
