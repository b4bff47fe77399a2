package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harunmuya/gs-app/internal/domain"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func page(n int) *domain.ProfilePage {
	return &domain.ProfilePage{Page: n, PerPage: 20}
}

func TestPageKey(t *testing.T) {
	assert.Equal(t, "profiles:2:20", PageKey(2, 20))
}

func TestMemory_GetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(4)

	_, ok := m.Get(ctx, "missing")
	assert.False(t, ok)

	m.Set(ctx, "a", page(1), time.Minute)
	got, ok := m.Get(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, 1, got.Page)

	m.Set(ctx, "a", page(2), time.Minute)
	got, ok = m.Get(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 1, m.Len())
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	m := NewMemoryWithClock(4, clock.Now)

	m.Set(ctx, "a", page(1), 5*time.Minute)

	clock.Advance(4 * time.Minute)
	_, ok := m.Get(ctx, "a")
	assert.True(t, ok)

	clock.Advance(time.Minute)
	_, ok = m.Get(ctx, "a")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestMemory_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(2)

	m.Set(ctx, "a", page(1), time.Minute)
	m.Set(ctx, "b", page(2), time.Minute)
	_, _ = m.Get(ctx, "a")
	m.Set(ctx, "c", page(3), time.Minute)

	_, okA := m.Get(ctx, "a")
	_, okB := m.Get(ctx, "b")
	_, okC := m.Get(ctx, "c")
	assert.True(t, okA)
	assert.False(t, okB)
	assert.True(t, okC)
	assert.Equal(t, 2, m.Len())
}

func TestMemory_IgnoresNonPositiveTTL(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(2)

	m.Set(ctx, "a", page(1), 0)
	m.Set(ctx, "b", nil, time.Minute)

	assert.Equal(t, 0, m.Len())
}

func TestMemory_Concurrent(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(8)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := PageKey(i%10, 20)
			m.Set(ctx, key, page(i), time.Minute)
			m.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, m.Len(), 8)
}

func TestNop(t *testing.T) {
	ctx := context.Background()
	var c PageCache = Nop{}
	c.Set(ctx, "a", page(1), time.Minute)
	_, ok := c.Get(ctx, "a")
	assert.False(t, ok)
}
