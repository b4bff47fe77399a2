package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/harunmuya/gs-app/internal/domain"
)

const DefaultMemorySize = 256

type memoryEntry struct {
	key       string
	page      *domain.ProfilePage
	expiresAt time.Time
}

// Memory is a bounded in-process cache. When full, the least recently used
// entry is evicted.
type Memory struct {
	mu      sync.Mutex
	size    int
	order   *list.List
	entries map[string]*list.Element
	now     func() time.Time
}

func NewMemory(size int) *Memory {
	return NewMemoryWithClock(size, time.Now)
}

func NewMemoryWithClock(size int, now func() time.Time) *Memory {
	if size <= 0 {
		size = DefaultMemorySize
	}
	return &Memory{
		size:    size,
		order:   list.New(),
		entries: make(map[string]*list.Element, size),
		now:     now,
	}
}

func (m *Memory) Get(_ context.Context, key string) (*domain.ProfilePage, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	entry := el.Value.(*memoryEntry)
	if !m.now().Before(entry.expiresAt) {
		m.removeElement(el)
		return nil, false
	}
	m.order.MoveToFront(el)
	return entry.page, true
}

func (m *Memory) Set(_ context.Context, key string, page *domain.ProfilePage, ttl time.Duration) {
	if ttl <= 0 || page == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	expiresAt := m.now().Add(ttl)
	if el, ok := m.entries[key]; ok {
		entry := el.Value.(*memoryEntry)
		entry.page = page
		entry.expiresAt = expiresAt
		m.order.MoveToFront(el)
		return
	}

	m.entries[key] = m.order.PushFront(&memoryEntry{key: key, page: page, expiresAt: expiresAt})
	for m.order.Len() > m.size {
		m.removeElement(m.order.Back())
	}
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}

func (m *Memory) removeElement(el *list.Element) {
	m.order.Remove(el)
	delete(m.entries, el.Value.(*memoryEntry).key)
}
