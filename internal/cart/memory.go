package cart

import (
	"encoding/json"
	"fmt"
	"sync"

	"bakery_shop/internal/models"
)

// MemoryStorage keeps the serialized cart in memory, using the same JSON
// encoding as the Redis slot. It backs tests and any deployment that runs
// without Redis.
type MemoryStorage struct {
	data []byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load() ([]models.CartItem, error) {
	if m.data == nil {
		return nil, nil
	}
	var items []models.CartItem
	if err := json.Unmarshal(m.data, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart slot: %w", err)
	}
	return items, nil
}

func (m *MemoryStorage) Save(items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	m.data = data
	return nil
}

// MemoryFactory holds one MemoryStorage per session.
type MemoryFactory struct {
	mu    sync.Mutex
	slots map[string]*MemoryStorage
}

func NewMemoryFactory() *MemoryFactory {
	return &MemoryFactory{slots: make(map[string]*MemoryStorage)}
}

func (f *MemoryFactory) ForSession(sessionID string) Storage {
	f.mu.Lock()
	defer f.mu.Unlock()
	slot, ok := f.slots[sessionID]
	if !ok {
		slot = NewMemoryStorage()
		f.slots[sessionID] = slot
	}
	return slot
}
