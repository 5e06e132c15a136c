package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Memory is a process-local store. Documents are held JSON encoded so
// callers never share mutable state with the store.
type Memory[T Document] struct {
	mu    sync.RWMutex
	docs  map[string][]byte
	order []string
}

func NewMemory[T Document]() *Memory[T] {
	return &Memory[T]{docs: make(map[string][]byte)}
}

func (m *Memory[T]) Get(ctx context.Context, id string) (T, error) {
	m.mu.RLock()
	raw, ok := m.docs[id]
	m.mu.RUnlock()

	var doc T
	if !ok {
		return doc, ErrNotFound
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("decode %s: %w", id, err)
	}
	return doc, nil
}

func (m *Memory[T]) List(ctx context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]T, 0, len(m.order))
	for _, id := range m.order {
		var doc T
		if err := json.Unmarshal(m.docs[id], &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", id, err)
		}
		out = append(out, doc)
	}
	return out, nil
}

func (m *Memory[T]) Upsert(ctx context.Context, doc T) error {
	id := doc.DocumentID()
	if id == "" {
		return fmt.Errorf("document has empty id")
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", id, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.docs[id]; !exists {
		m.order = append(m.order, id)
	}
	m.docs[id] = raw
	return nil
}

func (m *Memory[T]) Seed(ctx context.Context, docs []T) (int, error) {
	m.mu.RLock()
	empty := len(m.order) == 0
	m.mu.RUnlock()

	if !empty {
		return 0, nil
	}

	for _, doc := range docs {
		if err := m.Upsert(ctx, doc); err != nil {
			return 0, err
		}
	}
	return len(docs), nil
}
