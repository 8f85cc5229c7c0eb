package repository

import (
	"context"
	"sync"

	"stripe_testbed/internal/domain/entities"
	"stripe_testbed/internal/usecase/interfaces"
)

const DefaultActivityCapacity = 200

// ActivityMemoryRepository keeps the most recent activity entries in a
// bounded ring. Safe for concurrent use.
type ActivityMemoryRepository struct {
	mu       sync.Mutex
	entries  []entities.Activity
	next     int
	full     bool
	capacity int
}

var _ interfaces.IActivityRepository = (*ActivityMemoryRepository)(nil)

func NewActivityMemoryRepository(capacity int) *ActivityMemoryRepository {
	if capacity <= 0 {
		capacity = DefaultActivityCapacity
	}
	return &ActivityMemoryRepository{entries: make([]entities.Activity, capacity), capacity: capacity}
}

func (r *ActivityMemoryRepository) Record(_ context.Context, a entities.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[r.next] = a
	r.next = (r.next + 1) % r.capacity
	if r.next == 0 {
		r.full = true
	}
	return nil
}

// ListRecent returns entries newest first in insertion order.
func (r *ActivityMemoryRepository) ListRecent(_ context.Context, limit int) ([]entities.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	size := r.next
	if r.full {
		size = r.capacity
	}
	if limit <= 0 || limit > size {
		limit = size
	}

	out := make([]entities.Activity, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (r.next - i + r.capacity) % r.capacity
		out = append(out, r.entries[idx])
	}
	return out, nil
}
