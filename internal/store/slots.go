package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prepnova/prepnova/ent"
	"github.com/prepnova/prepnova/ent/slot"
)

// SlotRepo provides read/write access to named slots in the persistent
// key-value medium.
type SlotRepo interface {
	// Load returns the raw stored value for a key. The second return is
	// false when the slot has never been written.
	Load(ctx context.Context, key string) (string, bool, error)

	// Save overwrites the slot with the given value, creating it if needed.
	Save(ctx context.Context, key, value string) error

	// Clear removes the slot. Clearing an absent slot is a no-op.
	Clear(ctx context.Context, key string) error
}

// entSlotRepo implements SlotRepo using the ent client.
type entSlotRepo struct {
	client *ent.Client
}

func (r *entSlotRepo) Load(ctx context.Context, key string) (string, bool, error) {
	s, err := r.client.Slot.Query().
		Where(slot.KeyEQ(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("load slot %q: %w", key, err)
	}
	return s.Value, true, nil
}

func (r *entSlotRepo) Save(ctx context.Context, key, value string) error {
	err := r.client.Slot.Create().
		SetKey(key).
		SetValue(value).
		SetUpdatedAt(time.Now()).
		OnConflictColumns(slot.FieldKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save slot %q: %w", key, err)
	}
	return nil
}

func (r *entSlotRepo) Clear(ctx context.Context, key string) error {
	_, err := r.client.Slot.Delete().
		Where(slot.KeyEQ(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear slot %q: %w", key, err)
	}
	return nil
}

// MemorySlotRepo is an in-memory SlotRepo. It backs tests and serves as
// the degraded medium when the on-disk store cannot be opened, so the app
// keeps working for the life of the process.
type MemorySlotRepo struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewMemorySlotRepo creates an empty in-memory slot repository.
func NewMemorySlotRepo() *MemorySlotRepo {
	return &MemorySlotRepo{slots: make(map[string]string)}
}

func (r *MemorySlotRepo) Load(_ context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.slots[key]
	return v, ok, nil
}

func (r *MemorySlotRepo) Save(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[key] = value
	return nil
}

func (r *MemorySlotRepo) Clear(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, key)
	return nil
}
