package kvstore

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"cusco-tours/internal/infra"
)

type slotKey struct {
	profileID uuid.UUID
	slot      string
}

// MemoryStore is the in-process Store used by tests and local runs. Values
// round-trip through JSON so encoding behavior matches the Postgres store.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[slotKey][]byte

	// FailWrites makes Set and Remove fail, for exercising storage error
	// handling in callers.
	FailWrites bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[slotKey][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, profileID uuid.UUID, slot string, dest any) (bool, error) {
	s.mu.RLock()
	data, ok := s.slots[slotKey{profileID: profileID, slot: slot}]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, infra.WrapRepoErr("failed to decode profile slot", err, infra.KindStorageFailure)
	}
	return true, nil
}

func (s *MemoryStore) Set(_ context.Context, profileID uuid.UUID, slot string, value any) error {
	if s.FailWrites {
		return infra.WrapRepoErr("failed to write profile slot", nil, infra.KindStorageFailure)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return infra.WrapRepoErr("failed to encode profile slot", err, infra.KindStorageFailure)
	}

	s.mu.Lock()
	s.slots[slotKey{profileID: profileID, slot: slot}] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, profileID uuid.UUID, slot string) error {
	if s.FailWrites {
		return infra.WrapRepoErr("failed to remove profile slot", nil, infra.KindStorageFailure)
	}

	s.mu.Lock()
	delete(s.slots, slotKey{profileID: profileID, slot: slot})
	s.mu.Unlock()
	return nil
}
