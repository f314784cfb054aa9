package saves

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/planebound/planebound-api/internal/entities"
	"github.com/planebound/planebound-api/internal/errors"
)

// inMemoryRepository keeps saves in process memory. Useful for
// development and for running without a Redis endpoint.
type inMemoryRepository struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewInMemory creates an in-memory save repository
func NewInMemory() Repository {
	return &inMemoryRepository{
		slots: make(map[string][]byte),
	}
}

func (r *inMemoryRepository) Put(_ context.Context, input PutInput) (*PutOutput, error) {
	if input.Slot == "" {
		return nil, errors.InvalidArgument(errSlotEmpty)
	}
	if input.Save == nil {
		return nil, errors.InvalidArgument(errSaveNil)
	}

	data, err := json.Marshal(input.Save)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal save data")
	}

	r.mu.Lock()
	r.slots[input.Slot] = data
	r.mu.Unlock()

	return &PutOutput{Slot: input.Slot}, nil
}

func (r *inMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.Slot == "" {
		return nil, errors.InvalidArgument(errSlotEmpty)
	}

	r.mu.RLock()
	data, ok := r.slots[input.Slot]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.NotFoundf("save slot %s is empty", input.Slot)
	}

	var save entities.SaveData
	if err := json.Unmarshal(data, &save); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal save data")
	}

	return &GetOutput{Save: &save}, nil
}

func (r *inMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Slot == "" {
		return nil, errors.InvalidArgument(errSlotEmpty)
	}

	r.mu.Lock()
	_, ok := r.slots[input.Slot]
	delete(r.slots, input.Slot)
	r.mu.Unlock()

	if !ok {
		return nil, errors.NotFoundf("save slot %s is empty", input.Slot)
	}
	return &DeleteOutput{}, nil
}

func (r *inMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	slots := make([]string, 0, len(r.slots))
	for slot := range r.slots {
		slots = append(slots, slot)
	}
	r.mu.RUnlock()
	sort.Strings(slots)

	summaries := make([]SlotSummary, 0, len(slots))
	for _, slot := range slots {
		out, err := r.Get(context.Background(), GetInput{Slot: slot})
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		summaries = append(summaries, SlotSummary{
			Slot:      slot,
			Version:   out.Save.Version,
			Timestamp: out.Save.Timestamp,
		})
	}

	return &ListOutput{Slots: summaries}, nil
}
