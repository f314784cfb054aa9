// Package saves provides the interface for save slot persistence
package saves

//go:generate mockgen -destination=mock/mock_repository.go -package=savesmock github.com/planebound/planebound-api/internal/repositories/saves Repository

import (
	"context"

	"github.com/planebound/planebound-api/internal/entities"
)

// Repository defines the interface for save slot persistence
type Repository interface {
	// Put writes a save into a named slot, overwriting any previous save
	// Returns errors.InvalidArgument for an empty slot or nil save
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get retrieves the save in a slot
	// Returns errors.InvalidArgument for an empty slot
	// Returns errors.NotFound if the slot is empty
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes the save in a slot
	// Returns errors.InvalidArgument for an empty slot
	// Returns errors.NotFound if the slot is empty
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns a summary of every occupied slot
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// SlotSummary describes one occupied save slot without its full state
type SlotSummary struct {
	Slot      string `json:"slot"`
	Version   string `json:"version"`
	Timestamp int64  `json:"timestamp"`
}

// PutInput defines the input for writing a save slot
type PutInput struct {
	Slot string
	Save *entities.SaveData
}

// PutOutput defines the output for writing a save slot
type PutOutput struct {
	Slot string
}

// GetInput defines the input for reading a save slot
type GetInput struct {
	Slot string
}

// GetOutput defines the output for reading a save slot
type GetOutput struct {
	Save *entities.SaveData
}

// DeleteInput defines the input for deleting a save slot
type DeleteInput struct {
	Slot string
}

// DeleteOutput defines the output for deleting a save slot
type DeleteOutput struct {
	// Empty for now, can be extended later
}

// ListInput defines the input for listing save slots
type ListInput struct {
	// Empty for now, can be extended later
}

// ListOutput defines the output for listing save slots
type ListOutput struct {
	Slots []SlotSummary
}
