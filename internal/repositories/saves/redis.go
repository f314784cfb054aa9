package saves

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/planebound/planebound-api/internal/entities"
	"github.com/planebound/planebound-api/internal/errors"
	redisclient "github.com/planebound/planebound-api/internal/redis"
)

const (
	saveKeyPrefix = "save:"
	slotIndexKey  = "save:slots"

	errSlotEmpty = "slot cannot be empty"
	errSaveNil   = "save cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis save repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed save repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
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

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, saveKeyPrefix+input.Slot, data, 0)
	pipe.SAdd(ctx, slotIndexKey, input.Slot)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to write save slot %s", input.Slot)
	}

	return &PutOutput{Slot: input.Slot}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Slot == "" {
		return nil, errors.InvalidArgument(errSlotEmpty)
	}

	result, err := r.client.Get(ctx, saveKeyPrefix+input.Slot).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("save slot %s is empty", input.Slot)
		}
		return nil, errors.Wrapf(err, "failed to read save slot %s", input.Slot)
	}

	var save entities.SaveData
	if err := json.Unmarshal([]byte(result), &save); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal save data")
	}

	return &GetOutput{Save: &save}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Slot == "" {
		return nil, errors.InvalidArgument(errSlotEmpty)
	}

	deleted, err := r.client.Del(ctx, saveKeyPrefix+input.Slot).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete save slot %s", input.Slot)
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("save slot %s is empty", input.Slot)
	}

	if err := r.client.SRem(ctx, slotIndexKey, input.Slot).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to remove slot %s from index", input.Slot)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	slots, err := r.client.SMembers(ctx, slotIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list save slots")
	}
	sort.Strings(slots)

	summaries := make([]SlotSummary, 0, len(slots))
	for _, slot := range slots {
		out, err := r.Get(ctx, GetInput{Slot: slot})
		if err != nil {
			// A slot in the index without data is stale; clean it up
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "save slot indexed but missing, cleaning up",
					"slot", slot)
				r.client.SRem(ctx, slotIndexKey, slot)
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
