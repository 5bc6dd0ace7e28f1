// Package draftrepo keeps wizard drafts in Redis. Each draft is one JSON
// document whose expiry is refreshed on every save; the submission lock is a
// separate key set with SETNX. Update is an optimistic WATCH/MULTI/EXEC
// transaction on the draft key.
package draftrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"configurator/internal/core/domain/model/kernel"
	"configurator/internal/core/domain/model/wizard"
	"configurator/internal/core/ports"
	"configurator/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// DefaultDraftTTL is how long an untouched draft survives.
const DefaultDraftTTL = 24 * time.Hour

const maxUpdateAttempts = 5

type RedisDraftRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftRepository(client *redis.Client, ttl time.Duration) *RedisDraftRepository {
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	return &RedisDraftRepository{client: client, ttl: ttl}
}

func (r *RedisDraftRepository) Get(ctx context.Context, id kernel.UUID) (wizard.Draft, error) {
	return r.read(ctx, r.client, id)
}

func (r *RedisDraftRepository) Save(ctx context.Context, draft wizard.Draft) error {
	data, err := encode(draft)
	if err != nil {
		return err
	}
	if err = r.client.Set(ctx, draftKey(draft.ID()), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Update watches the draft key, so a write by anyone else between the read
// and the MULTI/EXEC aborts the transaction and change runs again on the
// newer draft.
func (r *RedisDraftRepository) Update(ctx context.Context, id kernel.UUID, change ports.DraftChange) (wizard.Draft, error) {
	key := draftKey(id)

	var current, next wizard.Draft
	txf := func(tx *redis.Tx) error {
		var err error
		if current, err = r.read(ctx, tx, id); err != nil {
			return err
		}
		if next, err = change(current); err != nil {
			return err
		}
		if !next.ID().IsEqual(id) {
			return errs.NewValueIsInvalidError("draftId")
		}
		data, err := encode(next)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.ttl)
			return nil
		})
		return err
	}

	for range maxUpdateAttempts {
		err := r.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return current, err
		}
		return next, nil
	}
	return current, errs.NewConflictError("draft " + id.String() + " is being changed concurrently")
}

func (r *RedisDraftRepository) AcquireSubmission(ctx context.Context, id kernel.UUID, ttl time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, lockKey(id), time.Now().UTC().Format(time.RFC3339Nano), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx failed: %w", err)
	}
	return ok, nil
}

func (r *RedisDraftRepository) ReleaseSubmission(ctx context.Context, id kernel.UUID) error {
	if err := r.client.Del(ctx, lockKey(id)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (r *RedisDraftRepository) read(ctx context.Context, c getter, id kernel.UUID) (wizard.Draft, error) {
	data, err := c.Get(ctx, draftKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return wizard.Draft{}, errs.NewObjectNotFoundError("draft", id.String())
	}
	if err != nil {
		return wizard.Draft{}, fmt.Errorf("redis get failed: %w", err)
	}

	var dto DraftDTO
	if err = json.Unmarshal(data, &dto); err != nil {
		return wizard.Draft{}, fmt.Errorf("unmarshal draft failed: %w", err)
	}
	return toDomain(dto)
}

func encode(draft wizard.Draft) ([]byte, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	data, err := json.Marshal(fromDomain(draft))
	if err != nil {
		return nil, fmt.Errorf("marshal draft failed: %w", err)
	}
	return data, nil
}

func draftKey(id kernel.UUID) string {
	return fmt.Sprintf("draft:%s", id)
}

func lockKey(id kernel.UUID) string {
	return fmt.Sprintf("draft:%s:submitting", id)
}
