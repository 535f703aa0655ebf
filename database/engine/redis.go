package engine

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
)

const (
	redisValueField    = "value"
	redisRevisionField = "revision"
)

// Redis stores each key as a hash holding the value and its revision.
// Put runs under WATCH so a concurrent writer aborts the transaction.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Name() string { return "redis" }

func (r *Redis) Get(ctx context.Context, key string) (Entry, bool, error) {
	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return Entry{}, false, fmt.Errorf("hgetall %s: %w", key, err)
	}
	if len(fields) == 0 {
		return Entry{}, false, nil
	}
	rev, err := strconv.ParseInt(fields[redisRevisionField], 10, 64)
	if err != nil {
		return Entry{}, false, fmt.Errorf("parse revision of %s: %w", key, err)
	}
	return Entry{Value: []byte(fields[redisValueField]), Revision: rev}, true, nil
}

func (r *Redis) Put(ctx context.Context, key string, value []byte, expected int64) (int64, error) {
	next := expected + 1

	txf := func(tx *redis.Tx) error {
		current, err := tx.HGet(ctx, key, redisRevisionField).Int64()
		if err == redis.Nil {
			current = 0
		} else if err != nil {
			return err
		}
		if current != expected {
			return ErrRevisionMismatch
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, redisValueField, value, redisRevisionField, next)
			return nil
		})
		return err
	}

	err := r.client.Watch(ctx, txf, key)
	switch {
	case err == nil:
		return next, nil
	case errors.Is(err, ErrRevisionMismatch), errors.Is(err, redis.TxFailedErr):
		return 0, ErrRevisionMismatch
	default:
		return 0, fmt.Errorf("put %s: %w", key, err)
	}
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close(context.Context) error {
	return r.client.Close()
}
