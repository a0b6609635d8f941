package session

import (
	"context"
	"time"

	"community/internal/domain/entity"
	"community/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore is the redis-backed session store. Keys expire with the session.
type RedisStore struct {
	client redis.Cmdable
	prefix string
	now    func() time.Time
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: redisKeyPrefix,
		now:    time.Now,
	}
}

var _ repository.SessionRepository = (*RedisStore)(nil)

func (r *RedisStore) key(id string) string {
	return r.prefix + id
}

// NewID returns a random session id.
func (r *RedisStore) NewID() (string, error) {
	return generateID()
}

// Load returns the stored session, or nil when the key is gone.
func (r *RedisStore) Load(ctx context.Context, id string) (*entity.Session, error) {
	val, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "session: redis get")
	}

	return decode(val)
}

// Save writes the session with a TTL matching its expiry.
func (r *RedisStore) Save(ctx context.Context, session *entity.Session) error {
	if session.ID == "" {
		return errors.New("session: missing session id")
	}

	ttl := session.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return r.Delete(ctx, session.ID)
	}

	data, err := encode(session)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, r.key(session.ID), data, ttl).Err(); err != nil {
		return errors.Wrap(err, "session: redis set")
	}

	return nil
}

// Delete removes the session key.
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return errors.Wrap(err, "session: redis del")
	}

	return nil
}
