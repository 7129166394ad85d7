package cache

import (
	"context"
	"errors"
	"log"
	"time"

	"pix_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const lockKeyPrefix = "pix_checkout:lock:"

// releaseScript deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisJobLocker is a fail-safe distributed lock: when redis is unreachable
// the job runs anyway, relying on the database's conditional writes.
type RedisJobLocker struct {
	client *redis.Client
}

var _ interfaces.IJobLocker = (*RedisJobLocker)(nil)

func NewRedisJobLocker(client *redis.Client) *RedisJobLocker {
	return &RedisJobLocker{client: client}
}

// NewRedisClient returns nil when addr is empty.
func NewRedisClient(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
}

func (l *RedisJobLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), bool, error) {
	if l == nil || l.client == nil {
		return func() {}, true, nil
	}
	token := uuid.NewString()
	fullKey := lockKeyPrefix + key

	ok, err := l.client.SetNX(ctx, fullKey, token, ttl).Result()
	if err != nil {
		log.Printf("[jobs][lock] redis unavailable, running without lock key=%s err=%v", key, err)
		return func() {}, true, nil
	}
	if !ok {
		log.Printf("[jobs][lock] already held key=%s", key)
		return func() {}, false, nil
	}

	release := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, l.client, []string{fullKey}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
			log.Printf("[jobs][lock] release failed key=%s err=%v", key, err)
		}
	}
	return release, true, nil
}
