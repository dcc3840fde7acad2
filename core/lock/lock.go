package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"
)

// ErrLocked is returned when another run holds the lock.
var ErrLocked = errors.New("lock: already held")

// Release gives the lock back.
type Release func(ctx context.Context) error

// Locker serialises runs against the same spreadsheet.
type Locker interface {
	Acquire(ctx context.Context, key string) (Release, error)
}

// New returns a Redis lock when an address is configured and a local one otherwise.
func New(cfg Config) Locker {
	if cfg.RedisAddr == "" {
		return NewLocal()
	}
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	return NewRedis(client, time.Duration(cfg.TTLSeconds)*time.Second)
}

// Local is an in-process lock keyed by name.
type Local struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewLocal creates an empty in-process lock.
func NewLocal() *Local {
	return &Local{held: make(map[string]struct{})}
}

// Acquire takes the key or returns ErrLocked when it is already held in this process.
// The returned Release is safe to call more than once.
func (l *Local) Acquire(_ context.Context, key string) (Release, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.held[key]; ok {
		return nil, ErrLocked
	}
	l.held[key] = struct{}{}

	var once sync.Once
	return func(context.Context) error {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, key)
			l.mu.Unlock()
		})
		return nil
	}, nil
}

// releaseScript deletes the key only while it still carries our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis is a lock shared by every process using the same server.
// The TTL bounds how long a crashed run can block others.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a lock on client. A non-positive ttl falls back to 15 minutes.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Redis{client: client, ttl: ttl}
}

// Acquire sets the key with a random token for the lock TTL, or returns ErrLocked
// when another holder has it. Release only deletes the key while it still carries that token.
func (r *Redis) Acquire(ctx context.Context, key string) (Release, error) {
	key = "creative-sync:lock:" + key
	token := uuid.NewString()

	ok, err := r.client.SetNX(ctx, key, token, r.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("redis setnx failed: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}

	return func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, r.client, []string{key}, token).Err(); err != nil {
			return fmt.Errorf("redis release failed: %w", err)
		}
		return nil
	}, nil
}

// Close releases Redis resources.
func (r *Redis) Close() error {
	return r.client.Close()
}
