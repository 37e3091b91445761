package ratelimit

import (
	"context"
	"math"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

const (
	defaultKeyPrefix = "ratelimit:"
	// bucketTTLFactor во сколько раз ключ живет дольше времени полного восполнения корзины.
	bucketTTLFactor = 2
)

// tokenBucketScript атомарно восполняет корзину по прошедшему времени и пытается взять один токен.
// Состояние корзины - хэш {tokens, ts}. Возвращает 1, если токен взят.
var tokenBucketScript = redis.NewScript(`
local capacity = tonumber(ARGV[1])
local rate = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local ttl = tonumber(ARGV[4])

local state = redis.call('HMGET', KEYS[1], 'tokens', 'ts')
local tokens = tonumber(state[1])
local ts = tonumber(state[2])
if tokens == nil or ts == nil then
	tokens = capacity
	ts = now
end

local elapsed = math.max(0, now - ts)
tokens = math.min(capacity, tokens + elapsed * rate)

local allowed = 0
if tokens >= 1 then
	tokens = tokens - 1
	allowed = 1
end

redis.call('HSET', KEYS[1], 'tokens', tostring(tokens), 'ts', tostring(now))
redis.call('PEXPIRE', KEYS[1], ttl)
return allowed
`)

// TokenBucket ограничитель запросов по алгоритму token bucket. Состояние корзин хранится в Redis, поэтому
// лимит общий для всех экземпляров сервиса.
type TokenBucket struct {
	client    redis.Scripter
	burst     int
	perMinute int
	prefix    string
	now       func() time.Time
}

type Option func(*TokenBucket)

func WithKeyPrefix(prefix string) Option {
	return func(b *TokenBucket) {
		b.prefix = prefix
	}
}

// WithClock подменяет источник времени.
func WithClock(now func() time.Time) Option {
	return func(b *TokenBucket) {
		b.now = now
	}
}

// New создает ограничитель: не больше burst запросов подряд, восполнение perMinute токенов в минуту.
func New(client redis.Scripter, burst, perMinute int, opts ...Option) (*TokenBucket, error) {
	if burst < 1 || perMinute < 1 {
		return nil, errors.Errorf("invalid rate limit: burst=%d perMinute=%d", burst, perMinute)
	}
	b := &TokenBucket{
		client:    client,
		burst:     burst,
		perMinute: perMinute,
		prefix:    defaultKeyPrefix,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Allow берет токен из корзины key. false - лимит исчерпан.
func (b *TokenBucket) Allow(ctx context.Context, key string) (bool, error) {
	ratePerMs := float64(b.perMinute) / float64(time.Minute.Milliseconds())
	refillMs := int64(math.Ceil(float64(b.burst) / ratePerMs))

	res, err := tokenBucketScript.Run(ctx, b.client, []string{b.prefix + key},
		b.burst,
		ratePerMs,
		b.now().UnixMilli(),
		refillMs*bucketTTLFactor,
	).Int64()
	if err != nil {
		return false, errors.Wrapf(err, "rate limit bucket %s", key)
	}
	return res == 1, nil
}

// Connect подключается к Redis и проверяет соединение.
func Connect(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "redis ping %s", addr)
	}
	return client, nil
}
