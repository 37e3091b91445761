package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/suite"
)

type TokenBucketTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	now    time.Time
}

func TestTokenBucketSuite(t *testing.T) {
	suite.Run(t, new(TokenBucketTestSuite))
}

func (s *TokenBucketTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (s *TokenBucketTestSuite) TearDownTest() {
	_ = s.client.Close()
	s.mr.Close()
}

func (s *TokenBucketTestSuite) clock() time.Time {
	return s.now
}

func (s *TokenBucketTestSuite) TestBurstThenRefill() {
	bucket, err := New(s.client, 3, 60, WithClock(s.clock))
	s.Require().NoError(err)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, allowErr := bucket.Allow(ctx, "user:1")
		s.Require().NoError(allowErr)
		s.True(allowed, "request %d", i)
	}
	allowed, err := bucket.Allow(ctx, "user:1")
	s.Require().NoError(err)
	s.False(allowed)

	// 60 в минуту - один токен в секунду
	s.now = s.now.Add(time.Second)
	allowed, err = bucket.Allow(ctx, "user:1")
	s.Require().NoError(err)
	s.True(allowed)

	allowed, err = bucket.Allow(ctx, "user:1")
	s.Require().NoError(err)
	s.False(allowed)
}

func (s *TokenBucketTestSuite) TestKeysAreIndependent() {
	bucket, err := New(s.client, 1, 1, WithClock(s.clock), WithKeyPrefix("test:"))
	s.Require().NoError(err)
	ctx := context.Background()

	first, err := bucket.Allow(ctx, "user:1")
	s.Require().NoError(err)
	s.True(first)

	other, err := bucket.Allow(ctx, "user:2")
	s.Require().NoError(err)
	s.True(other)

	again, err := bucket.Allow(ctx, "user:1")
	s.Require().NoError(err)
	s.False(again)

	s.True(s.mr.Exists("test:user:1"))
}

func (s *TokenBucketTestSuite) TestInvalidConfig() {
	_, err := New(s.client, 0, 10)
	s.Require().Error(err)
	_, err = New(s.client, 10, 0)
	s.Require().Error(err)
}

func (s *TokenBucketTestSuite) TestRedisDown() {
	bucket, err := New(s.client, 1, 1, WithClock(s.clock))
	s.Require().NoError(err)
	s.mr.Close()

	_, err = bucket.Allow(context.Background(), "user:1")
	s.Require().Error(err)
}
