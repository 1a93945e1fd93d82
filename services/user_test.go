package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeLeaderboardCache struct {
	deleted []string
	failKey string
}

func (c *fakeLeaderboardCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return nil
}

func (c *fakeLeaderboardCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	return errors.New("cache miss")
}

func (c *fakeLeaderboardCache) Delete(ctx context.Context, keys ...string) error {
	c.deleted = append(c.deleted, keys...)
	for _, key := range keys {
		if key == c.failKey {
			return errors.New("connection reset")
		}
	}
	return nil
}

func TestInvalidateLeaderboardContinuesPastFailure(t *testing.T) {
	cache := &fakeLeaderboardCache{failKey: "leaderboard:all_time:10"}
	svc := &UserService{redisSvc: cache}

	svc.invalidateLeaderboard()

	assert.Equal(t, []string{
		"leaderboard:all_time:10",
		"leaderboard:all_time:25",
		"leaderboard:all_time:50",
		"leaderboard:all_time:100",
	}, cache.deleted)
}
