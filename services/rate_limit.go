// services/rate_limit.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ascend-learning/ascend_api/shared"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
)

// RateLimitService enforces fixed-window request limits per caller,
// backed by redis counters. Redis being down fails open; limiting is
// protective, not load bearing.
type RateLimitService struct {
	appContext.DefaultService

	redisSvc *RedisService

	limits map[string]rateLimit
}

type rateLimit struct {
	Max    int
	Window time.Duration
}

const RATE_LIMIT_SVC = "rate_limit_svc"

func (svc RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Configure(ctx *appContext.Context) error {
	svc.limits = map[string]rateLimit{
		"login":    {Max: 10, Window: time.Minute},
		"register": {Max: 5, Window: time.Minute},
		"hint":     {Max: 20, Window: time.Minute},
		"submit":   {Max: 60, Window: time.Minute},
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	return nil
}

// Allow checks and consumes one request for the caller against the
// named limit. Unknown limit names are unrestricted.
func (svc *RateLimitService) Allow(name, callerID string) error {
	limit, ok := svc.limits[name]
	if !ok {
		return nil
	}

	key := fmt.Sprintf("ratelimit:%s:%s", name, callerID)
	count, err := svc.redisSvc.IncrWindow(context.Background(), key, limit.Window)
	if err != nil {
		log.WithError(err).WithField("limit", name).Warn("Rate limit check failed, allowing request")
		return nil
	}

	if count > int64(limit.Max) {
		return shared.NewTooManyRequestsError(
			fmt.Errorf("%d requests in window, limit %d", count, limit.Max),
			"Too many requests, slow down",
		)
	}
	return nil
}
