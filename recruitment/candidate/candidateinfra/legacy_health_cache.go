package candidateinfra

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/talentflow/recruitment-api/pkg/kernel"
	"github.com/talentflow/recruitment-api/pkg/logx"
	"github.com/talentflow/recruitment-api/recruitment/candidate"
)

const legacyHealthKey = "legacy:health"

// CachedLegacySyncer decorates a LegacySyncer with a short-lived redis
// cache around HealthCheck, so readiness probes do not hammer the legacy
// system. SendCandidate passes straight through.
type CachedLegacySyncer struct {
	inner candidate.LegacySyncer
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedLegacySyncer(inner candidate.LegacySyncer, rdb *redis.Client, ttl time.Duration) *CachedLegacySyncer {
	return &CachedLegacySyncer{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
	}
}

func (s *CachedLegacySyncer) SendCandidate(ctx context.Context, firstName, lastName string, email kernel.Email) candidate.SyncOutcome {
	return s.inner.SendCandidate(ctx, firstName, lastName, email)
}

// HealthCheck returns the cached probe result when present. Redis being
// down only costs us the cache, never the answer.
func (s *CachedLegacySyncer) HealthCheck(ctx context.Context) bool {
	cached, err := s.rdb.Get(ctx, legacyHealthKey).Result()
	if err == nil {
		return cached == "up"
	}
	if err != redis.Nil {
		logx.Warnf("Legacy health cache read failed: %v", err)
	}

	healthy := s.inner.HealthCheck(ctx)

	value := "down"
	if healthy {
		value = "up"
	}
	if err := s.rdb.Set(ctx, legacyHealthKey, value, s.ttl).Err(); err != nil {
		logx.Warnf("Legacy health cache write failed: %v", err)
	}

	return healthy
}

var _ candidate.LegacySyncer = (*CachedLegacySyncer)(nil)
