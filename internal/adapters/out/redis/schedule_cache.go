// Package redis caches the opening schedule in front of the database lookup.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"catering/internal/core/domain/model/schedule"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DefaultScheduleTTL is used when no positive TTL is configured.
const DefaultScheduleTTL = 10 * time.Minute

const keyPrefix = "opening_schedule:"

// cachedDay is the JSON form of one day. Missing marks a day without entry,
// so that closed-by-absence days are cached too.
type cachedDay struct {
	Missing bool    `json:"missing,omitempty"`
	IsOpen  bool    `json:"is_open"`
	Opening *string `json:"opening,omitempty"`
	Closing *string `json:"closing,omitempty"`
}

// CachedScheduleLookup implements ports.ScheduleLookup by reading through redis.
// Redis failures are logged and the underlying lookup is used instead.
type CachedScheduleLookup struct {
	Client *redis.Client
	TTL    time.Duration
	next   ports.ScheduleLookup
	logger *zap.Logger
}

// NewCachedScheduleLookup wraps next with a redis cache.
func NewCachedScheduleLookup(
	client *redis.Client,
	ttl time.Duration,
	next ports.ScheduleLookup,
	logger *zap.Logger,
) *CachedScheduleLookup {
	if ttl <= 0 {
		ttl = DefaultScheduleTTL
	}
	return &CachedScheduleLookup{
		Client: client,
		TTL:    ttl,
		next:   next,
		logger: logger.With(zap.String("component", "schedule_cache")),
	}
}

// Key returns the cache key of day.
func (c *CachedScheduleLookup) Key(day schedule.DayOfWeek) string {
	return keyPrefix + strconv.Itoa(int(day))
}

// FindScheduleForDay returns the cached entry of day, loading it on a miss.
func (c *CachedScheduleLookup) FindScheduleForDay(
	ctx context.Context,
	day schedule.DayOfWeek,
) (schedule.OpeningSchedule, error) {
	if err := day.Validate(); err != nil {
		return schedule.OpeningSchedule{}, err
	}

	key := c.Key(day)
	raw, err := c.Client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		s, decodeErr := decode(day, raw)
		if decodeErr == nil || errors.Is(decodeErr, errs.ErrObjectNotFound) {
			return s, decodeErr
		}
		c.logger.Warn("dropping unreadable schedule cache entry", zap.String("key", key), zap.Error(decodeErr))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("schedule cache read failed", zap.String("key", key), zap.Error(err))
	}

	s, err := c.next.FindScheduleForDay(ctx, day)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return schedule.OpeningSchedule{}, err
	}

	c.store(ctx, key, s, err != nil)
	return s, err
}

// Invalidate drops the cached entries of days, or of the whole week when none is given.
func (c *CachedScheduleLookup) Invalidate(ctx context.Context, days ...schedule.DayOfWeek) error {
	if len(days) == 0 {
		days = schedule.AllDays()
	}

	keys := make([]string, 0, len(days))
	for _, d := range days {
		keys = append(keys, c.Key(d))
	}
	return c.Client.Del(ctx, keys...).Err()
}

func (c *CachedScheduleLookup) store(ctx context.Context, key string, s schedule.OpeningSchedule, missing bool) {
	entry := cachedDay{Missing: missing}
	if !missing {
		entry.IsOpen = s.IsOpen()
		entry.Opening = format(s.OpeningTime())
		entry.Closing = format(s.ClosingTime())
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		c.logger.Warn("schedule cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}

	if err = c.Client.Set(ctx, key, payload, c.TTL).Err(); err != nil {
		c.logger.Warn("schedule cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func decode(day schedule.DayOfWeek, raw []byte) (schedule.OpeningSchedule, error) {
	var entry cachedDay
	if err := json.Unmarshal(raw, &entry); err != nil {
		return schedule.OpeningSchedule{}, err
	}
	if entry.Missing {
		return schedule.OpeningSchedule{}, errs.NewObjectNotFoundError("opening schedule", day.String())
	}

	opening, err := parse(entry.Opening)
	if err != nil {
		return schedule.OpeningSchedule{}, err
	}
	closing, err := parse(entry.Closing)
	if err != nil {
		return schedule.OpeningSchedule{}, err
	}
	return schedule.NewOpeningSchedule(day, opening, closing, entry.IsOpen)
}

func format(t *schedule.TimeOfDay) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

func parse(s *string) (*schedule.TimeOfDay, error) {
	if s == nil {
		return nil, nil //nolint:nilnil // absent time of day
	}
	t, err := schedule.ParseTimeOfDay(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
