package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"stockroom/internal/dto"
)

const (
	reportCacheTTL   = 10 * time.Minute
	reportVersionKey = "reports:version"
)

// ReportCache memoizes monthly report rows in Redis. Every cache key embeds
// a version counter that stock mutations bump, so rows computed before a
// mutation can never be served after it. Everything here is best-effort: a
// missing or unreachable Redis degrades to recomputation, never to an error.
// A nil *ReportCache is valid and disables caching (unit test mode).
type ReportCache struct {
	rdb *redis.Client
}

func NewReportCache(rdb *redis.Client) *ReportCache {
	return &ReportCache{rdb: rdb}
}

func (c *ReportCache) key(ctx context.Context, year, month int, warehouseID string) (string, bool) {
	ver, err := c.rdb.Get(ctx, reportVersionKey).Int64()
	if err != nil && err != redis.Nil {
		return "", false
	}
	if warehouseID == "" {
		warehouseID = "all"
	}
	return fmt.Sprintf("reports:monthly:v%d:%d-%02d:%s", ver, year, month, warehouseID), true
}

func (c *ReportCache) GetMonthly(ctx context.Context, year, month int, warehouseID string) ([]dto.ReportRow, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	key, ok := c.key(ctx, year, month, warehouseID)
	if !ok {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var rows []dto.ReportRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, false
	}
	return rows, true
}

func (c *ReportCache) SetMonthly(ctx context.Context, year, month int, warehouseID string, rows []dto.ReportRow) {
	if c == nil || c.rdb == nil {
		return
	}
	key, ok := c.key(ctx, year, month, warehouseID)
	if !ok {
		return
	}
	if raw, err := json.Marshal(rows); err == nil {
		_ = c.rdb.Set(ctx, key, raw, reportCacheTTL).Err()
	}
}

// Invalidate bumps the version counter, orphaning every cached report.
// Orphaned keys expire on their own TTL.
func (c *ReportCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	_ = c.rdb.Incr(ctx, reportVersionKey).Err()
}
