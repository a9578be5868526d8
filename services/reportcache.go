package services

import (
	"sync"
	"time"

	"clothing-store/models"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// reportCache holds the last combined report so /reports does not run the
// aggregation pipelines on every hit. A cron job refreshes it in the
// background; entries older than the TTL are treated as missing.
type reportCache struct {
	mu        sync.RWMutex
	report    models.Report
	updatedAt time.Time
	ttl       time.Duration
	cron      *cron.Cron
}

var cache = &reportCache{}

// StartReportCache primes the cache and schedules periodic refreshes.
func StartReportCache(schedule string, ttl time.Duration) {
	cache.ttl = ttl
	cache.refresh()

	c := cron.New()
	if _, err := c.AddFunc(schedule, cache.refresh); err != nil {
		log.Error().Err(err).Str("schedule", schedule).Msg("invalid report refresh schedule, cache will only fill on demand")
		return
	}
	c.Start()
	cache.cron = c
	log.Info().Str("schedule", schedule).Dur("ttl", ttl).Msg("report cache started")
}

// StopReportCache halts the refresh job.
func StopReportCache() {
	if cache.cron != nil {
		cache.cron.Stop()
	}
}

// CachedReport returns the cached report if it is still fresh.
func CachedReport() (models.Report, bool) {
	cache.mu.RLock()
	defer cache.mu.RUnlock()

	if cache.updatedAt.IsZero() || (cache.ttl > 0 && time.Since(cache.updatedAt) > cache.ttl) {
		return models.Report{}, false
	}
	return cache.report, true
}

// StoreReport replaces the cached report with a freshly computed one.
func StoreReport(report models.Report) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.report = report
	cache.updatedAt = time.Now()
}

func (rc *reportCache) refresh() {
	report, err := models.CombinedReport()
	if err != nil {
		log.Error().Err(err).Msg("report cache refresh failed")
		return
	}
	StoreReport(report)
	log.Debug().
		Int("brands_with_sales", len(report.BrandsWithSales)).
		Int("items_sold", len(report.ItemsSold)).
		Msg("report cache refreshed")
}
