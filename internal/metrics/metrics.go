package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type tableStats struct {
	rowsWritten  int64
	rowsLoaded   int64
	loads        int
	lastLoadTime time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// table loads. It doubles as the bridge to the OTel instruments when
// telemetry is enabled.
type Recorder struct {
	mu        sync.Mutex
	providers map[string]*providerStats
	tables    map[string]*tableStats
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		providers: make(map[string]*providerStats),
		tables:    make(map[string]*tableStats),
		otel:      otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores
// the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureProvider(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and
// stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureProvider(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordRowsWritten tracks how many rows landed in a table's CSV artifact.
func (r *Recorder) RecordRowsWritten(table string, rows int64) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.ensureTable(table).rowsWritten += rows
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRowsWritten(table, rows)
	}
}

// RecordTableLoad tracks a completed bulk load for a table.
func (r *Recorder) RecordTableLoad(table string, rows int64, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureTable(table)
	stats.loads++
	stats.rowsLoaded += rows
	stats.lastLoadTime = duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordTableLoad(table, rows, duration)
	}
}

// RecordRun tracks one pipeline run outcome.
func (r *Recorder) RecordRun(duration time.Duration, err error) {
	if r == nil {
		return
	}
	if r.otel != nil {
		r.otel.recordRun(duration, err)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureProvider(provider).calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureProvider(provider).errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureProvider(provider).rateLimitHits
}

// RowsWritten returns the CSV rows recorded for a table.
func (r *Recorder) RowsWritten(table string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureTable(table).rowsWritten
}

// RowsLoaded returns the database rows recorded for a table.
func (r *Recorder) RowsLoaded(table string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureTable(table).rowsLoaded
}

// TableLoads returns how many bulk loads completed for a table.
func (r *Recorder) TableLoads(table string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureTable(table).loads
}

func (r *Recorder) ensureProvider(provider string) *providerStats {
	stats, ok := r.providers[provider]
	if !ok {
		stats = &providerStats{}
		r.providers[provider] = stats
	}
	return stats
}

func (r *Recorder) ensureTable(table string) *tableStats {
	stats, ok := r.tables[table]
	if !ok {
		stats = &tableStats{}
		r.tables[table] = stats
	}
	return stats
}
