// Package cache memoizes derived analytics. Dashboard bundles are kept per user
// until the user's training data changes; static reference tables live in a
// separate long-TTL cache that ages out or is cleared on demand.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymcoach/internal/telemetry/metrics"
)

const (
	megabyte = 1024 * 1024
	noExpiry = 0

	DefaultDashboardSizeMB = 64
	DefaultReferenceSizeMB = 8
	DefaultReferenceTTL    = 24 * time.Hour
)

// userEntry tags a cached payload with its owner so a stale entry can never be served to another user.
type userEntry struct {
	UserID  int64           `json:"u"`
	Payload json.RawMessage `json:"p"`
}

type Analytics struct {
	dashboards *freecache.Cache
	metrics    *metrics.Manager
}

func NewAnalytics(sizeMB int, metricsManager *metrics.Manager) *Analytics {
	if sizeMB <= 0 {
		sizeMB = DefaultDashboardSizeMB
	}
	return &Analytics{
		dashboards: freecache.NewCache(sizeMB * megabyte),
		metrics:    metricsManager,
	}
}

func dashboardKey(userID int64) []byte {
	return []byte(fmt.Sprintf("dashboard::%d", userID))
}

// GetDashboard decodes the user's cached bundle into v. A miss is not an error.
func (a *Analytics) GetDashboard(userID int64, v any) bool {
	raw, err := a.dashboards.Get(dashboardKey(userID))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Errorf("get dashboard cache for user %d: %s", userID, err)
		}
		a.metrics.ObserveCacheLookup("dashboard", false)
		return false
	}

	var e userEntry
	if err := json.Unmarshal(raw, &e); err != nil || e.UserID != userID {
		log.Warnf("dropping unusable dashboard cache entry for user %d", userID)
		a.dashboards.Del(dashboardKey(userID))
		a.metrics.ObserveCacheLookup("dashboard", false)
		return false
	}
	if err := json.Unmarshal(e.Payload, v); err != nil {
		log.Errorf("unmarshal cached dashboard for user %d: %s", userID, err)
		a.metrics.ObserveCacheLookup("dashboard", false)
		return false
	}

	a.metrics.ObserveCacheLookup("dashboard", true)
	return true
}

func (a *Analytics) SetDashboard(userID int64, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal dashboard: %w", err)
	}
	raw, err := json.Marshal(userEntry{UserID: userID, Payload: payload})
	if err != nil {
		return fmt.Errorf("marshal dashboard entry: %w", err)
	}
	if err := a.dashboards.Set(dashboardKey(userID), raw, noExpiry); err != nil {
		return fmt.Errorf("set dashboard cache: %w", err)
	}
	return nil
}

// InvalidateDashboard drops the user's bundle and reports whether one was cached.
func (a *Analytics) InvalidateDashboard(userID int64) bool {
	dropped := a.dashboards.Del(dashboardKey(userID))
	if dropped {
		log.Debugf("dashboard cache invalidated for user %d", userID)
	}
	return dropped
}

func (a *Analytics) EntryCount() int64 {
	return a.dashboards.EntryCount()
}

// Reference caches static tables, e.g. scaled 1RM standards, for a long TTL.
type Reference struct {
	tables     *freecache.Cache
	ttlSeconds int
	metrics    *metrics.Manager
}

func NewReference(sizeMB int, ttl time.Duration, metricsManager *metrics.Manager) *Reference {
	if sizeMB <= 0 {
		sizeMB = DefaultReferenceSizeMB
	}
	if ttl <= 0 {
		ttl = DefaultReferenceTTL
	}
	return &Reference{
		tables:     freecache.NewCache(sizeMB * megabyte),
		ttlSeconds: int(ttl.Seconds()),
		metrics:    metricsManager,
	}
}

func (r *Reference) Get(key string, v any) bool {
	raw, err := r.tables.Get([]byte(key))
	if err != nil {
		r.metrics.ObserveCacheLookup("reference", false)
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		log.Errorf("unmarshal reference table %s: %s", key, err)
		r.metrics.ObserveCacheLookup("reference", false)
		return false
	}
	r.metrics.ObserveCacheLookup("reference", true)
	return true
}

// Reset drops every table, e.g. after the exercise catalog was reseeded.
func (r *Reference) Reset() {
	r.tables.Clear()
	log.Infoln("reference cache cleared")
}

func (r *Reference) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal reference table %s: %w", key, err)
	}
	return r.tables.Set([]byte(key), raw, r.ttlSeconds)
}
