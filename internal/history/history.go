package history

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/akyairhashvil/zenith/internal/models"
	"github.com/akyairhashvil/zenith/internal/util"
)

// Store is the persistence capability the history needs. GetSetting reports
// a missing key as ("", false, nil) and a failed read as an error.
//
//go:generate mockgen -source=history.go -destination=mock_store_test.go -package=history
type Store interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
}

// History maps "YYYY-MM-DD" to focus minutes and mirrors the whole mapping
// into a Store after every update. Buckets only grow.
type History struct {
	store Store
	key   string
	// base holds the stored minutes exactly as loaded, including entries
	// this version does not understand, so rewriting never drops them.
	base     map[string]float64
	seconds  map[string]int64
	detached bool
}

// Load reads the mapping stored under key. A missing or unparsable value
// yields an empty history. A failed read yields an empty history that never
// writes, so the stored value is not replaced by a partial one.
func Load(ctx context.Context, store Store, key string) *History {
	h := &History{store: store, key: key, base: make(map[string]float64), seconds: make(map[string]int64)}
	raw, ok, err := store.GetSetting(ctx, key)
	if err != nil {
		util.LogError("read focus history", err)
		h.detached = true
		return h
	}
	if !ok || raw == "" {
		return h
	}
	var minutes map[string]float64
	if err := json.Unmarshal([]byte(raw), &minutes); err != nil {
		util.LogError("load focus history", err)
		return h
	}
	for date, m := range minutes {
		h.base[date] = m
	}
	return h
}

// Persistent reports whether updates are written back to the store.
func (h *History) Persistent() bool {
	return !h.detached
}

// Record adds one second of focus to the bucket of at's local date and
// persists the full mapping.
func (h *History) Record(ctx context.Context, at time.Time) error {
	return h.add(ctx, at, 1)
}

func (h *History) add(ctx context.Context, at time.Time, seconds int64) error {
	if seconds <= 0 {
		return nil
	}
	h.seconds[at.Format(util.DateKey)] += seconds
	return h.persist(ctx)
}

func (h *History) persist(ctx context.Context) error {
	if h.detached {
		return nil
	}
	data, err := json.Marshal(h.Snapshot())
	if err != nil {
		return fmt.Errorf("encode focus history: %w", err)
	}
	if err := h.store.SetSetting(ctx, h.key, string(data)); err != nil {
		return fmt.Errorf("persist focus history: %w", err)
	}
	return nil
}

// Minutes returns the minutes recorded for date ("YYYY-MM-DD").
func (h *History) Minutes(date string) float64 {
	return h.base[date] + float64(h.seconds[date])/60
}

// MinutesOn returns the minutes recorded on t's local date.
func (h *History) MinutesOn(t time.Time) float64 {
	return h.Minutes(t.Format(util.DateKey))
}

// Snapshot copies the mapping in minutes, unrecognized entries included.
func (h *History) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(h.base)+len(h.seconds))
	for date := range h.base {
		out[date] = h.Minutes(date)
	}
	for date := range h.seconds {
		out[date] = h.Minutes(date)
	}
	return out
}

// Recorded lists every non-empty dated bucket in date order.
func (h *History) Recorded() []models.DayFocus {
	var out []models.DayFocus
	for date, m := range h.Snapshot() {
		if m <= 0 {
			continue
		}
		if _, err := time.Parse(util.DateKey, date); err != nil {
			continue
		}
		out = append(out, models.DayFocus{Date: date, Minutes: m})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Days returns n consecutive buckets ending on end's date, oldest first.
// Days without focus are included with zero minutes.
func (h *History) Days(end time.Time, n int) []models.DayFocus {
	if n <= 0 {
		return nil
	}
	y, m, d := end.Date()
	last := time.Date(y, m, d, 12, 0, 0, 0, end.Location())
	out := make([]models.DayFocus, 0, n)
	for i := n - 1; i >= 0; i-- {
		date := last.AddDate(0, 0, -i).Format(util.DateKey)
		out = append(out, models.DayFocus{Date: date, Minutes: h.Minutes(date)})
	}
	return out
}

// TotalMinutes sums every non-empty dated bucket.
func (h *History) TotalMinutes() float64 {
	var total float64
	for _, d := range h.Recorded() {
		total += d.Minutes
	}
	return total
}
