package shell

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const cacheFileName = ".prompt-cache"

// PromptCache holds cached prompt status data.
type PromptCache struct {
	Today          bool      `json:"today"`
	Mood           string    `json:"mood"`
	Streak         int       `json:"streak"`
	TodayDate      string    `json:"today_date"`
	StorageBackend string    `json:"storage_backend"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewPromptCache builds a cache record for status computed at now.
func NewPromptCache(st Status, backend string, now time.Time) *PromptCache {
	return &PromptCache{
		Today:          st.Today,
		Mood:           st.Mood,
		Streak:         st.Streak,
		TodayDate:      now.Format("2006-01-02"),
		StorageBackend: backend,
		UpdatedAt:      now,
	}
}

// Status converts the cache back into a Status.
func (c *PromptCache) Status() Status {
	return Status{Today: c.Today, Mood: c.Mood, Streak: c.Streak}
}

// CachePath returns the full path to the prompt cache file.
func CachePath(dataDir string) string {
	return filepath.Join(dataDir, cacheFileName)
}

// ReadCache reads the prompt cache from disk. Returns nil if the cache
// does not exist or cannot be parsed.
func ReadCache(dataDir string) *PromptCache {
	data, err := os.ReadFile(CachePath(dataDir))
	if err != nil {
		return nil
	}
	var c PromptCache
	if err := json.Unmarshal(data, &c); err != nil {
		return nil
	}
	return &c
}

// WriteCache writes the prompt cache to disk.
func WriteCache(dataDir string, c *PromptCache) error {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return err
	}
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(CachePath(dataDir), data, 0600)
}

// IsFresh reports whether the cache is still valid at now.
// A cache is stale if the TTL has elapsed or the date has changed (midnight rollover).
func (c *PromptCache) IsFresh(now time.Time, ttl time.Duration) bool {
	if c == nil {
		return false
	}
	if c.TodayDate != now.Format("2006-01-02") {
		return false
	}
	return now.Sub(c.UpdatedAt) <= ttl
}

// InvalidateCache removes the prompt cache file.
func InvalidateCache(dataDir string) error {
	path := CachePath(dataDir)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
