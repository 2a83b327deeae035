package field

import (
	"sync"
	"time"
)

// cachedMatcher is the memoised outcome of compiling one tag. A definition
// error is cached as well and returned on every later lookup.
type cachedMatcher struct {
	Matcher    *Matcher
	Err        error
	CompiledAt time.Time
}

// matcherCache provides in-memory caching of compiled matchers keyed by tag
type matcherCache struct {
	entries map[string]*cachedMatcher
	mu      sync.RWMutex
}

func newMatcherCache() *matcherCache {
	return &matcherCache{
		entries: make(map[string]*cachedMatcher),
	}
}

// Get retrieves a cached matcher by tag
func (mc *matcherCache) Get(tag string) (*cachedMatcher, bool) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	entry, exists := mc.entries[tag]
	return entry, exists
}

// Set stores a compile outcome and returns the stored entry. An entry
// already present wins, so concurrent callers agree on one matcher.
func (mc *matcherCache) Set(tag string, m *Matcher, err error) *cachedMatcher {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if entry, exists := mc.entries[tag]; exists {
		return entry
	}
	entry := &cachedMatcher{
		Matcher:    m,
		Err:        err,
		CompiledAt: time.Now(),
	}
	mc.entries[tag] = entry
	return entry
}

// InvalidateAll clears the entire cache
func (mc *matcherCache) InvalidateAll() {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.entries = make(map[string]*cachedMatcher)
}

// Counts returns the number of compiled and failed entries
func (mc *matcherCache) Counts() (compiled, failed int) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	for _, entry := range mc.entries {
		if entry.Err != nil {
			failed++
		} else {
			compiled++
		}
	}
	return compiled, failed
}
