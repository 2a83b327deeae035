// Package field decodes SWIFT FIN field content by tag. Definitions are
// compiled on first use and memoised; the decoder is safe for concurrent use.
package field

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/finwire/finfield/compiler"
)

// CacheStats reports memo activity of a Decoder
type CacheStats struct {
	Hits     int64
	Misses   int64
	Compiled int
	Failed   int
}

// Decoder resolves tags against a Registry and extracts field values
type Decoder struct {
	registry *Registry
	logger   *zap.Logger
	timeout  time.Duration
	strict   bool

	cache  *matcherCache
	flight singleflight.Group
	hits   atomic.Int64
	misses atomic.Int64
}

// DecoderOption configures a Decoder
type DecoderOption func(*Decoder)

func WithLogger(logger *zap.Logger) DecoderOption {
	return func(d *Decoder) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMatchTimeout bounds a single match. Zero means no bound.
func WithMatchTimeout(timeout time.Duration) DecoderOption {
	return func(d *Decoder) {
		d.timeout = timeout
	}
}

func WithStrictCharsets(strict bool) DecoderOption {
	return func(d *Decoder) {
		d.strict = strict
	}
}

// NewDecoder creates a decoder over reg; a nil registry selects the
// built-in table
func NewDecoder(reg *Registry, opts ...DecoderOption) *Decoder {
	if reg == nil {
		reg = DefaultRegistry()
	}
	d := &Decoder{
		registry: reg,
		logger:   zap.NewNop(),
		cache:    newMatcherCache(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Decoder) Registry() *Registry {
	return d.registry
}

// Decode extracts the values of content for tag
func (d *Decoder) Decode(tag, content string) (Values, error) {
	m, err := d.Matcher(tag)
	if err != nil {
		return nil, err
	}
	return m.Extract(content)
}

// Matcher returns the compiled matcher for tag, compiling it at most once
func (d *Decoder) Matcher(tag string) (*Matcher, error) {
	def, ok := d.registry.Lookup(tag)
	if !ok {
		return nil, &UnknownTagError{Tag: tag, Suggestions: suggestTags(tag, d.registry.Tags())}
	}

	if entry, ok := d.cache.Get(tag); ok {
		d.hits.Add(1)
		return entry.Matcher, entry.Err
	}

	v, _, _ := d.flight.Do(tag, func() (interface{}, error) {
		if entry, ok := d.cache.Get(tag); ok {
			return entry, nil
		}
		d.misses.Add(1)
		m, err := d.compile(def)
		return d.cache.Set(tag, m, err), nil
	})

	entry := v.(*cachedMatcher)
	return entry.Matcher, entry.Err
}

func (d *Decoder) compile(def Definition) (*Matcher, error) {
	m, err := Compile(def, d.timeout, compiler.WithStrictCharsets(d.strict))
	if err != nil {
		d.logger.Warn("field definition rejected",
			zap.String("tag", def.Tag),
			zap.String("format", def.Format),
			zap.String("names", def.Names),
			zap.Error(err))
		return nil, err
	}

	d.logger.Debug("compiled field definition",
		zap.String("tag", def.Tag),
		zap.String("pattern", m.Pattern()),
		zap.Int("slots", len(m.Slots())))
	return m, nil
}

// Precompile compiles every registered definition and returns the
// definition errors in tag order
func (d *Decoder) Precompile() []error {
	var errs []error
	for _, tag := range d.registry.Tags() {
		if _, err := d.Matcher(tag); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Reset drops every memoised matcher
func (d *Decoder) Reset() {
	d.cache.InvalidateAll()
}

// Stats returns a snapshot of memo activity
func (d *Decoder) Stats() CacheStats {
	compiled, failed := d.cache.Counts()
	return CacheStats{
		Hits:     d.hits.Load(),
		Misses:   d.misses.Load(),
		Compiled: compiled,
		Failed:   failed,
	}
}
