package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordtower/pkg/cache"
	"github.com/matzehuels/wordtower/pkg/errors"
	"github.com/matzehuels/wordtower/pkg/layout"
	"github.com/matzehuels/wordtower/pkg/observability"
)

// Cache key types reported to observability hooks.
const (
	keyTypeLayout   = "layout"
	keyTypeArtifact = "artifact"
)

// Runner executes the pipeline with caching. It holds no per-run state, so
// one Runner may serve concurrent requests with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner returns a runner. A nil cache disables caching and a nil keyer
// uses [cache.NewDefaultKeyer].
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs layout then render for doc.
func (r *Runner) Execute(ctx context.Context, doc string, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	layoutStart := time.Now()
	l, hash, hit, err := r.ComputeLayoutWithCacheInfo(ctx, doc, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = l
	result.LayoutHash = hash
	result.CacheInfo.LayoutHit = hit
	result.Stats = Stats{
		Words:      l.WordCount,
		Characters: l.CharacterCount,
		Distinct:   l.DistinctCount,
		LayoutTime: time.Since(layoutStart),
	}
	r.Logger.Info("computed layout",
		"words", l.WordCount,
		"distinct", l.DistinctCount,
		"cached", hit,
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	artifacts, hit, err := r.renderWithHash(ctx, l, hash, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = hit
	result.Stats.RenderTime = time.Since(renderStart)
	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ComputeLayoutWithCacheInfo returns the layout of doc, its content hash,
// and whether it came from the cache.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, doc string, opts Options) (*layout.Layout, string, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return nil, "", false, err
	}

	key := r.Keyer.LayoutKey(cache.Hash([]byte(doc)), opts.LayoutKeyOpts())
	hooks := observability.Cache()

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var l layout.Layout
			if err := json.Unmarshal(data, &l); err == nil {
				hooks.OnCacheHit(ctx, keyTypeLayout)
				return &l, cache.Hash(data), true, nil
			}
		}
		hooks.OnCacheMiss(ctx, keyTypeLayout)
	}

	l, err := GenerateLayout(ctx, doc, opts)
	if err != nil {
		return nil, "", false, err
	}

	data, err := json.Marshal(l)
	if err != nil {
		return nil, "", false, errors.Wrap(errors.ErrCodeInternal, err, "encode layout")
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLLayout); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "err", err)
	} else {
		hooks.OnCacheSet(ctx, keyTypeLayout, len(data))
	}
	return l, cache.Hash(data), false, nil
}

// ComputeLayout returns the layout of doc, consulting the cache.
func (r *Runner) ComputeLayout(ctx context.Context, doc string, opts Options) (*layout.Layout, error) {
	l, _, _, err := r.ComputeLayoutWithCacheInfo(ctx, doc, opts)
	return l, err
}

// RenderWithCacheInfo renders l and reports whether every artifact came
// from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l *layout.Layout, opts Options) (map[string][]byte, bool, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "encode layout for cache key")
	}
	return r.renderWithHash(ctx, l, cache.Hash(data), opts)
}

// Render renders l, consulting the cache.
func (r *Runner) Render(ctx context.Context, l *layout.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, opts)
	return artifacts, err
}

func (r *Runner) renderWithHash(ctx context.Context, l *layout.Layout, layoutHash string, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	opts.Selection = opts.ResolveSelection(l)
	hooks := observability.Cache()

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			data, hit, err := r.Cache.Get(ctx, r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format)))
			if err != nil || !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			hooks.OnCacheHit(ctx, keyTypeArtifact)
			return artifacts, true, nil
		}
		hooks.OnCacheMiss(ctx, keyTypeArtifact)
	}

	rendered, err := RenderFromLayout(ctx, l, opts)
	if err != nil {
		return nil, false, err
	}
	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "key", key, "err", err)
			continue
		}
		hooks.OnCacheSet(ctx, keyTypeArtifact, len(data))
	}
	return rendered, false, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
