package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/chartkit/pkg/cache"
	"github.com/matzehuels/chartkit/pkg/observability"
	"github.com/matzehuels/chartkit/pkg/render"
	"github.com/matzehuels/chartkit/pkg/render/sink"
	"github.com/matzehuels/chartkit/pkg/spec"
)

// Runner encapsulates pipeline execution with caching.
// Both the CLI and the server use it to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
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
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Load reads and validates a chart document.
func (r *Runner) Load(ctx context.Context, path string) (*spec.Document, error) {
	hooks := observability.Render()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()

	doc, err := spec.Load(path)
	charts := 0
	if doc != nil {
		charts = len(doc.Charts)
	}
	hooks.OnLoadComplete(ctx, path, charts, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("loaded document", "path", path, "charts", charts, "duration", time.Since(start))
	return doc, nil
}

// Execute runs the scene → artifact pipeline for one chart with caching.
func (r *Runner) Execute(ctx context.Context, c spec.Chart, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	c = c.WithDefaults()

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, string(c.Type), c.Name)
	result, err := r.execute(ctx, c, opts)
	elements := 0
	if result != nil {
		elements = result.Stats.Elements
	}
	hooks.OnRenderComplete(ctx, string(c.Type), c.Name, elements, sinceStart(result), err)
	return result, err
}

func (r *Runner) execute(ctx context.Context, c spec.Chart, opts Options) (*Result, error) {
	chartHash, err := cache.HashJSON(c)
	if err != nil {
		return nil, fmt.Errorf("hash chart %q: %w", c.Name, err)
	}
	result := &Result{Chart: c, ChartHash: chartHash}

	// Stage 1: Scene
	sceneStart := time.Now()
	scene, sceneData, sceneHit, err := r.SceneWithCacheInfo(ctx, c, chartHash, opts)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", c.Name, err)
	}
	result.Scene = scene
	result.Stats.Elements = len(scene.Elements)
	result.Stats.SceneTime = time.Since(sceneStart)
	result.CacheInfo.SceneHit = sceneHit

	opts.Logger.Debug("computed scene",
		"chart", c.Name,
		"elements", result.Stats.Elements,
		"cached", sceneHit,
		"duration", result.Stats.SceneTime)

	// Stage 2: Artifacts
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, scene, cache.Hash(sceneData), opts)
	if err != nil {
		return nil, fmt.Errorf("render %q: %w", c.Name, err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.ArtifactHit = renderHit

	opts.Logger.Debug("rendered outputs",
		"chart", c.Name,
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ExecuteAll runs Execute for every chart of doc, opts.Concurrency at a
// time. Results are in document order. The first error cancels the rest.
func (r *Runner) ExecuteAll(ctx context.Context, doc *spec.Document, opts Options) ([]*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	results := make([]*Result, len(doc.Charts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for i, c := range doc.Charts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.Execute(ctx, c, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// SceneWithCacheInfo returns the scene of c, its JSON encoding and whether it
// came from cache. chartHash must be the content hash of c.
func (r *Runner) SceneWithCacheInfo(ctx context.Context, c spec.Chart, chartHash string, opts Options) (render.Scene, []byte, bool, error) {
	key := r.Keyer.SceneKey(chartHash, opts.SceneKeyOpts())

	if !opts.Refresh {
		if data, ok := r.get(ctx, key); ok {
			if scene, err := sink.ReadJSON(data); err == nil {
				return scene, data, true, nil
			}
			// Undecodable entries are recomputed and overwritten.
		}
	}

	scene, err := BuildScene(c, opts)
	if err != nil {
		return render.Scene{}, nil, false, err
	}
	data, err := sink.JSON(scene)
	if err != nil {
		return render.Scene{}, nil, false, fmt.Errorf("serialize scene: %w", err)
	}
	r.set(ctx, key, data, cache.TTLScene)
	return scene, data, false, nil
}

// RenderWithCacheInfo serializes a scene in opts.Formats and reports whether
// every artifact came from cache. sceneHash must be the hash of the scene's
// JSON encoding.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, scene render.Scene, sceneHash string, opts Options) (map[string][]byte, bool, error) {
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := !opts.Refresh
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format))
		if !opts.Refresh {
			if data, ok := r.get(ctx, key); ok {
				artifacts[format] = data
				continue
			}
		}
		allCached = false

		data, err := renderFormat(scene, format)
		if err != nil {
			return nil, false, fmt.Errorf("render %s: %w", format, err)
		}
		r.set(ctx, key, data, cache.TTLArtifact)
		artifacts[format] = data
	}
	return artifacts, allCached, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// get reads key, treating backend errors as misses.
func (r *Runner) get(ctx context.Context, key string) ([]byte, bool) {
	hooks := observability.Cache()
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "key", key, "error", err)
	}
	if err != nil || !hit {
		hooks.OnCacheMiss(ctx, cache.KeyType(key))
		return nil, false
	}
	hooks.OnCacheHit(ctx, cache.KeyType(key))
	return data, true
}

// set writes key. A failed write only costs a future recompute.
func (r *Runner) set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, cache.KeyType(key), len(data))
}

func sinceStart(res *Result) time.Duration {
	if res == nil {
		return 0
	}
	return res.Stats.SceneTime + res.Stats.RenderTime
}
