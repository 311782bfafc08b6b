// Package cache stores rendered chart scenes and artifacts.
//
// Rendering is cheap but not free: the server renders the same chart with
// the same hover and selection over and over, and the CLI re-renders whole
// documents on every run. Results are cached in two tiers, mirroring the
// render pipeline:
//
//   - scene: the computed [render.Scene] for a chart plus interaction state
//   - artifact: the serialized output (svg, json) of a scene
//
// Keys are derived from content hashes by a [Keyer], so editing a chart
// document invalidates exactly the charts that changed.
//
// Backends:
//   - [FileCache] under the XDG cache directory, for the CLI
//   - [RedisCache], shared between server replicas
//   - [NullCache], when caching is disabled
//
// [render.Scene]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/render#Scene
package cache

import (
	"context"
	"strings"
	"time"
)

// Default TTLs per tier.
const (
	TTLScene    = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// SceneKeyOpts are the inputs besides the chart itself that affect a scene.
type SceneKeyOpts struct {
	Hovered  string `json:"hovered,omitempty"`
	Selected string `json:"selected,omitempty"`
}

// ArtifactKeyOpts are the inputs that affect serialization of a scene.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
}

// Keyer derives cache keys.
type Keyer interface {
	// SceneKey returns the key for the scene of the chart with chartHash.
	SceneKey(chartHash string, opts SceneKeyOpts) string

	// ArtifactKey returns the key for an artifact of the scene with sceneHash.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key inputs under fixed prefixes.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// SceneKey implements Keyer.
func (DefaultKeyer) SceneKey(chartHash string, opts SceneKeyOpts) string {
	return hashKey("scene", chartHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneHash, opts)
}

// KeyType returns the tier prefix of a key ("scene", "artifact"), used to
// label cache events.
func KeyType(key string) string {
	i := strings.LastIndexByte(key, ':')
	if i < 0 {
		return key
	}
	prefix := key[:i]
	return prefix[strings.LastIndexByte(prefix, ':')+1:]
}
