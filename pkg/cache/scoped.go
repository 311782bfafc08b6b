package cache

// ScopedKeyer prefixes every key of an inner Keyer, giving separate
// namespaces to callers that share one backend.
//
// The server scopes keys by the hash of the loaded document so that two
// servers pointed at different documents can share a Redis instance:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "doc:"+docHash[:12]+":")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to the keys of inner.
// A nil inner uses the DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// SceneKey implements Keyer.
func (k *ScopedKeyer) SceneKey(chartHash string, opts SceneKeyOpts) string {
	return k.prefix + k.inner.SceneKey(chartHash, opts)
}

// ArtifactKey implements Keyer.
func (k *ScopedKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(sceneHash, opts)
}
