package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// This is useful in the hosted platform where different workspaces need
// separate cache namespaces.
//
// Example usage:
//
//	// Workspace-specific keys for private brand kits
//	wsKeyer := NewScopedKeyer(NewDefaultKeyer(), "workspace:abc123:")
//
//	// Global keys for shared format catalogs
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ReportKey generates a prefixed key for compliance report caching.
func (k *ScopedKeyer) ReportKey(docHash, formatID string) string {
	return k.prefix + k.inner.ReportKey(docHash, formatID)
}

// GenerationKey generates a prefixed key for generation response caching.
func (k *ScopedKeyer) GenerationKey(prompt string) string {
	return k.prefix + k.inner.GenerationKey(prompt)
}

// DocumentKey generates a prefixed key for document snapshot caching.
func (k *ScopedKeyer) DocumentKey(documentID string) string {
	return k.prefix + k.inner.DocumentKey(documentID)
}
