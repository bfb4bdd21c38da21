package cache

// ScopedKeyer wraps a Keyer with a prefix so that several producers can
// share one cache without colliding. The CLI scopes keys by build version,
// so a rebuilt solver does not serve answers computed by an older one.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.4.0:")
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

// AnswerKey generates a prefixed answer key.
func (k *ScopedKeyer) AnswerKey(year, day int, inputHash string) string {
	return k.prefix + k.inner.AnswerKey(year, day, inputHash)
}
