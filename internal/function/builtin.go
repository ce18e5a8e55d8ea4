package function

import pkgLog "voice-intent/pkg/log"

// NewDefaultRegistry registers the built-in functions. catalog may be nil.
func NewDefaultRegistry(l pkgLog.Logger, catalog Catalog) (*Registry, error) {
	r := NewRegistry(l)
	for _, h := range []Handler{
		NewExit(l),
		NewChangeRole(l),
		NewPlayMusic(l, catalog),
	} {
		if err := r.Register(h); err != nil {
			return nil, err
		}
	}
	return r, nil
}
