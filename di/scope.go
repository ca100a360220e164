package di

// WithScope runs body inside a scope window.
//
// On entry the injector is marked in-scope with a fresh scoped cache; on
// exit — whether body returns normally, returns an error, or panics — the
// flag is cleared and the cache is discarded, so a later scope never
// observes stale scoped instances.
//
// At most one scope is active per injector: concurrent callers serialize.
// WithScope is not reentrant; nesting it on the same goroutine blocks
// forever, like locking an already-held sync.Mutex.
func (inj *Injector) WithScope(body func(inj *Injector) error) error {
	inj.scopeMu.Lock()

	inj.mu.Lock()
	inj.inScope = true
	inj.scoped = make(map[Identity]any)
	inj.mu.Unlock()
	inj.log.Debug("di: scope entered")

	defer func() {
		inj.mu.Lock()
		inj.inScope = false
		inj.scoped = nil
		inj.mu.Unlock()
		inj.log.Debug("di: scope exited")
		inj.scopeMu.Unlock()
	}()

	return body(inj)
}

// InScope reports whether a scope window is currently active.
func (inj *Injector) InScope() bool {
	inj.mu.Lock()
	defer inj.mu.Unlock()
	return inj.inScope
}
