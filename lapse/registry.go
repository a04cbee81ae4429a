package lapse

import "sync"

var (
	// gsamplers (global samplers) records every Sampler built while the
	// instrument is enabled, in construction order.
	gsamplers []*Sampler
	// gsLock manages access to gsamplers
	gsLock sync.Mutex
)

func register(s *Sampler) {
	gsLock.Lock()
	gsamplers = append(gsamplers, s)
	gsLock.Unlock()
}

// FlushAll flushes every registered Sampler, writing and closing any
// still-open sinks. Go has no destructors to flush a Sampler at scope
// exit, so call this once at process shutdown, after all instrumented
// work has stopped: each Sampler is still single-owner and FlushAll
// must not race with its owner.
func FlushAll() {
	gsLock.Lock()
	defer gsLock.Unlock()

	for _, s := range gsamplers {
		s.Flush()
	}
}

// snapshot returns the registered samplers for reporting.
func snapshot() []*Sampler {
	gsLock.Lock()
	defer gsLock.Unlock()

	cp := make([]*Sampler, len(gsamplers))
	copy(cp, gsamplers)
	return cp
}

// resetRegistry drops all registered samplers without flushing them.
// Test hook.
func resetRegistry() {
	gsLock.Lock()
	gsamplers = nil
	gsLock.Unlock()
}
