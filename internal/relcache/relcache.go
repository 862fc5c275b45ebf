// Package relcache holds the per-lattice cache of relevant vectors shared by
// packages lattice and cvp. Being internal, it cannot be reached (or seeded)
// from outside the module.
package relcache

import "sync"

// Cache runs one computation per owner and keeps its result, error included.
type Cache struct {
	once  sync.Once
	value any
	err   error
}

// Do runs compute on the first call and returns the stored result on every
// call. The caller owns copying the value before handing it out.
func (c *Cache) Do(compute func() (any, error)) (any, error) {
	c.once.Do(func() {
		c.value, c.err = compute()
	})

	return c.value, c.err
}

// Of returns the cache carried by g, or nil when g carries none. Package
// lattice installs it at init.
var Of = func(g any) *Cache { return nil }
