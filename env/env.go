// Package env abstracts environment variable access so that parsing can be
// exercised without touching the process environment.
package env

import (
	"os"
)

// Resolver defines an interface for environment resolution.
type Resolver interface {
	// Lookup returns the value of the variable named by key and whether it is
	// present. A present variable with an empty value reports true.
	Lookup(key string) (string, bool)
}

// OSResolver is the default Resolver backed by the process environment.
type OSResolver struct{}

// Lookup wraps os.LookupEnv
func (r *OSResolver) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapResolver resolves variables from a fixed map.
type MapResolver map[string]string

// Lookup returns the mapped value for key
func (m MapResolver) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
