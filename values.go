package clargs

import "sort"

// Values maps argument and positional names to their resolved values. The
// executable path is stored under PathKey.
type Values map[string]string

// Get returns the value bound to name and whether one was bound
func (v Values) Get(name string) (string, bool) {
	value, ok := v[name]
	return value, ok
}

// GetOrDefault returns the value bound to name, or def when there is none
func (v Values) GetOrDefault(name, def string) string {
	if value, ok := v[name]; ok {
		return value
	}

	return def
}

// Has reports whether name was bound. For flags which take no value this is
// equivalent to asking whether the flag was set.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// Path returns the invoked executable path
func (v Values) Path() string {
	return v[PathKey]
}

// Keys returns the bound names in sorted order
func (v Values) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
