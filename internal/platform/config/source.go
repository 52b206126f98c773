package config

import "os"

// Source is the raw, flat string environment the validator reads from.
// Lookup distinguishes "unset" from "set to the empty string".
type Source interface {
	Lookup(name string) (string, bool)
}

// OSSource reads from the process environment.
type OSSource struct{}

func (OSSource) Lookup(name string) (string, bool) { return os.LookupEnv(name) }

// MapSource is an in-memory Source for tests.
type MapSource map[string]string

func (m MapSource) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}
