package kv

// Store is the persisted key-value contract the session layer writes through.
// Absence and read failures both surface as a missing key; writes report
// errors so callers can decide whether persistence loss matters.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}
