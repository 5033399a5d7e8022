package assert

import (
	"fmt"
)

// NotEmpty panics when value is empty. Used for construction-time invariants
// that indicate a programming error, not a runtime condition.
func NotEmpty(name, value string) {
	if value == "" {
		msg := fmt.Sprintf("assert.NotEmpty %s is empty", name)
		panic(msg)
	}
}

// Unique panics when key is already present in seen.
func Unique(seen map[string]bool, key string) {
	if seen[key] {
		msg := fmt.Sprintf("assert.Unique duplicate %s", key)
		panic(msg)
	}
	seen[key] = true
}
