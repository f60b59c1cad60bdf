// Package store persists sandboxes, carbon reports, and green-points
// state as graph nodes. All methods go through the GraphDriver and return
// explicit errors; nothing here caches.
package store

import (
	"time"

	"github.com/astra-cloud/astra/internal/driver"
)

type Store struct {
	driver driver.GraphDriver
}

func New(d driver.GraphDriver) *Store {
	return &Store{driver: d}
}

// Record values arrive as interface{} from the driver; numeric properties
// may come back as int64 or float64 depending on how they were written.

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asInt(v interface{}) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case float64:
		return int64(n)
	}
	return 0
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	}
	return 0
}

func asTime(v interface{}) time.Time {
	s, ok := v.(string)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
