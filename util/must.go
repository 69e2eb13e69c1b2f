package util

import "fmt"

// Must panics if err is non-nil. It is meant for values that are
// built at package initialization from embedded data.
func Must[V any](v V, err error) V {
	if err != nil {
		panic(fmt.Sprintf("util.Must: %v", err))
	}

	return v
}
