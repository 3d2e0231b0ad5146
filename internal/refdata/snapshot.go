package refdata

import (
	"context"
	"fmt"
	"strings"
)

// Loader issues the single network read backing a snapshot.
type Loader[T any] func(ctx context.Context) ([]T, error)

// Snapshot is one screen's transient working set. Every screen owns its own
// snapshot exclusively; there is no cross-screen sharing or invalidation, and
// a screen re-invokes Load after any mutation it performs.
type Snapshot[T any] struct {
	items  []T
	loaded bool
	errMsg string
}

// Load replaces the working set with the loader's result. On failure the
// previous items are discarded, a short user-facing message is kept, and no
// retry happens.
func (s *Snapshot[T]) Load(ctx context.Context, load Loader[T]) error {
	items, err := load(ctx)
	if err != nil {
		s.items = nil
		s.loaded = false
		s.errMsg = "Could not load data."
		return err
	}
	s.items = items
	s.loaded = true
	s.errMsg = ""
	return nil
}

func (s *Snapshot[T]) Items() []T {
	return s.items
}

func (s *Snapshot[T]) Loaded() bool {
	return s.loaded
}

// ErrMessage is the short banner text for the last failed load, empty after
// a successful one.
func (s *Snapshot[T]) ErrMessage() string {
	return s.errMsg
}

// Filter returns the items whose flattened field text contains the query,
// case-insensitively. The underlying set is never mutated; an empty query
// returns everything.
func (s *Snapshot[T]) Filter(query string) []T {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.items
	}
	filtered := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if strings.Contains(strings.ToLower(fmt.Sprintf("%v", item)), query) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
