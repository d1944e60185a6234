package crawlclean

import "context"

// Cleaner releases one kind of operating-system resource: stale processes in
// the process table, or leftover files on disk. Implementations are
// best-effort and must treat an already-absent target as success.
type Cleaner func(ctx context.Context) error

// Chain returns a Cleaner that invokes each given Cleaner in order. Every
// Cleaner runs even when an earlier one fails; the first observed error is
// returned afterwards.
func Chain(cleaners ...Cleaner) Cleaner {
	return func(ctx context.Context) error {
		var chainedErr error
		for _, cleaner := range cleaners {
			if err := cleaner(ctx); chainedErr == nil {
				chainedErr = err
			}
		}
		return chainedErr
	}
}
