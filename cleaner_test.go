package crawlclean_test

import (
	"context"
	"errors"
	"testing"

	crawlclean "github.com/alnah/go-crawlclean"
)

// ---------------------------------------------------------------------------
// TestChain - Sequential Cleaner Execution
// ---------------------------------------------------------------------------

func TestChain_RunsAllInOrder(t *testing.T) {
	t.Parallel()

	var order []int
	step := func(n int) crawlclean.Cleaner {
		return func(ctx context.Context) error {
			order = append(order, n)
			return nil
		}
	}

	err := crawlclean.Chain(step(1), step(2), step(3))(context.Background())
	if err != nil {
		t.Fatalf("Chain() = %v, want nil", err)
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("execution order = %v, want [1 2 3]", order)
	}
}

func TestChain_FailureDoesNotStopLaterCleaners(t *testing.T) {
	t.Parallel()

	errFirst := errors.New("first failure")
	errSecond := errors.New("second failure")
	var ranLast bool

	err := crawlclean.Chain(
		func(ctx context.Context) error { return errFirst },
		func(ctx context.Context) error { return errSecond },
		func(ctx context.Context) error { ranLast = true; return nil },
	)(context.Background())

	if !ranLast {
		t.Error("last cleaner did not run after earlier failures")
	}
	if !errors.Is(err, errFirst) {
		t.Errorf("Chain() = %v, want first error %v", err, errFirst)
	}
}

func TestChain_Empty(t *testing.T) {
	t.Parallel()

	if err := crawlclean.Chain()(context.Background()); err != nil {
		t.Errorf("Chain() with no cleaners = %v, want nil", err)
	}
}
