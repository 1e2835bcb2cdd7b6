package review

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/levelupgamer/lu/internal/dispatchers"
	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/store"
	"github.com/levelupgamer/lu/internal/testutil"
	"github.com/levelupgamer/lu/internal/usage"
)

type output struct {
	mu sync.Mutex
	b  strings.Builder
}

func (o *output) Printf(format string, a ...any) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return fmt.Fprintf(&o.b, format, a...)
}

func (o *output) Println(a ...any) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return fmt.Fprintln(&o.b, a...)
}

func (o *output) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.b.String()
}

func newTestDeps(t *testing.T) (Deps, *store.Store, *output) {
	t.Helper()

	st := testutil.NewTestStore(t)
	testutil.SeedProducts(t, st, domain.Product{Code: "JM001", Name: "Catan", Category: "Juegos de Mesa", Price: 29990, Quantity: 5})

	out := &output{}
	return Deps{
		OpenStore: testutil.StoreOpener(st),
		Printf:    out.Printf,
		Println:   out.Println,
	}, st, out
}

func requireKind(t *testing.T, err error, kind usage.ErrorKind) {
	t.Helper()
	var ue *usage.Error
	require.True(t, errors.As(err, &ue), "expected usage error, got %v", err)
	require.Equal(t, kind, ue.Kind)
}

func TestAdd_Success(t *testing.T) {
	deps, st, out := newTestDeps(t)

	flags := dispatchers.NewParsedFlags([]string{"--comment=  Great game  "})
	require.NoError(t, add([]string{"JM001", "4"}, flags, deps))

	require.Contains(t, out.String(), "Rated Catan 4/5")

	reviews, err := st.ListReviews("JM001")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	require.Equal(t, 4, reviews[0].Rating)
	require.Equal(t, "Great game", reviews[0].Comment)
}

func TestAdd_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		kind usage.ErrorKind
	}{
		{name: "no args", args: nil, kind: usage.ErrMissingArgument},
		{name: "no rating", args: []string{"JM001"}, kind: usage.ErrMissingArgument},
		{name: "zero", args: []string{"JM001", "0"}, kind: usage.ErrInvalidValue},
		{name: "six", args: []string{"JM001", "6"}, kind: usage.ErrInvalidValue},
		{name: "fraction", args: []string{"JM001", "4.5"}, kind: usage.ErrInvalidValue},
		{name: "word", args: []string{"JM001", "five"}, kind: usage.ErrInvalidValue},
		{name: "unknown product", args: []string{"XX001", "3"}, kind: usage.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, st, _ := newTestDeps(t)

			err := add(tt.args, dispatchers.NewParsedFlags(nil), deps)
			requireKind(t, err, tt.kind)

			reviews, err := st.ListReviews("JM001")
			require.NoError(t, err)
			require.Empty(t, reviews)
		})
	}
}

func TestParseRating_Bounds(t *testing.T) {
	for _, s := range []string{"1", "3", "5", " 2 "} {
		_, err := parseRating(s)
		require.NoError(t, err, s)
	}
}

func TestAvg_NoReviews(t *testing.T) {
	deps, _, out := newTestDeps(t)

	require.NoError(t, avg([]string{"JM001"}, dispatchers.NewParsedFlags(nil), deps))

	require.Equal(t, "Catan: ☆☆☆☆☆ no reviews yet\n", out.String())
}

func TestAvg_WithReviews(t *testing.T) {
	deps, st, out := newTestDeps(t)
	for _, r := range []int{5, 4, 4} {
		require.NoError(t, st.AddReview(&domain.Review{ProductCode: "JM001", Rating: r}))
	}

	require.NoError(t, avg([]string{"JM001"}, dispatchers.NewParsedFlags(nil), deps))

	require.Equal(t, "Catan: ★★★★☆ 4.33\n", out.String())
}

func TestAvg_MaxStarsFromConfig(t *testing.T) {
	deps, st, out := newTestDeps(t)
	deps.GetInt = func(string, int) int { return 10 }
	require.NoError(t, st.AddReview(&domain.Review{ProductCode: "JM001", Rating: 3}))

	require.NoError(t, avg([]string{"JM001"}, dispatchers.NewParsedFlags(nil), deps))

	require.Contains(t, out.String(), "★★★☆☆☆☆☆☆☆")
}

func TestAvg_Errors(t *testing.T) {
	deps, _, _ := newTestDeps(t)

	requireKind(t, avg(nil, dispatchers.NewParsedFlags(nil), deps), usage.ErrMissingArgument)
	requireKind(t, avg([]string{"nope"}, dispatchers.NewParsedFlags(nil), deps), usage.ErrNotFound)
}

func TestAvg_Watch(t *testing.T) {
	deps, st, out := newTestDeps(t)

	ctx, cancel := context.WithCancel(context.Background())
	deps.WatchContext = func() (context.Context, context.CancelFunc) { return ctx, cancel }

	done := make(chan error, 1)
	go func() {
		done <- avg([]string{"JM001"}, dispatchers.NewParsedFlags([]string{"--watch"}), deps)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "no reviews yet")
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, st.AddReview(&domain.Review{ProductCode: "JM001", Rating: 5}))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "★★★★★ 5.00")
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestAvg_WatchSkipsUnchangedAverage(t *testing.T) {
	deps, st, out := newTestDeps(t)

	ctx, cancel := context.WithCancel(context.Background())
	deps.WatchContext = func() (context.Context, context.CancelFunc) { return ctx, cancel }

	done := make(chan error, 1)
	go func() {
		done <- avg([]string{"JM001"}, dispatchers.NewParsedFlags([]string{"--watch"}), deps)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "no reviews yet")
	}, 2*time.Second, 10*time.Millisecond)

	st.Feed().Publish(store.AllTopics...)
	require.NoError(t, st.AddReview(&domain.Review{ProductCode: "JM001", Rating: 4}))
	st.Feed().Publish(store.TopicReviews)

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "4.00")
	}, 2*time.Second, 10*time.Millisecond)
	require.Never(t, func() bool {
		return strings.Count(out.String(), "\n") > 2
	}, 200*time.Millisecond, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	require.Equal(t, 2, strings.Count(out.String(), "\n"))
}

func TestSameRating(t *testing.T) {
	four, alsoFour, five := 4.0, 4.0, 5.0

	require.True(t, sameRating(nil, nil))
	require.True(t, sameRating(&four, &alsoFour))
	require.False(t, sameRating(nil, &four))
	require.False(t, sameRating(&four, nil))
	require.False(t, sameRating(&four, &five))
}

func TestDefaultDeps(t *testing.T) {
	deps := DefaultDeps()

	require.NotNil(t, deps.OpenStore)
	require.NotNil(t, deps.WatchContext)

	ctx, stop := deps.WatchContext()
	defer stop()
	require.NoError(t, ctx.Err())
}
