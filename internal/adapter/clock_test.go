package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestManualClock_AdvanceWithoutTicker(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))

	fired, err := clock.Advance(context.Background())
	require.NoError(t, err)
	require.False(t, fired)
	require.Equal(t, time.Unix(0, 0), clock.Now())
}

func TestManualClock_DeliversTick(t *testing.T) {
	start := time.Unix(100, 0)
	clock := NewManualClock(start)
	ticker := clock.NewTicker(30 * time.Millisecond)
	defer ticker.Stop()

	received := make(chan time.Time, 1)
	go func() { received <- <-ticker.C() }()

	fired, err := clock.Advance(context.Background())
	require.NoError(t, err)
	require.True(t, fired)
	require.Equal(t, start.Add(30*time.Millisecond), <-received)
	require.Equal(t, 1, clock.Live())
	require.Equal(t, 1, clock.Created())
}

func TestManualClock_StopReleasesAdvance(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	ticker := clock.NewTicker(time.Second)

	done := make(chan bool)
	go func() {
		fired, _ := clock.Advance(context.Background())
		done <- fired
	}()

	time.Sleep(10 * time.Millisecond)
	ticker.Stop()
	ticker.Stop()

	select {
	case fired := <-done:
		require.False(t, fired)
	case <-time.After(time.Second):
		t.Fatal("Advance did not return after Stop")
	}

	require.Zero(t, clock.Live())
}

func TestManualClock_AdvanceHonoursContext(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	ticker := clock.NewTicker(time.Second)
	defer ticker.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	fired, err := clock.Advance(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.False(t, fired)
}

func TestSystemClock_Ticks(t *testing.T) {
	ticker := NewSystemClock().NewTicker(time.Millisecond)
	defer ticker.Stop()

	select {
	case <-ticker.C():
	case <-time.After(time.Second):
		t.Fatal("system ticker did not fire")
	}
}
