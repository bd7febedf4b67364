package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsInvalidThreshold(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		c := New(n)
		assert.Equal(t, DefaultClicksPerStar, c.ClicksPerStar(), "threshold %d", n)
		assert.Equal(t, State{ClicksPerStar: DefaultClicksPerStar}, c.Snapshot())
	}
	assert.Equal(t, 3, New(3).ClicksPerStar())
}

func TestIncrementAwardsStarAtThreshold(t *testing.T) {
	c := New(4)
	c.progress = 3
	c.stars = 2

	ev := c.Increment()

	require.Equal(t, EventStarAwarded, ev)
	assert.True(t, ev.Awarded())
	assert.Equal(t, State{Progress: 0, Stars: 3, ClicksPerStar: 4}, c.Snapshot())
}

func TestIncrementBelowThresholdOnlyProgresses(t *testing.T) {
	c := New(4)
	ev := c.Increment()
	assert.Equal(t, EventProgressed, ev)
	assert.False(t, ev.Awarded())
	assert.Equal(t, State{Progress: 1, Stars: 0, ClicksPerStar: 4}, c.Snapshot())
}

func TestThresholdOfOneAwardsEveryClick(t *testing.T) {
	c := New(1)
	for i := 1; i <= 3; i++ {
		require.Equal(t, EventStarAwarded, c.Increment())
		assert.Equal(t, 0, c.Progress())
		assert.Equal(t, i, c.Stars())
	}
	require.Equal(t, EventStarRevoked, c.Decrement())
	assert.Equal(t, State{Progress: 0, Stars: 2, ClicksPerStar: 1}, c.Snapshot())
}

func TestDecrementRevokesStarAtZeroProgress(t *testing.T) {
	c := New(10)
	c.stars = 3

	ev := c.Decrement()

	require.Equal(t, EventStarRevoked, ev)
	assert.Equal(t, State{Progress: 9, Stars: 2, ClicksPerStar: 10}, c.Snapshot())
}

func TestDecrementFloorIsNoop(t *testing.T) {
	c := New(5)
	for i := 0; i < 5; i++ {
		assert.Equal(t, EventNone, c.Decrement())
	}
	assert.Equal(t, State{ClicksPerStar: 5}, c.Snapshot())
	assert.False(t, c.MinusEnabled())
	assert.True(t, c.PlusEnabled())
}

func TestDecrementNeverAwards(t *testing.T) {
	c := New(2)
	c.stars = 1
	c.progress = 1
	for i := 0; i < 6; i++ {
		assert.False(t, c.Decrement().Awarded())
	}
}

func TestSetThresholdClampsProgress(t *testing.T) {
	c := New(10)
	c.progress = 7
	c.stars = 2

	require.True(t, c.SetThreshold(5))

	assert.Equal(t, State{Progress: 4, Stars: 2, ClicksPerStar: 5}, c.Snapshot())
}

func TestSetThresholdKeepsProgressBelowNewValue(t *testing.T) {
	c := New(10)
	c.progress = 3
	require.True(t, c.SetThreshold(20))
	assert.Equal(t, State{Progress: 3, Stars: 0, ClicksPerStar: 20}, c.Snapshot())
}

func TestSetThresholdRejectsNonPositive(t *testing.T) {
	c := New(6)
	c.progress = 2
	for _, n := range []int{0, -3} {
		assert.False(t, c.SetThreshold(n))
	}
	assert.Equal(t, State{Progress: 2, ClicksPerStar: 6}, c.Snapshot())
}

func TestSetThresholdString(t *testing.T) {
	c := New(10)
	c.progress = 8
	assert.False(t, c.SetThresholdString("abc"))
	assert.False(t, c.SetThresholdString("0"))
	assert.Equal(t, 10, c.ClicksPerStar())

	assert.True(t, c.SetThresholdString(" 4 clicks"))
	assert.Equal(t, State{Progress: 3, ClicksPerStar: 4}, c.Snapshot())
}

func TestResetKeepsThreshold(t *testing.T) {
	c := New(7)
	c.progress = 5
	c.stars = 9

	assert.Equal(t, EventReset, c.Reset())
	assert.Equal(t, State{Progress: 0, Stars: 0, ClicksPerStar: 7}, c.Snapshot())
}

func TestNormalizeRepairsTamperedState(t *testing.T) {
	c := New(5)
	c.progress = 12
	c.stars = -4

	require.True(t, c.Normalize())
	assert.Equal(t, State{Progress: 4, Stars: 0, ClicksPerStar: 5}, c.Snapshot())

	c.progress = -2
	require.True(t, c.Normalize())
	assert.Equal(t, 0, c.Progress())

	c.clicksPerStar = 0
	c.progress = 3
	require.True(t, c.Normalize())
	assert.Equal(t, State{Progress: 3, ClicksPerStar: DefaultClicksPerStar}, c.Snapshot())
}

func TestNormalizeIsIdempotent(t *testing.T) {
	c := New(3)
	c.Increment()
	c.Increment()
	c.Increment()
	c.Increment()
	before := c.Snapshot()

	assert.False(t, c.Normalize())
	assert.False(t, c.Normalize())
	assert.Equal(t, before, c.Snapshot())
}

func TestEndToEndSequence(t *testing.T) {
	c := New(3)
	steps := []struct {
		op    func() Event
		want  State
		event Event
	}{
		{c.Increment, State{1, 0, 3}, EventProgressed},
		{c.Increment, State{2, 0, 3}, EventProgressed},
		{c.Increment, State{0, 1, 3}, EventStarAwarded},
		{c.Increment, State{1, 1, 3}, EventProgressed},
		{c.Decrement, State{0, 1, 3}, EventRegressed},
	}
	for i, step := range steps {
		ev := step.op()
		assert.Equal(t, step.event, ev, "step %d", i+1)
		assert.Equal(t, step.want, c.Snapshot(), "step %d", i+1)
	}
}

func TestInvariantHoldsAcrossMixedOperations(t *testing.T) {
	c := New(4)
	ops := []func(){
		func() { c.Increment() },
		func() { c.Decrement() },
		func() { c.SetThreshold(2) },
		func() { c.SetThreshold(7) },
		func() { c.Reset() },
		func() { c.SetThreshold(-1) },
	}
	// Deterministic walk over every op in a repeating, shifted order.
	for i := 0; i < 500; i++ {
		ops[(i*7+i/3)%len(ops)]()
		s := c.Snapshot()
		require.GreaterOrEqual(t, s.Progress, 0)
		require.Less(t, s.Progress, s.ClicksPerStar)
		require.GreaterOrEqual(t, s.Stars, 0)
		require.False(t, c.Normalize(), "reachable state needed repair at step %d: %+v", i, s)
	}
}

func TestFractionAndMinusEnabled(t *testing.T) {
	c := New(4)
	assert.Equal(t, 0.0, c.Fraction())
	assert.False(t, c.MinusEnabled())

	c.Increment()
	assert.InDelta(t, 0.25, c.Fraction(), 1e-9)
	assert.True(t, c.MinusEnabled())

	c.Increment()
	c.Increment()
	c.Increment()
	assert.Equal(t, 0.0, c.Fraction())
	assert.True(t, c.MinusEnabled(), "stars alone enable minus")

	assert.Equal(t, 0.0, State{Progress: 1}.Fraction())
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "star-awarded", EventStarAwarded.String())
	assert.Equal(t, "none", EventNone.String())
	assert.Equal(t, "unknown", Event(99).String())
}
