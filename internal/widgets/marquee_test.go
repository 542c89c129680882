package widgets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTrackDuplicatesForLoop(t *testing.T) {
	for _, n := range []int{1, 2, 5, 12} {
		items := make([]string, n)
		for i := range items {
			items[i] = string(rune('a' + i))
		}

		track := BuildTrack(items, DefaultMarqueeOptions())

		require.Equal(t, 2*n, track.Len())
		assert.True(t, track.Animated)
		assert.Equal(t, LayoutStrip, track.Layout)
		for i := 0; i < n; i++ {
			first, second := track.Items[i], track.Items[n+i]
			assert.Equal(t, items[i], first.Value)
			assert.Equal(t, first.Value, second.Value, "slot %d mirrors slot %d", n+i, i)
			assert.Equal(t, first.Source, second.Source)
			assert.False(t, first.Duplicate)
			assert.True(t, second.Duplicate)
		}
	}
}

func TestBuildTrackReducedMotion(t *testing.T) {
	items := []string{"Kohler", "Moen", "GAF"}
	opts := DefaultMarqueeOptions()
	opts.Motion = MotionReduced

	track := BuildTrack(items, opts)

	require.Equal(t, len(items), track.Len())
	assert.False(t, track.Animated)
	assert.Equal(t, LayoutGrid, track.Layout)
	assert.Empty(t, track.AnimationStyle())
	for i, it := range track.Items {
		assert.Equal(t, items[i], it.Value)
		assert.False(t, it.Duplicate)
	}
}

func TestBuildTrackEmpty(t *testing.T) {
	track := BuildTrack([]int{}, DefaultMarqueeOptions())
	assert.Equal(t, 0, track.Len())
	assert.False(t, track.Animated)
}

func TestAnimationStyle(t *testing.T) {
	opts := DefaultMarqueeOptions()
	opts.Speed = SpeedFast
	opts.Direction = DirectionRight

	track := BuildTrack([]string{"a"}, opts)
	assert.Equal(t, "animation: marquee-scroll 20s linear infinite reverse;", track.AnimationStyle())

	track = BuildTrack([]string{"a"}, DefaultMarqueeOptions())
	assert.Equal(t, "animation: marquee-scroll 60s linear infinite forwards;", track.AnimationStyle())
}

func TestSpeedDuration(t *testing.T) {
	assert.Equal(t, 20*time.Second, SpeedFast.Duration())
	assert.Equal(t, 40*time.Second, SpeedNormal.Duration())
	assert.Equal(t, 60*time.Second, SpeedSlow.Duration())
	assert.Equal(t, 60*time.Second, Speed("warp").Duration())
}

func TestParseMotion(t *testing.T) {
	assert.Equal(t, MotionReduced, ParseMotion("reduce"))
	assert.Equal(t, MotionReduced, ParseMotion(" Reduce "))
	assert.Equal(t, MotionFull, ParseMotion("no-preference"))
	assert.Equal(t, MotionFull, ParseMotion(""))
	assert.Equal(t, "reduce", MotionReduced.String())
}
