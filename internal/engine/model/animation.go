package model

import "github.com/Faultbox/starforge/pkg/math"

// InterpolatePositionKeys interpolates position keyframes at the given time.
// Keys are expected to be sorted by time.
func InterpolatePositionKeys(keys []PositionKey, t float32) math.Vec3 {
	if len(keys) == 0 {
		return math.Vec3{}
	}
	if len(keys) == 1 {
		return keys[0].Position
	}

	var prev, next int
	for i := range keys {
		if keys[i].Time > t {
			next = i
			break
		}
		prev = i
		next = i
	}

	// Before the first key or past the last one
	if prev == next {
		return keys[prev].Position
	}

	k0 := keys[prev]
	k1 := keys[next]
	f := float32(0)
	if k1.Time != k0.Time {
		f = (t - k0.Time) / (k1.Time - k0.Time)
	}
	return k0.Position.Lerp(k1.Position, f)
}
