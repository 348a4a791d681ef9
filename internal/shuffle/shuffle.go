// Package shuffle produces a stable, per-seed pseudo-random ordering of a
// list. The store shuffles feature requests with the device ID as seed so
// early-listed requests do not accumulate votes from display-order bias,
// while each device keeps seeing the same order across refreshes.
package shuffle

// The seed hash and generator constants are shared with the dashboard's own
// implementation; changing any of them changes every device's ordering.
const (
	djb2Initial   uint64 = 5381
	lcgMultiplier uint64 = 1103515245
	lcgIncrement  uint64 = 12345
	lcgMask       uint64 = 0x7FFFFFFF
)

// hashSeed derives a 64-bit seed from a string using the djb2 rolling hash
// over its UTF-8 bytes, wrapping on overflow.
func hashSeed(seed string) uint64 {
	h := djb2Initial
	for _, b := range []byte(seed) {
		h = h*33 + uint64(b)
	}
	return h
}

// lcg is a linear congruential generator; deterministic across platforms.
type lcg struct {
	state uint64
}

func (g *lcg) next() uint64 {
	g.state = (g.state*lcgMultiplier + lcgIncrement) & lcgMask
	return g.state
}

// Seeded returns a permutation of items determined entirely by the seed
// string, via a Fisher-Yates shuffle driven by the seeded generator. The
// input slice is not modified. Empty and single-element inputs are returned
// as is.
func Seeded[T any](items []T, seed string) []T {
	if len(items) < 2 {
		return items
	}

	g := lcg{state: hashSeed(seed)}

	out := make([]T, len(items))
	copy(out, items)

	for i := len(out) - 1; i >= 1; i-- {
		j := int(g.next() % uint64(i+1))
		out[i], out[j] = out[j], out[i]
	}

	return out
}
