// SPDX-License-Identifier: Unlicense OR MIT

package layout

// splitmix64 is a tiny, portable PRNG. The pixel rounding debt below
// must land on the same children on every platform and every run, or
// layouts would visibly jitter, so the generator and its seeds are
// pinned rather than taken from the standard library.
type splitmix64 uint64

func (s *splitmix64) next() uint64 {
	*s += 0x9e3779b97f4a7c15
	z := uint64(*s)
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// shuffle permutes idx in place with a Fisher-Yates pass driven by the
// seeded generator.
func shuffle(idx []int, seed uint64) {
	rng := splitmix64(seed)
	for i := len(idx) - 1; i > 0; i-- {
		j := int(rng.next() % uint64(i+1))
		idx[i], idx[j] = idx[j], idx[i]
	}
}
