package sampler

import (
	"math/rand/v2"
)

// DefaultMaxValue is the upper bound of values drawn by RandomSource.
const DefaultMaxValue = 1 << 32

// PairSource yields the pairs a producer classifies. A source is owned by
// exactly one producer goroutine and need not be safe for concurrent use.
type PairSource interface {
	Next() (a, b uint64)
}

// SourceFunc builds the source for one producer from its id and derived seed.
type SourceFunc func(workerID int, seed uint64) PairSource

// RandomSource draws independent uniform values from [1, max].
type RandomSource struct {
	rng *rand.Rand
	max uint64
}

// NewRandomSource creates a PCG-backed source. The same seed always yields
// the same sequence.
func NewRandomSource(seed, max uint64) *RandomSource {
	if max == 0 {
		max = DefaultMaxValue
	}
	return &RandomSource{
		rng: rand.New(rand.NewPCG(seed, mix(seed))),
		max: max,
	}
}

// Next returns two independent values from [1, max].
func (s *RandomSource) Next() (uint64, uint64) {
	return s.rng.Uint64N(s.max) + 1, s.rng.Uint64N(s.max) + 1
}

// mix is the splitmix64 finalizer; it spreads consecutive seeds apart.
func mix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// workerSeed derives a distinct seed for each producer from the base seed.
func workerSeed(base uint64, workerID int) uint64 {
	return mix(base + uint64(workerID))
}
