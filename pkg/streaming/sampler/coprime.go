package sampler

// GCD returns the greatest common divisor of a and b using Euclid's
// algorithm. GCD(0, 0) is 0.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Coprime reports whether a and b share no factor other than 1.
func Coprime(a, b uint64) bool {
	return GCD(a, b) == 1
}
