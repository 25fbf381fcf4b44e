package estimate

// LeibnizTerm returns the n-th paired term of the Leibniz series,
// 1/(4n+1) - 1/(4n+3) folded into 2/((4n+1)(4n+3)). The terms sum to pi/4.
func LeibnizTerm(n uint64) float64 {
	k := float64(n)
	return 2 / ((4*k + 1) * (4*k + 3))
}
