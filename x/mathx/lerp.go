package mathx

// LerpStep returns the value at step i of n equal increments from a towards b:
// a + i*(b-a)/n. Step n is b; the ramp helpers stop at n-1.
// n <= 0 returns a.
func LerpStep(a, b float64, i, n int) float64 {
	if n <= 0 {
		return a
	}
	return a + float64(i)*((b-a)/float64(n))
}
