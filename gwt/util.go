package gwt

func sqr(x float64) float64 {
	return x * x
}

func mod(a, b int) int {
	if b <= 0 {
		panic("non-positive denominator")
	}
	return ((a % b) + b) % b
}
